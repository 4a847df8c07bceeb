package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "registro-clientes/internal/pkg/errors"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantTax bool
		wantErr bool
	}{
		{name: "dni", raw: "12345678", wantTax: false},
		{name: "ruc", raw: "20123456789", wantTax: true},
		{name: "too short", raw: "1234567", wantErr: true},
		{name: "between dni and ruc", raw: "123456789", wantErr: true},
		{name: "too long", raw: "201234567890", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "dni with letter", raw: "1234567a", wantErr: true},
		{name: "ruc with dash", raw: "20123-56789", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ParseCode(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, xerrors.Is(err, xerrors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, code.Value)
			assert.Equal(t, tt.wantTax, code.IsTax)
		})
	}
}

func TestValidDNI(t *testing.T) {
	assert.True(t, ValidDNI("00000001"))
	assert.False(t, ValidDNI("0000001"))
	assert.False(t, ValidDNI("20123456789"))
	assert.False(t, ValidDNI("abcdefgh"))
}

func TestValidRUC(t *testing.T) {
	assert.True(t, ValidRUC("20123456789"))
	assert.False(t, ValidRUC("12345678"))
	assert.False(t, ValidRUC(""))
}

func TestRecordCode(t *testing.T) {
	r := Record{Kind: KindRetail, Retail: &Retail{DNI: "12345678"}}
	assert.Equal(t, "12345678", r.Code())

	w := Record{Kind: KindWholesale, Wholesale: &Wholesale{RUC: "20123456789"}}
	assert.Equal(t, "20123456789", w.Code())

	c := Record{Kind: KindCorporate, Corporate: &Corporate{RUC: "20987654321"}}
	assert.Equal(t, "20987654321", c.Code())
}
