package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilderSingleColumn(t *testing.T) {
	b := newUpdateBuilder("ClienteMinorista")
	b.Set("Telefono", "999111222")

	query, args := b.Build("DNI", "12345678")

	assert.Equal(t, "UPDATE ClienteMinorista SET Telefono = $1 WHERE DNI = $2", query)
	assert.Equal(t, []any{"999111222", "12345678"}, args)
}

func TestUpdateBuilderMultipleColumnsKeepOrder(t *testing.T) {
	b := newUpdateBuilder("ClienteMayorista")
	b.Set("Razon_Social", "ACME SA")
	b.Set("Direccion_Fiscal", "Av. Lima 123")
	b.Set("DNI_administrador", "87654321")

	query, args := b.Build("RUC", "20123456789")

	assert.Equal(t,
		"UPDATE ClienteMayorista SET Razon_Social = $1, Direccion_Fiscal = $2, DNI_administrador = $3 WHERE RUC = $4",
		query)
	assert.Equal(t, []any{"ACME SA", "Av. Lima 123", "87654321", "20123456789"}, args)
}

func TestUpdateBuilderEmpty(t *testing.T) {
	b := newUpdateBuilder("Contrato")
	assert.True(t, b.Empty())

	b.Set("Estado", "Activo")
	assert.False(t, b.Empty())
}
