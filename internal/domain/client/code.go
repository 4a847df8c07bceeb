package client

import (
	xerrors "registro-clientes/internal/pkg/errors"
)

// Kind classifies a client code by its namespace. An 8-digit DNI is
// always a retail client; an 11-digit RUC belongs to either a wholesale
// or a corporate client, never both.
type Kind string

const (
	KindRetail    Kind = "minorista"
	KindWholesale Kind = "mayorista"
	KindCorporate Kind = "corporativo"
)

// Code is a client's business key, resolved once at the data-access
// boundary instead of re-deriving the length check at every call site.
type Code struct {
	Value string
	// IsTax reports whether the code lives in the shared 11-digit RUC
	// namespace (wholesale or corporate, decided by lookup).
	IsTax bool
}

const (
	dniLen = 8
	rucLen = 11
)

// ParseCode validates and classifies a raw code string.
func ParseCode(raw string) (Code, error) {
	if !isDigits(raw) {
		return Code{}, xerrors.Wrap(xerrors.ErrInvalidInput, "el código debe ser numérico")
	}
	switch len(raw) {
	case dniLen:
		return Code{Value: raw}, nil
	case rucLen:
		return Code{Value: raw, IsTax: true}, nil
	default:
		return Code{}, xerrors.Wrap(xerrors.ErrInvalidInput, "el código debe tener 8 (DNI) o 11 (RUC) caracteres")
	}
}

// ValidDNI reports whether s is an 8-digit national ID.
func ValidDNI(s string) bool {
	return len(s) == dniLen && isDigits(s)
}

// ValidRUC reports whether s is an 11-digit tax ID.
func ValidRUC(s string) bool {
	return len(s) == rucLen && isDigits(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
