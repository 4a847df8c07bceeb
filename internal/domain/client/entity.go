package client

import (
	"database/sql"
	"time"
)

// Retail is a ClienteMinorista row keyed by DNI.
type Retail struct {
	DNI          string         `json:"dni" db:"DNI"`
	FullName     string         `json:"full_name" db:"Nombre_Apellido"`
	Address      sql.NullString `json:"address,omitempty" db:"Direccion"`
	Phone        sql.NullString `json:"phone,omitempty" db:"Telefono"`
	Email        sql.NullString `json:"email,omitempty" db:"Correo"`
	Preferences  sql.NullString `json:"preferences,omitempty" db:"Preferencias"`
	AdminDNI     string         `json:"admin_dni" db:"DNI_administrador"`
}

// Wholesale is a ClienteMayorista row plus its optional
// DatosClienteMayorista dependent (phone/email).
type Wholesale struct {
	RUC           string         `json:"ruc" db:"RUC"`
	BusinessName  string         `json:"business_name" db:"Razon_Social"`
	FiscalAddress sql.NullString `json:"fiscal_address,omitempty" db:"Direccion_Fiscal"`
	AdminDNI      string         `json:"admin_dni" db:"DNI_administrador"`
	Phone         sql.NullString `json:"phone,omitempty" db:"Telefono"`
	Email         sql.NullString `json:"email,omitempty" db:"Correo"`
}

// Corporate is a ClienteCorporativo row plus its optional
// DatosClienteCorporativo and Contrato dependents.
type Corporate struct {
	RUC           string         `json:"ruc" db:"RUC"`
	BusinessName  string         `json:"business_name" db:"Razon_Social"`
	Email         sql.NullString `json:"email,omitempty" db:"Correo"`
	ContactDNI    sql.NullString `json:"contact_dni,omitempty" db:"DNI_contacto"`
	AdminDNI      string         `json:"admin_dni" db:"DNI_administrador"`
	Phone         sql.NullString `json:"phone,omitempty" db:"Telefono"`
	FiscalAddress sql.NullString `json:"fiscal_address,omitempty" db:"Direccion_Fiscal"`
	Contract      *Contract      `json:"contract,omitempty"`
}

// Contract is a Contrato row owned by a corporate client.
// Estado is either "Activo" or "Inactivo".
type Contract struct {
	Description sql.NullString `json:"description,omitempty" db:"Descripcion"`
	StartDate   sql.NullTime   `json:"start_date,omitempty" db:"Fecha_inicio"`
	EndDate     sql.NullTime   `json:"end_date,omitempty" db:"Fecha_vencimiento"`
	Status      sql.NullString `json:"status,omitempty" db:"Estado"`
}

// Record is the tagged result of a code lookup: exactly one of the
// three entity pointers is set, matching Kind.
type Record struct {
	Kind      Kind       `json:"kind"`
	Retail    *Retail    `json:"retail,omitempty"`
	Wholesale *Wholesale `json:"wholesale,omitempty"`
	Corporate *Corporate `json:"corporate,omitempty"`
}

// Code returns the business key of whichever entity the record carries.
func (r *Record) Code() string {
	switch r.Kind {
	case KindRetail:
		return r.Retail.DNI
	case KindWholesale:
		return r.Wholesale.RUC
	case KindCorporate:
		return r.Corporate.RUC
	}
	return ""
}

// Summary is one row of the cross-type client listing.
type Summary struct {
	Code  string         `json:"code"`
	Name  string         `json:"name"`
	Phone sql.NullString `json:"phone,omitempty"`
	Email sql.NullString `json:"email,omitempty"`
	Kind  Kind           `json:"kind"`
}

// DeleteOutcome reports a delete attempt in a form fit for direct
// display to the end user.
type DeleteOutcome struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// ContractStatus values accepted on contract rows.
const (
	ContractActive   = "Activo"
	ContractInactive = "Inactivo"
)

// DateOnly is the wire format for contract dates.
const DateOnly = "2006-01-02"

// ParseDate parses a contract date in DateOnly layout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateOnly, s)
}
