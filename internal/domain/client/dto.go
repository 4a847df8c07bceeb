package client

// Create requests carry every column of the subtype's form. Optional
// dependent-row fields are plain strings; empty means not supplied.

type CreateRetailRequest struct {
	DNI         string `json:"dni" binding:"required,len=8"`
	FullName    string `json:"full_name" binding:"required,max=150"`
	Address     string `json:"address" binding:"max=200"`
	Phone       string `json:"phone" binding:"max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=150"`
	Preferences string `json:"preferences"`
	AdminDNI    string `json:"admin_dni" binding:"required,len=8"`
}

type CreateWholesaleRequest struct {
	RUC           string `json:"ruc" binding:"required,len=11"`
	BusinessName  string `json:"business_name" binding:"required,max=200"`
	FiscalAddress string `json:"fiscal_address" binding:"max=200"`
	AdminDNI      string `json:"admin_dni" binding:"required,len=8"`
	Phone         string `json:"phone" binding:"max=20"`
	Email         string `json:"email" binding:"omitempty,email,max=150"`
}

type CreateCorporateRequest struct {
	RUC          string `json:"ruc" binding:"required,len=11"`
	BusinessName string `json:"business_name" binding:"required,max=200"`
	Email        string `json:"email" binding:"omitempty,email,max=150"`
	ContactDNI   string `json:"contact_dni" binding:"omitempty,len=8"`
	AdminDNI     string `json:"admin_dni" binding:"required,len=8"`

	Phone         string `json:"phone" binding:"max=20"`
	FiscalAddress string `json:"fiscal_address" binding:"max=200"`

	ContractDescription string `json:"contract_description"`
	ContractStart       string `json:"contract_start" binding:"omitempty,datetime=2006-01-02"`
	ContractEnd         string `json:"contract_end" binding:"omitempty,datetime=2006-01-02"`
	ContractStatus      string `json:"contract_status" binding:"omitempty,oneof=Activo Inactivo"`
}

// Update requests use pointer fields: nil means "leave the column
// unmodified", a pointer to the empty string clears it.

type UpdateRetailRequest struct {
	FullName    *string `json:"full_name" binding:"omitempty,max=150"`
	Address     *string `json:"address" binding:"omitempty,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Email       *string `json:"email" binding:"omitempty,max=150"`
	Preferences *string `json:"preferences"`
	AdminDNI    *string `json:"admin_dni" binding:"omitempty,len=8"`
}

func (r *UpdateRetailRequest) Empty() bool {
	return r.FullName == nil && r.Address == nil && r.Phone == nil &&
		r.Email == nil && r.Preferences == nil && r.AdminDNI == nil
}

type UpdateWholesaleRequest struct {
	BusinessName  *string `json:"business_name" binding:"omitempty,max=200"`
	FiscalAddress *string `json:"fiscal_address" binding:"omitempty,max=200"`
	AdminDNI      *string `json:"admin_dni" binding:"omitempty,len=8"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	Email         *string `json:"email" binding:"omitempty,max=150"`
}

func (r *UpdateWholesaleRequest) Empty() bool {
	return r.BusinessName == nil && r.FiscalAddress == nil &&
		r.AdminDNI == nil && r.Phone == nil && r.Email == nil
}

type UpdateCorporateRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,max=200"`
	Email        *string `json:"email" binding:"omitempty,max=150"`
	ContactDNI   *string `json:"contact_dni" binding:"omitempty,len=8"`
	AdminDNI     *string `json:"admin_dni" binding:"omitempty,len=8"`

	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	FiscalAddress *string `json:"fiscal_address" binding:"omitempty,max=200"`

	ContractDescription *string `json:"contract_description"`
	ContractStart       *string `json:"contract_start" binding:"omitempty,datetime=2006-01-02"`
	ContractEnd         *string `json:"contract_end" binding:"omitempty,datetime=2006-01-02"`
	ContractStatus      *string `json:"contract_status" binding:"omitempty,oneof=Activo Inactivo"`
}

func (r *UpdateCorporateRequest) Empty() bool {
	return r.BusinessName == nil && r.Email == nil && r.ContactDNI == nil &&
		r.AdminDNI == nil && r.Phone == nil && r.FiscalAddress == nil &&
		r.ContractDescription == nil && r.ContractStart == nil &&
		r.ContractEnd == nil && r.ContractStatus == nil
}
