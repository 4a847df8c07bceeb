package admin

// Administrator owns client records and authenticates against the API.
// Column names map onto the Administrador table.
type Administrator struct {
	DNI      string `json:"dni" db:"DNI"`
	FullName string `json:"full_name" db:"Nombre_Apellido"`
	Username string `json:"username" db:"Usuario"`
	// Password holds the stored credential. New rows are bcrypt hashes;
	// rows written by the legacy application may still be plaintext.
	Password string `json:"-" db:"Contrasena"`
	Phone    string `json:"phone,omitempty" db:"Telefono"`
	Email    string `json:"email,omitempty" db:"Correo"`
}
