package admin

type RegisterRequest struct {
	DNI      string `json:"dni" binding:"required,len=8"`
	FullName string `json:"full_name" binding:"required,max=150"`
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=4,max=72"`
	Phone    string `json:"phone" binding:"max=20"`
	Email    string `json:"email" binding:"omitempty,email,max=150"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	DNI      string `json:"dni"`
	Username string `json:"username"`
}
