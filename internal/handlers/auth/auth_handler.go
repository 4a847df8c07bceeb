package auth

import (
	"net/http"

	"registro-clientes/internal/domain/admin"
	xerrors "registro-clientes/internal/pkg/errors"
	"registro-clientes/internal/pkg/response"
	service "registro-clientes/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new administrator account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req admin.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	a, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case xerrors.Is(err, xerrors.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "invalid administrator data", err)
		case xerrors.Is(err, xerrors.ErrConflict):
			response.Error(c, http.StatusConflict, "administrator already exists", err)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to register administrator", err)
		}
		return
	}

	response.Success(c, http.StatusCreated, "administrator registered", gin.H{
		"dni":      a.DNI,
		"username": a.Username,
	})
}

// Login validates credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrUnauthorized) {
			response.Unauthorized(c, "usuario o contraseña incorrectos")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to log in", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", resp)
}
