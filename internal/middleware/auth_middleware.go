package middleware

import (
	"net/http"
	"strings"

	"registro-clientes/internal/pkg/response"
	"registro-clientes/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	authService *auth.AuthService
}

func NewAuthMiddleware(authService *auth.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Auth validates the bearer token and loads the administrator identity
// into the request context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		c.Set("dni", claims.DNI)
		c.Set("username", claims.Username)
		c.Set("jti", claims.ID)

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return ""
}

// GetDNI returns the authenticated administrator's DNI from context.
func GetDNI(c *gin.Context) (string, bool) {
	dni, exists := c.Get("dni")
	if !exists {
		return "", false
	}

	s, ok := dni.(string)
	return s, ok
}

// GetUsername returns the authenticated administrator's username from context.
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	s, ok := username.(string)
	return s, ok
}
