package app

import (
	authHandler "registro-clientes/internal/handlers/auth"
	clientHandler "registro-clientes/internal/handlers/client"
	reportHandler "registro-clientes/internal/handlers/report"
	"registro-clientes/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	ClientHandler  *clientHandler.ClientHandler
	ReportHandler  *reportHandler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	// ==================== Clients ====================
	clients := api.Group("/clients")
	clients.Use(h.AuthMiddleware.Auth())
	{
		clients.GET("", h.ClientHandler.List)
		clients.GET("/:code", h.ClientHandler.GetByCode)
		clients.DELETE("/:code", h.ClientHandler.DeleteByCode)

		clients.POST("/retail", h.ClientHandler.CreateRetail)
		clients.POST("/wholesale", h.ClientHandler.CreateWholesale)
		clients.POST("/corporate", h.ClientHandler.CreateCorporate)

		clients.PUT("/retail/:code", h.ClientHandler.UpdateRetail)
		clients.PUT("/wholesale/:code", h.ClientHandler.UpdateWholesale)
		clients.PUT("/corporate/:code", h.ClientHandler.UpdateCorporate)
	}

	// ==================== Reports ====================
	reports := api.Group("/reports")
	reports.Use(h.AuthMiddleware.Auth())
	{
		reports.GET("", h.ReportHandler.List)
		reports.GET("/:name", h.ReportHandler.Run)
		reports.GET("/:name/export", h.ReportHandler.Export)
		reports.GET("/:name/chart", h.ReportHandler.Chart)
	}
}
