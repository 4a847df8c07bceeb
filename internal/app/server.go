package app

import (
	"context"
	"fmt"
	"log"

	"registro-clientes/internal/config"
	"registro-clientes/internal/db"
	authHandler "registro-clientes/internal/handlers/auth"
	clientHandler "registro-clientes/internal/handlers/client"
	reportHandler "registro-clientes/internal/handlers/report"
	"registro-clientes/internal/middleware"
	"registro-clientes/internal/pkg/token"
	"registro-clientes/internal/repository/postgres"
	authUsecase "registro-clientes/internal/service/auth"
	clientUsecase "registro-clientes/internal/service/client"
	reportUsecase "registro-clientes/internal/service/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}, nil
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if s.cfg.DBInitSchema {
		if err := db.InitSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
		logger.Info("database schema initialized")
	}

	// ----- Redis (optional report cache) -----
	var redisClient *redis.Client
	if s.cfg.RedisAddr != "" {
		redisClient, err = db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       s.cfg.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("report cache enabled", zap.String("addr", s.cfg.RedisAddr))
	}

	// ----- Token Manager -----
	tokenManager, err := token.NewManager(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTTTL)
	if err != nil {
		return fmt.Errorf("failed to build token manager: %w", err)
	}

	// ----- Repositories -----
	adminRepo := postgres.NewAdminRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	// ----- Services -----
	authService := authUsecase.NewAuthService(adminRepo, tokenManager, logger)
	clientService := clientUsecase.NewClientService(clientRepo, logger)
	reportService := reportUsecase.NewReportService(reportRepo, redisClient, s.cfg.ReportCacheTTL, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService)
	clientHandlerInst := clientHandler.NewClientHandler(clientService)
	reportHandlerInst := reportHandler.NewReportHandler(reportService)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		ClientHandler:  clientHandlerInst,
		ReportHandler:  reportHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
