package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"registro-clientes/internal/domain/admin"
	"registro-clientes/internal/domain/client"
	xerrors "registro-clientes/internal/pkg/errors"
	"registro-clientes/internal/pkg/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminStore is the persistence surface the service needs.
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*admin.Administrator, error)
	Create(ctx context.Context, a *admin.Administrator) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByDNI(ctx context.Context, dni string) (bool, error)
}

type AuthService struct {
	store  AdminStore
	tokens *token.Manager
	logger *zap.Logger
}

func NewAuthService(store AdminStore, tokens *token.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, logger: logger}
}

// Register creates a new administrator. Passwords are stored as bcrypt
// hashes; the legacy application stored them in clear text, which this
// service deliberately does not reproduce.
func (s *AuthService) Register(ctx context.Context, req *admin.RegisterRequest) (*admin.Administrator, error) {
	if !client.ValidDNI(req.DNI) {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "el DNI debe tener 8 dígitos")
	}

	taken, err := s.store.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, xerrors.Wrap(xerrors.ErrConflict, "el usuario ya existe")
	}

	exists, err := s.store.ExistsByDNI(ctx, req.DNI)
	if err != nil {
		return nil, fmt.Errorf("failed to check DNI: %w", err)
	}
	if exists {
		return nil, xerrors.Wrap(xerrors.ErrConflict, "el DNI ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &admin.Administrator{
		DNI:      req.DNI,
		FullName: req.FullName,
		Username: req.Username,
		Password: string(hash),
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if err := s.store.Create(ctx, a); err != nil {
		s.logger.Error("failed to create administrator", zap.Error(err))
		return nil, err
	}

	s.logger.Info("administrator registered",
		zap.String("dni", a.DNI),
		zap.String("username", a.Username),
	)
	return a, nil
}

// Login validates credentials and issues a session token. The
// externally observable contract matches the original application:
// login succeeds exactly when username and password match the stored
// record.
func (s *AuthService) Login(ctx context.Context, req *admin.LoginRequest) (*admin.LoginResponse, error) {
	a, err := s.store.FindByUsername(ctx, req.Username)
	if xerrors.Is(err, xerrors.ErrNotFound) {
		return nil, xerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if !verifyPassword(a.Password, req.Password) {
		s.logger.Warn("failed login attempt", zap.String("username", req.Username))
		return nil, xerrors.ErrUnauthorized
	}

	tok, err := s.tokens.Issue(a.DNI, a.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &admin.LoginResponse{Token: tok, DNI: a.DNI, Username: a.Username}, nil
}

// ValidateToken verifies a session token.
func (s *AuthService) ValidateToken(raw string) (*token.Claims, error) {
	return s.tokens.Verify(raw)
}

// verifyPassword compares a candidate against the stored credential.
// New rows hold bcrypt hashes; rows written by the legacy application
// hold clear text and are compared constant-time so old databases keep
// working until their owners re-register.
func verifyPassword(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
