package postgres

import (
	"context"
	"errors"
	"fmt"

	"registro-clientes/internal/domain/admin"
	xerrors "registro-clientes/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// FindByUsername retrieves an administrator by login username,
// including the stored credential for verification by the caller.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*admin.Administrator, error) {
	query := `
		SELECT DNI, Nombre_Apellido, Usuario, Contrasena, COALESCE(Telefono, ''), COALESCE(Correo, '')
		FROM Administrador
		WHERE Usuario = $1
	`

	var a admin.Administrator
	err := r.db.QueryRow(ctx, query, username).Scan(
		&a.DNI, &a.FullName, &a.Username, &a.Password, &a.Phone, &a.Email,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find administrator: %w", err)
	}

	return &a, nil
}

// Create inserts a new administrator row.
func (r *AdminRepository) Create(ctx context.Context, a *admin.Administrator) error {
	query := `
		INSERT INTO Administrador (DNI, Nombre_Apellido, Usuario, Contrasena, Telefono, Correo)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		a.DNI, a.FullName, a.Username, a.Password, nullIfEmpty(a.Phone), nullIfEmpty(a.Email),
	)
	if err != nil {
		return fmt.Errorf("failed to insert administrator: %w", err)
	}
	return nil
}

// ExistsByUsername checks whether a login username is already taken.
func (r *AdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM Administrador WHERE Usuario = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, username).Scan(&exists)
	return exists, err
}

// ExistsByDNI checks whether an administrator with the DNI exists.
func (r *AdminRepository) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM Administrador WHERE DNI = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, dni).Scan(&exists)
	return exists, err
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
