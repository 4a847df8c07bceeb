package postgres

import (
	"context"
	"errors"
	"fmt"

	"registro-clientes/internal/domain/client"
	xerrors "registro-clientes/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClientRepository is the persistence gateway for the three client
// subtypes and their dependent rows.
type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

// ========== Inserts ==========

// InsertRetail creates a ClienteMinorista row.
func (r *ClientRepository) InsertRetail(ctx context.Context, req *client.CreateRetailRequest) error {
	query := `
		INSERT INTO ClienteMinorista (DNI, Nombre_Apellido, Direccion, Telefono, Correo, Preferencias, DNI_administrador)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		req.DNI, req.FullName, nullIfEmpty(req.Address), nullIfEmpty(req.Phone),
		nullIfEmpty(req.Email), nullIfEmpty(req.Preferences), req.AdminDNI,
	)
	if err != nil {
		return fmt.Errorf("failed to insert retail client: %w", err)
	}
	return nil
}

// InsertWholesale creates a ClienteMayorista row and, when phone or
// email is supplied, its DatosClienteMayorista dependent. Both
// statements run in one transaction so a dependent-row failure cannot
// leave a half-written client behind.
func (r *ClientRepository) InsertWholesale(ctx context.Context, req *client.CreateWholesaleRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO ClienteMayorista (RUC, Razon_Social, Direccion_Fiscal, DNI_administrador) VALUES ($1, $2, $3, $4)`,
		req.RUC, req.BusinessName, nullIfEmpty(req.FiscalAddress), req.AdminDNI,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wholesale client: %w", err)
	}

	if req.Phone != "" || req.Email != "" {
		_, err = tx.Exec(ctx,
			`INSERT INTO DatosClienteMayorista (RUC_Mayorista, Telefono, Correo) VALUES ($1, $2, $3)`,
			req.RUC, nullIfEmpty(req.Phone), nullIfEmpty(req.Email),
		)
		if err != nil {
			return fmt.Errorf("failed to insert wholesale contact info: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// InsertCorporate creates a ClienteCorporativo row plus its optional
// DatosClienteCorporativo and Contrato dependents, transactionally.
func (r *ClientRepository) InsertCorporate(ctx context.Context, req *client.CreateCorporateRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO ClienteCorporativo (RUC, Razon_Social, Correo, DNI_contacto, DNI_administrador) VALUES ($1, $2, $3, $4, $5)`,
		req.RUC, req.BusinessName, nullIfEmpty(req.Email), nullIfEmpty(req.ContactDNI), req.AdminDNI,
	)
	if err != nil {
		return fmt.Errorf("failed to insert corporate client: %w", err)
	}

	if req.Phone != "" || req.FiscalAddress != "" {
		_, err = tx.Exec(ctx,
			`INSERT INTO DatosClienteCorporativo (RUC_Corporativo, Telefono, Direccion_Fiscal) VALUES ($1, $2, $3)`,
			req.RUC, nullIfEmpty(req.Phone), nullIfEmpty(req.FiscalAddress),
		)
		if err != nil {
			return fmt.Errorf("failed to insert corporate contact info: %w", err)
		}
	}

	if req.ContractDescription != "" || req.ContractStart != "" || req.ContractEnd != "" || req.ContractStatus != "" {
		_, err = tx.Exec(ctx,
			`INSERT INTO Contrato (Descripcion, Fecha_inicio, Fecha_vencimiento, Estado, RUC_Corporativo) VALUES ($1, $2, $3, $4, $5)`,
			nullIfEmpty(req.ContractDescription), nullIfEmpty(req.ContractStart),
			nullIfEmpty(req.ContractEnd), nullIfEmpty(req.ContractStatus), req.RUC,
		)
		if err != nil {
			return fmt.Errorf("failed to insert contract: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// ========== Sparse updates ==========

// UpdateRetail modifies only the fields present in the request. Fields
// left nil keep their prior values.
func (r *ClientRepository) UpdateRetail(ctx context.Context, dni string, req *client.UpdateRetailRequest) error {
	b := newUpdateBuilder("ClienteMinorista")
	if req.FullName != nil {
		b.Set("Nombre_Apellido", *req.FullName)
	}
	if req.Address != nil {
		b.Set("Direccion", *req.Address)
	}
	if req.Phone != nil {
		b.Set("Telefono", *req.Phone)
	}
	if req.Email != nil {
		b.Set("Correo", *req.Email)
	}
	if req.Preferences != nil {
		b.Set("Preferencias", *req.Preferences)
	}
	if req.AdminDNI != nil {
		b.Set("DNI_administrador", *req.AdminDNI)
	}
	if b.Empty() {
		return nil
	}

	query, args := b.Build("DNI", dni)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update retail client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateWholesale applies sparse updates to the primary row and, when
// contact fields are supplied, to the dependent contact row. A missing
// dependent row makes the dependent update a no-op, matching how the
// registry has always behaved.
func (r *ClientRepository) UpdateWholesale(ctx context.Context, ruc string, req *client.UpdateWholesaleRequest) error {
	primary := newUpdateBuilder("ClienteMayorista")
	if req.BusinessName != nil {
		primary.Set("Razon_Social", *req.BusinessName)
	}
	if req.FiscalAddress != nil {
		primary.Set("Direccion_Fiscal", *req.FiscalAddress)
	}
	if req.AdminDNI != nil {
		primary.Set("DNI_administrador", *req.AdminDNI)
	}

	if !primary.Empty() {
		query, args := primary.Build("RUC", ruc)
		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update wholesale client: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return xerrors.ErrNotFound
		}
	}

	contact := newUpdateBuilder("DatosClienteMayorista")
	if req.Phone != nil {
		contact.Set("Telefono", *req.Phone)
	}
	if req.Email != nil {
		contact.Set("Correo", *req.Email)
	}
	if !contact.Empty() {
		query, args := contact.Build("RUC_Mayorista", ruc)
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update wholesale contact info: %w", err)
		}
	}

	return nil
}

// UpdateCorporate applies sparse updates across the primary row, the
// contact-info dependent and the contract dependent.
func (r *ClientRepository) UpdateCorporate(ctx context.Context, ruc string, req *client.UpdateCorporateRequest) error {
	primary := newUpdateBuilder("ClienteCorporativo")
	if req.BusinessName != nil {
		primary.Set("Razon_Social", *req.BusinessName)
	}
	if req.Email != nil {
		primary.Set("Correo", *req.Email)
	}
	if req.ContactDNI != nil {
		primary.Set("DNI_contacto", *req.ContactDNI)
	}
	if req.AdminDNI != nil {
		primary.Set("DNI_administrador", *req.AdminDNI)
	}

	if !primary.Empty() {
		query, args := primary.Build("RUC", ruc)
		tag, err := r.db.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update corporate client: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return xerrors.ErrNotFound
		}
	}

	contact := newUpdateBuilder("DatosClienteCorporativo")
	if req.Phone != nil {
		contact.Set("Telefono", *req.Phone)
	}
	if req.FiscalAddress != nil {
		contact.Set("Direccion_Fiscal", *req.FiscalAddress)
	}
	if !contact.Empty() {
		query, args := contact.Build("RUC_Corporativo", ruc)
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update corporate contact info: %w", err)
		}
	}

	contract := newUpdateBuilder("Contrato")
	if req.ContractDescription != nil {
		contract.Set("Descripcion", *req.ContractDescription)
	}
	if req.ContractStart != nil {
		contract.Set("Fecha_inicio", *req.ContractStart)
	}
	if req.ContractEnd != nil {
		contract.Set("Fecha_vencimiento", *req.ContractEnd)
	}
	if req.ContractStatus != nil {
		contract.Set("Estado", *req.ContractStatus)
	}
	if !contract.Empty() {
		query, args := contract.Build("RUC_Corporativo", ruc)
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update contract: %w", err)
		}
	}

	return nil
}

// ========== Lookups ==========

// FindRetail retrieves a retail client by DNI.
func (r *ClientRepository) FindRetail(ctx context.Context, dni string) (*client.Retail, error) {
	query := `
		SELECT DNI, Nombre_Apellido, Direccion, Telefono, Correo, Preferencias, DNI_administrador
		FROM ClienteMinorista
		WHERE DNI = $1
	`

	var c client.Retail
	err := r.db.QueryRow(ctx, query, dni).Scan(
		&c.DNI, &c.FullName, &c.Address, &c.Phone, &c.Email, &c.Preferences, &c.AdminDNI,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find retail client: %w", err)
	}
	return &c, nil
}

// FindWholesale retrieves a wholesale client by RUC, joined with its
// optional contact-info dependent.
func (r *ClientRepository) FindWholesale(ctx context.Context, ruc string) (*client.Wholesale, error) {
	query := `
		SELECT cm.RUC, cm.Razon_Social, cm.Direccion_Fiscal, cm.DNI_administrador,
		       dcm.Telefono, dcm.Correo
		FROM ClienteMayorista cm
		LEFT JOIN DatosClienteMayorista dcm ON dcm.RUC_Mayorista = cm.RUC
		WHERE cm.RUC = $1
	`

	var c client.Wholesale
	err := r.db.QueryRow(ctx, query, ruc).Scan(
		&c.RUC, &c.BusinessName, &c.FiscalAddress, &c.AdminDNI, &c.Phone, &c.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find wholesale client: %w", err)
	}
	return &c, nil
}

// FindCorporate retrieves a corporate client by RUC, joined with its
// optional contact-info and contract dependents.
func (r *ClientRepository) FindCorporate(ctx context.Context, ruc string) (*client.Corporate, error) {
	query := `
		SELECT cc.RUC, cc.Razon_Social, cc.Correo, cc.DNI_contacto, cc.DNI_administrador,
		       dcc.Telefono, dcc.Direccion_Fiscal,
		       c.Descripcion, c.Fecha_inicio, c.Fecha_vencimiento, c.Estado
		FROM ClienteCorporativo cc
		LEFT JOIN DatosClienteCorporativo dcc ON dcc.RUC_Corporativo = cc.RUC
		LEFT JOIN Contrato c ON c.RUC_Corporativo = cc.RUC
		WHERE cc.RUC = $1
		ORDER BY c.Id_contrato
		LIMIT 1
	`

	var c client.Corporate
	var contract client.Contract
	err := r.db.QueryRow(ctx, query, ruc).Scan(
		&c.RUC, &c.BusinessName, &c.Email, &c.ContactDNI, &c.AdminDNI,
		&c.Phone, &c.FiscalAddress,
		&contract.Description, &contract.StartDate, &contract.EndDate, &contract.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find corporate client: %w", err)
	}

	if contract.Description.Valid || contract.StartDate.Valid || contract.EndDate.Valid || contract.Status.Valid {
		c.Contract = &contract
	}
	return &c, nil
}

// ========== Summaries ==========

// ListRetailSummaries lists retail clients for the cross-type listing.
func (r *ClientRepository) ListRetailSummaries(ctx context.Context) ([]client.Summary, error) {
	query := `SELECT DNI, Nombre_Apellido, Telefono, Correo FROM ClienteMinorista`
	return r.listSummaries(ctx, query, client.KindRetail)
}

// ListWholesaleSummaries lists wholesale clients, joined with their
// contact info for phone and email.
func (r *ClientRepository) ListWholesaleSummaries(ctx context.Context) ([]client.Summary, error) {
	query := `
		SELECT cm.RUC, cm.Razon_Social, dcm.Telefono, dcm.Correo
		FROM ClienteMayorista cm
		LEFT JOIN DatosClienteMayorista dcm ON dcm.RUC_Mayorista = cm.RUC
	`
	return r.listSummaries(ctx, query, client.KindWholesale)
}

// ListCorporateSummaries lists corporate clients, phone from the
// contact-info dependent and email from the primary row.
func (r *ClientRepository) ListCorporateSummaries(ctx context.Context) ([]client.Summary, error) {
	query := `
		SELECT cc.RUC, cc.Razon_Social, dcc.Telefono, cc.Correo
		FROM ClienteCorporativo cc
		LEFT JOIN DatosClienteCorporativo dcc ON dcc.RUC_Corporativo = cc.RUC
	`
	return r.listSummaries(ctx, query, client.KindCorporate)
}

func (r *ClientRepository) listSummaries(ctx context.Context, query string, kind client.Kind) ([]client.Summary, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s clients: %w", kind, err)
	}
	defer rows.Close()

	var out []client.Summary
	for rows.Next() {
		s := client.Summary{Kind: kind}
		if err := rows.Scan(&s.Code, &s.Name, &s.Phone, &s.Email); err != nil {
			return nil, fmt.Errorf("failed to scan %s summary: %w", kind, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ========== Existence and deletion ==========

// ExistsWholesale checks the wholesale side of the shared RUC namespace.
func (r *ClientRepository) ExistsWholesale(ctx context.Context, ruc string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ClienteMayorista WHERE RUC = $1)`, ruc).Scan(&exists)
	return exists, err
}

// ExistsCorporate checks the corporate side of the shared RUC namespace.
func (r *ClientRepository) ExistsCorporate(ctx context.Context, ruc string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ClienteCorporativo WHERE RUC = $1)`, ruc).Scan(&exists)
	return exists, err
}

// ExistsRetail checks for a retail client by DNI.
func (r *ClientRepository) ExistsRetail(ctx context.Context, dni string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ClienteMinorista WHERE DNI = $1)`, dni).Scan(&exists)
	return exists, err
}

// DeleteRetail removes a retail client row.
func (r *ClientRepository) DeleteRetail(ctx context.Context, dni string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ClienteMinorista WHERE DNI = $1`, dni)
	if err != nil {
		return fmt.Errorf("failed to delete retail client: %w", err)
	}
	return nil
}

// DeleteWholesale removes a wholesale client; the contact-info
// dependent goes with it via ON DELETE CASCADE.
func (r *ClientRepository) DeleteWholesale(ctx context.Context, ruc string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ClienteMayorista WHERE RUC = $1`, ruc)
	if err != nil {
		return fmt.Errorf("failed to delete wholesale client: %w", err)
	}
	return nil
}

// DeleteCorporate removes a corporate client and, via cascade, its
// contact info and contracts.
func (r *ClientRepository) DeleteCorporate(ctx context.Context, ruc string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ClienteCorporativo WHERE RUC = $1`, ruc)
	if err != nil {
		return fmt.Errorf("failed to delete corporate client: %w", err)
	}
	return nil
}
