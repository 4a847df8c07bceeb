package client

import (
	"context"
	"fmt"

	"registro-clientes/internal/domain/client"
	xerrors "registro-clientes/internal/pkg/errors"

	"go.uber.org/zap"
)

// Store is the persistence gateway surface for client records.
type Store interface {
	InsertRetail(ctx context.Context, req *client.CreateRetailRequest) error
	InsertWholesale(ctx context.Context, req *client.CreateWholesaleRequest) error
	InsertCorporate(ctx context.Context, req *client.CreateCorporateRequest) error

	UpdateRetail(ctx context.Context, dni string, req *client.UpdateRetailRequest) error
	UpdateWholesale(ctx context.Context, ruc string, req *client.UpdateWholesaleRequest) error
	UpdateCorporate(ctx context.Context, ruc string, req *client.UpdateCorporateRequest) error

	FindRetail(ctx context.Context, dni string) (*client.Retail, error)
	FindWholesale(ctx context.Context, ruc string) (*client.Wholesale, error)
	FindCorporate(ctx context.Context, ruc string) (*client.Corporate, error)

	ListRetailSummaries(ctx context.Context) ([]client.Summary, error)
	ListWholesaleSummaries(ctx context.Context) ([]client.Summary, error)
	ListCorporateSummaries(ctx context.Context) ([]client.Summary, error)

	ExistsRetail(ctx context.Context, dni string) (bool, error)
	ExistsWholesale(ctx context.Context, ruc string) (bool, error)
	ExistsCorporate(ctx context.Context, ruc string) (bool, error)

	DeleteRetail(ctx context.Context, dni string) error
	DeleteWholesale(ctx context.Context, ruc string) error
	DeleteCorporate(ctx context.Context, ruc string) error
}

type ClientService struct {
	store  Store
	logger *zap.Logger
}

func NewClientService(store Store, logger *zap.Logger) *ClientService {
	return &ClientService{store: store, logger: logger}
}

// ========== Creation ==========

// CreateRetail validates and inserts a retail client.
func (s *ClientService) CreateRetail(ctx context.Context, req *client.CreateRetailRequest) error {
	if !client.ValidDNI(req.DNI) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "el DNI debe tener 8 dígitos")
	}
	if !client.ValidDNI(req.AdminDNI) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "se requiere el DNI del administrador")
	}
	return s.store.InsertRetail(ctx, req)
}

// CreateWholesale validates and inserts a wholesale client. The shared
// RUC namespace is checked first: a code already registered as
// corporate cannot be reused here.
func (s *ClientService) CreateWholesale(ctx context.Context, req *client.CreateWholesaleRequest) error {
	if !client.ValidRUC(req.RUC) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "el RUC debe tener 11 dígitos")
	}
	if !client.ValidDNI(req.AdminDNI) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "se requiere el DNI del administrador")
	}

	if err := s.checkRUCFree(ctx, req.RUC); err != nil {
		return err
	}
	return s.store.InsertWholesale(ctx, req)
}

// CreateCorporate validates and inserts a corporate client.
func (s *ClientService) CreateCorporate(ctx context.Context, req *client.CreateCorporateRequest) error {
	if !client.ValidRUC(req.RUC) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "el RUC debe tener 11 dígitos")
	}
	if !client.ValidDNI(req.AdminDNI) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "se requiere el DNI del administrador")
	}
	if req.ContactDNI != "" && !client.ValidDNI(req.ContactDNI) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "el DNI del contacto debe tener 8 dígitos")
	}

	if err := s.checkRUCFree(ctx, req.RUC); err != nil {
		return err
	}
	return s.store.InsertCorporate(ctx, req)
}

// checkRUCFree enforces the namespace invariant: an 11-digit code may
// exist in at most one of the two subtype tables.
func (s *ClientService) checkRUCFree(ctx context.Context, ruc string) error {
	if exists, err := s.store.ExistsWholesale(ctx, ruc); err != nil {
		return fmt.Errorf("failed to check RUC: %w", err)
	} else if exists {
		return xerrors.Wrap(xerrors.ErrConflict, "el RUC ya está registrado como cliente mayorista")
	}
	if exists, err := s.store.ExistsCorporate(ctx, ruc); err != nil {
		return fmt.Errorf("failed to check RUC: %w", err)
	} else if exists {
		return xerrors.Wrap(xerrors.ErrConflict, "el RUC ya está registrado como cliente corporativo")
	}
	return nil
}

// ========== Updates ==========

func (s *ClientService) UpdateRetail(ctx context.Context, dni string, req *client.UpdateRetailRequest) error {
	if !client.ValidDNI(dni) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "el DNI debe tener 8 dígitos")
	}
	if req.Empty() {
		return nil
	}
	return s.store.UpdateRetail(ctx, dni, req)
}

func (s *ClientService) UpdateWholesale(ctx context.Context, ruc string, req *client.UpdateWholesaleRequest) error {
	if !client.ValidRUC(ruc) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "el RUC debe tener 11 dígitos")
	}
	if req.Empty() {
		return nil
	}
	return s.store.UpdateWholesale(ctx, ruc, req)
}

func (s *ClientService) UpdateCorporate(ctx context.Context, ruc string, req *client.UpdateCorporateRequest) error {
	if !client.ValidRUC(ruc) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "el RUC debe tener 11 dígitos")
	}
	if req.Empty() {
		return nil
	}
	return s.store.UpdateCorporate(ctx, ruc, req)
}

// ========== Listing and lookup ==========

// GetAll returns the union of the three subtype tables, each row
// tagged with its kind. A failing subtype query is logged and dropped
// from the result instead of failing the whole listing.
func (s *ClientService) GetAll(ctx context.Context) []client.Summary {
	out := []client.Summary{}

	lists := []struct {
		kind client.Kind
		fn   func(context.Context) ([]client.Summary, error)
	}{
		{client.KindRetail, s.store.ListRetailSummaries},
		{client.KindWholesale, s.store.ListWholesaleSummaries},
		{client.KindCorporate, s.store.ListCorporateSummaries},
	}

	for _, l := range lists {
		rows, err := l.fn(ctx)
		if err != nil {
			s.logger.Warn("client listing dropped a subtype",
				zap.String("kind", string(l.kind)),
				zap.Error(err),
			)
			continue
		}
		out = append(out, rows...)
	}
	return out
}

// GetByCode dispatches on the parsed code: 8 digits hit only the
// retail table; 11 digits try wholesale first, corporate second. Any
// other input resolves to not-found without touching the database.
func (s *ClientService) GetByCode(ctx context.Context, raw string) (*client.Record, error) {
	code, err := client.ParseCode(raw)
	if err != nil {
		return nil, xerrors.ErrNotFound
	}

	if !code.IsTax {
		rc, err := s.store.FindRetail(ctx, code.Value)
		if err != nil {
			return nil, err
		}
		return &client.Record{Kind: client.KindRetail, Retail: rc}, nil
	}

	wc, err := s.store.FindWholesale(ctx, code.Value)
	if err == nil {
		return &client.Record{Kind: client.KindWholesale, Wholesale: wc}, nil
	}
	if !xerrors.Is(err, xerrors.ErrNotFound) {
		return nil, err
	}

	cc, err := s.store.FindCorporate(ctx, code.Value)
	if err != nil {
		return nil, err
	}
	return &client.Record{Kind: client.KindCorporate, Corporate: cc}, nil
}

// ========== Deletion ==========

// Outcome messages shown directly to the end user, kept word for word
// from the original application.
const (
	msgRetailDeleted    = "Cliente minorista eliminado correctamente."
	msgWholesaleDeleted = "Cliente mayorista eliminado correctamente."
	msgCorporateDeleted = "Cliente corporativo eliminado correctamente."
	msgNotRetail        = "El DNI no pertenece a un cliente minorista."
	msgNoTaxMatch       = "El RUC no pertenece a ningún cliente registrado."
	msgBadLength        = "El código debe tener 8 (DNI) o 11 (RUC) caracteres."
)

// DeleteByCode removes whichever client owns the code and reports the
// outcome as a display-ready message. Failures are folded into the
// message rather than raised, matching the original contract.
func (s *ClientService) DeleteByCode(ctx context.Context, raw string) client.DeleteOutcome {
	code, err := client.ParseCode(raw)
	if err != nil {
		return client.DeleteOutcome{Deleted: false, Message: msgBadLength}
	}

	if !code.IsTax {
		exists, err := s.store.ExistsRetail(ctx, code.Value)
		if err != nil {
			return s.deleteFailed(err)
		}
		if !exists {
			return client.DeleteOutcome{Deleted: false, Message: msgNotRetail}
		}
		if err := s.store.DeleteRetail(ctx, code.Value); err != nil {
			return s.deleteFailed(err)
		}
		return client.DeleteOutcome{Deleted: true, Message: msgRetailDeleted}
	}

	wholesale, err := s.store.ExistsWholesale(ctx, code.Value)
	if err != nil {
		return s.deleteFailed(err)
	}
	corporate, err := s.store.ExistsCorporate(ctx, code.Value)
	if err != nil {
		return s.deleteFailed(err)
	}

	switch {
	case wholesale:
		if err := s.store.DeleteWholesale(ctx, code.Value); err != nil {
			return s.deleteFailed(err)
		}
		return client.DeleteOutcome{Deleted: true, Message: msgWholesaleDeleted}
	case corporate:
		if err := s.store.DeleteCorporate(ctx, code.Value); err != nil {
			return s.deleteFailed(err)
		}
		return client.DeleteOutcome{Deleted: true, Message: msgCorporateDeleted}
	default:
		return client.DeleteOutcome{Deleted: false, Message: msgNoTaxMatch}
	}
}

func (s *ClientService) deleteFailed(err error) client.DeleteOutcome {
	s.logger.Error("delete failed", zap.Error(err))
	return client.DeleteOutcome{Deleted: false, Message: fmt.Sprintf("Error al eliminar: %v", err)}
}
