package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"registro-clientes/internal/domain/client"
	xerrors "registro-clientes/internal/pkg/errors"
)

// fakeStore records every gateway call so tests can assert on the
// dispatch behavior without a database.
type fakeStore struct {
	calls []string

	retail    map[string]*client.Retail
	wholesale map[string]*client.Wholesale
	corporate map[string]*client.Corporate

	retailErr    error
	wholesaleErr error
	corporateErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		retail:    map[string]*client.Retail{},
		wholesale: map[string]*client.Wholesale{},
		corporate: map[string]*client.Corporate{},
	}
}

func (f *fakeStore) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeStore) InsertRetail(_ context.Context, req *client.CreateRetailRequest) error {
	f.record("InsertRetail")
	f.retail[req.DNI] = &client.Retail{DNI: req.DNI, FullName: req.FullName, AdminDNI: req.AdminDNI}
	return nil
}

func (f *fakeStore) InsertWholesale(_ context.Context, req *client.CreateWholesaleRequest) error {
	f.record("InsertWholesale")
	f.wholesale[req.RUC] = &client.Wholesale{RUC: req.RUC, BusinessName: req.BusinessName, AdminDNI: req.AdminDNI}
	return nil
}

func (f *fakeStore) InsertCorporate(_ context.Context, req *client.CreateCorporateRequest) error {
	f.record("InsertCorporate")
	f.corporate[req.RUC] = &client.Corporate{RUC: req.RUC, BusinessName: req.BusinessName, AdminDNI: req.AdminDNI}
	return nil
}

func (f *fakeStore) UpdateRetail(_ context.Context, dni string, _ *client.UpdateRetailRequest) error {
	f.record("UpdateRetail")
	if _, ok := f.retail[dni]; !ok {
		return xerrors.ErrNotFound
	}
	return nil
}

func (f *fakeStore) UpdateWholesale(_ context.Context, ruc string, _ *client.UpdateWholesaleRequest) error {
	f.record("UpdateWholesale")
	if _, ok := f.wholesale[ruc]; !ok {
		return xerrors.ErrNotFound
	}
	return nil
}

func (f *fakeStore) UpdateCorporate(_ context.Context, ruc string, _ *client.UpdateCorporateRequest) error {
	f.record("UpdateCorporate")
	if _, ok := f.corporate[ruc]; !ok {
		return xerrors.ErrNotFound
	}
	return nil
}

func (f *fakeStore) FindRetail(_ context.Context, dni string) (*client.Retail, error) {
	f.record("FindRetail")
	if c, ok := f.retail[dni]; ok {
		return c, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeStore) FindWholesale(_ context.Context, ruc string) (*client.Wholesale, error) {
	f.record("FindWholesale")
	if c, ok := f.wholesale[ruc]; ok {
		return c, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeStore) FindCorporate(_ context.Context, ruc string) (*client.Corporate, error) {
	f.record("FindCorporate")
	if c, ok := f.corporate[ruc]; ok {
		return c, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeStore) ListRetailSummaries(_ context.Context) ([]client.Summary, error) {
	f.record("ListRetailSummaries")
	if f.retailErr != nil {
		return nil, f.retailErr
	}
	var out []client.Summary
	for _, c := range f.retail {
		out = append(out, client.Summary{Code: c.DNI, Name: c.FullName, Kind: client.KindRetail})
	}
	return out, nil
}

func (f *fakeStore) ListWholesaleSummaries(_ context.Context) ([]client.Summary, error) {
	f.record("ListWholesaleSummaries")
	if f.wholesaleErr != nil {
		return nil, f.wholesaleErr
	}
	var out []client.Summary
	for _, c := range f.wholesale {
		out = append(out, client.Summary{Code: c.RUC, Name: c.BusinessName, Kind: client.KindWholesale})
	}
	return out, nil
}

func (f *fakeStore) ListCorporateSummaries(_ context.Context) ([]client.Summary, error) {
	f.record("ListCorporateSummaries")
	if f.corporateErr != nil {
		return nil, f.corporateErr
	}
	var out []client.Summary
	for _, c := range f.corporate {
		out = append(out, client.Summary{Code: c.RUC, Name: c.BusinessName, Kind: client.KindCorporate})
	}
	return out, nil
}

func (f *fakeStore) ExistsRetail(_ context.Context, dni string) (bool, error) {
	f.record("ExistsRetail")
	_, ok := f.retail[dni]
	return ok, nil
}

func (f *fakeStore) ExistsWholesale(_ context.Context, ruc string) (bool, error) {
	f.record("ExistsWholesale")
	_, ok := f.wholesale[ruc]
	return ok, nil
}

func (f *fakeStore) ExistsCorporate(_ context.Context, ruc string) (bool, error) {
	f.record("ExistsCorporate")
	_, ok := f.corporate[ruc]
	return ok, nil
}

func (f *fakeStore) DeleteRetail(_ context.Context, dni string) error {
	f.record("DeleteRetail")
	delete(f.retail, dni)
	return nil
}

func (f *fakeStore) DeleteWholesale(_ context.Context, ruc string) error {
	f.record("DeleteWholesale")
	delete(f.wholesale, ruc)
	return nil
}

func (f *fakeStore) DeleteCorporate(_ context.Context, ruc string) error {
	f.record("DeleteCorporate")
	delete(f.corporate, ruc)
	return nil
}

func newTestService(store *fakeStore) *ClientService {
	return NewClientService(store, zap.NewNop())
}

// ========== Lookups ==========

func TestGetByCodeRetailOnlyQueriesRetail(t *testing.T) {
	store := newFakeStore()
	store.retail["12345678"] = &client.Retail{DNI: "12345678", FullName: "Luis Paredes"}
	svc := newTestService(store)

	rec, err := svc.GetByCode(context.Background(), "12345678")
	require.NoError(t, err)

	assert.Equal(t, client.KindRetail, rec.Kind)
	assert.Equal(t, "12345678", rec.Code())
	assert.Equal(t, []string{"FindRetail"}, store.calls)
}

func TestGetByCodeTaxTriesWholesaleFirst(t *testing.T) {
	store := newFakeStore()
	store.wholesale["20123456789"] = &client.Wholesale{RUC: "20123456789", BusinessName: "ACME SA"}
	svc := newTestService(store)

	rec, err := svc.GetByCode(context.Background(), "20123456789")
	require.NoError(t, err)

	assert.Equal(t, client.KindWholesale, rec.Kind)
	assert.Equal(t, []string{"FindWholesale"}, store.calls)
}

func TestGetByCodeTaxFallsBackToCorporate(t *testing.T) {
	store := newFakeStore()
	store.corporate["20987654321"] = &client.Corporate{RUC: "20987654321", BusinessName: "Corp SAC"}
	svc := newTestService(store)

	rec, err := svc.GetByCode(context.Background(), "20987654321")
	require.NoError(t, err)

	assert.Equal(t, client.KindCorporate, rec.Kind)
	assert.Equal(t, []string{"FindWholesale", "FindCorporate"}, store.calls)
}

func TestGetByCodeBadLengthIssuesNoQuery(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.GetByCode(context.Background(), "12345")
	assert.True(t, xerrors.Is(err, xerrors.ErrNotFound))
	assert.Empty(t, store.calls)
}

// ========== Deletion ==========

func TestDeleteByCodeBadLength(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	out := svc.DeleteByCode(context.Background(), "123456")
	assert.False(t, out.Deleted)
	assert.Equal(t, "El código debe tener 8 (DNI) o 11 (RUC) caracteres.", out.Message)
	assert.Empty(t, store.calls)
}

func TestDeleteByCodeRetail(t *testing.T) {
	store := newFakeStore()
	store.retail["12345678"] = &client.Retail{DNI: "12345678"}
	svc := newTestService(store)

	out := svc.DeleteByCode(context.Background(), "12345678")
	assert.True(t, out.Deleted)
	assert.Equal(t, "Cliente minorista eliminado correctamente.", out.Message)
	assert.Empty(t, store.retail)
}

func TestDeleteByCodeRetailMissing(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	out := svc.DeleteByCode(context.Background(), "12345678")
	assert.False(t, out.Deleted)
	assert.Equal(t, "El DNI no pertenece a un cliente minorista.", out.Message)
	assert.NotContains(t, store.calls, "DeleteRetail")
}

func TestDeleteByCodeWholesaleWinsOverCorporate(t *testing.T) {
	store := newFakeStore()
	store.wholesale["20123456789"] = &client.Wholesale{RUC: "20123456789"}
	svc := newTestService(store)

	out := svc.DeleteByCode(context.Background(), "20123456789")
	assert.True(t, out.Deleted)
	assert.Equal(t, "Cliente mayorista eliminado correctamente.", out.Message)
	assert.NotContains(t, store.calls, "DeleteCorporate")
}

func TestDeleteByCodeCorporate(t *testing.T) {
	store := newFakeStore()
	store.corporate["20987654321"] = &client.Corporate{RUC: "20987654321"}
	svc := newTestService(store)

	out := svc.DeleteByCode(context.Background(), "20987654321")
	assert.True(t, out.Deleted)
	assert.Equal(t, "Cliente corporativo eliminado correctamente.", out.Message)
}

func TestDeleteByCodeTaxNoMatch(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	out := svc.DeleteByCode(context.Background(), "20111111111")
	assert.False(t, out.Deleted)
	assert.Equal(t, "El RUC no pertenece a ningún cliente registrado.", out.Message)
}

// ========== Listing ==========

func TestGetAllUnionsAndTags(t *testing.T) {
	store := newFakeStore()
	store.retail["12345678"] = &client.Retail{DNI: "12345678", FullName: "Luis"}
	store.wholesale["20123456789"] = &client.Wholesale{RUC: "20123456789", BusinessName: "ACME SA"}
	store.corporate["20987654321"] = &client.Corporate{RUC: "20987654321", BusinessName: "Corp SAC"}
	svc := newTestService(store)

	all := svc.GetAll(context.Background())
	require.Len(t, all, 3)

	kinds := map[client.Kind]bool{}
	for _, s := range all {
		kinds[s.Kind] = true
	}
	assert.True(t, kinds[client.KindRetail])
	assert.True(t, kinds[client.KindWholesale])
	assert.True(t, kinds[client.KindCorporate])
}

func TestGetAllToleratesFailingSubtype(t *testing.T) {
	store := newFakeStore()
	store.retail["12345678"] = &client.Retail{DNI: "12345678", FullName: "Luis"}
	store.wholesaleErr = errors.New(`relation "clientemayorista" does not exist`)
	svc := newTestService(store)

	all := svc.GetAll(context.Background())
	require.Len(t, all, 1)
	assert.Equal(t, client.KindRetail, all[0].Kind)
}

// ========== Creation ==========

func TestCreateRetailValidatesIDs(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	err := svc.CreateRetail(context.Background(), &client.CreateRetailRequest{
		DNI: "123", FullName: "Luis", AdminDNI: "87654321",
	})
	assert.True(t, xerrors.Is(err, xerrors.ErrInvalidInput))

	err = svc.CreateRetail(context.Background(), &client.CreateRetailRequest{
		DNI: "12345678", FullName: "Luis", AdminDNI: "",
	})
	assert.True(t, xerrors.Is(err, xerrors.ErrInvalidInput))
	assert.Empty(t, store.calls)
}

func TestCreateWholesaleRejectsTakenRUC(t *testing.T) {
	store := newFakeStore()
	store.corporate["20123456789"] = &client.Corporate{RUC: "20123456789"}
	svc := newTestService(store)

	err := svc.CreateWholesale(context.Background(), &client.CreateWholesaleRequest{
		RUC: "20123456789", BusinessName: "ACME SA", AdminDNI: "87654321",
	})
	assert.True(t, xerrors.Is(err, xerrors.ErrConflict))
	assert.NotContains(t, store.calls, "InsertWholesale")
}

func TestCreateCorporateValidatesContactDNI(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	err := svc.CreateCorporate(context.Background(), &client.CreateCorporateRequest{
		RUC: "20123456789", BusinessName: "Corp SAC", AdminDNI: "87654321", ContactDNI: "99",
	})
	assert.True(t, xerrors.Is(err, xerrors.ErrInvalidInput))
}

// ========== Updates ==========

func TestUpdateRetailEmptyRequestIsNoOp(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	err := svc.UpdateRetail(context.Background(), "12345678", &client.UpdateRetailRequest{})
	require.NoError(t, err)
	assert.Empty(t, store.calls)
}

func TestUpdateWholesaleValidatesRUC(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	name := "ACME SA"
	err := svc.UpdateWholesale(context.Background(), "123", &client.UpdateWholesaleRequest{BusinessName: &name})
	assert.True(t, xerrors.Is(err, xerrors.ErrInvalidInput))
	assert.Empty(t, store.calls)
}
