package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"registro-clientes/internal/domain/admin"
	xerrors "registro-clientes/internal/pkg/errors"
	"registro-clientes/internal/pkg/token"
)

type fakeAdminStore struct {
	byUsername map[string]*admin.Administrator
	created    []*admin.Administrator
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{byUsername: map[string]*admin.Administrator{}}
}

func (f *fakeAdminStore) FindByUsername(_ context.Context, username string) (*admin.Administrator, error) {
	if a, ok := f.byUsername[username]; ok {
		return a, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeAdminStore) Create(_ context.Context, a *admin.Administrator) error {
	f.byUsername[a.Username] = a
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAdminStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeAdminStore) ExistsByDNI(_ context.Context, dni string) (bool, error) {
	for _, a := range f.byUsername {
		if a.DNI == dni {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(t *testing.T, store AdminStore) *AuthService {
	t.Helper()
	tokens, err := token.NewManager("test-secret", "registro-clientes", time.Hour)
	require.NoError(t, err)
	return NewAuthService(store, tokens, zap.NewNop())
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeAdminStore()
	svc := newTestService(t, store)

	a, err := svc.Register(context.Background(), &admin.RegisterRequest{
		DNI:      "12345678",
		FullName: "Ana Torres",
		Username: "ana",
		Password: "secreta",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secreta", a.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.Password), []byte("secreta")))
}

func TestRegisterRejectsBadDNI(t *testing.T) {
	svc := newTestService(t, newFakeAdminStore())

	_, err := svc.Register(context.Background(), &admin.RegisterRequest{
		DNI:      "123",
		FullName: "Ana Torres",
		Username: "ana",
		Password: "secreta",
	})
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrInvalidInput))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	store := newFakeAdminStore()
	svc := newTestService(t, store)

	_, err := svc.Register(context.Background(), &admin.RegisterRequest{
		DNI: "12345678", FullName: "Ana", Username: "ana", Password: "x",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &admin.RegisterRequest{
		DNI: "87654321", FullName: "Otra Ana", Username: "ana", Password: "y",
	})
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.ErrConflict))
}

func TestLoginRoundTrip(t *testing.T) {
	store := newFakeAdminStore()
	svc := newTestService(t, store)

	_, err := svc.Register(context.Background(), &admin.RegisterRequest{
		DNI: "12345678", FullName: "Ana", Username: "ana", Password: "secreta",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &admin.LoginRequest{Username: "ana", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "12345678", resp.DNI)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "12345678", claims.DNI)
	assert.Equal(t, "ana", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeAdminStore()
	svc := newTestService(t, store)

	_, err := svc.Register(context.Background(), &admin.RegisterRequest{
		DNI: "12345678", FullName: "Ana", Username: "ana", Password: "secreta",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &admin.LoginRequest{Username: "ana", Password: "otra"})
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t, newFakeAdminStore())

	_, err := svc.Login(context.Background(), &admin.LoginRequest{Username: "nadie", Password: "x"})
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}

func TestLoginLegacyPlaintextRow(t *testing.T) {
	store := newFakeAdminStore()
	store.byUsername["jhon"] = &admin.Administrator{
		DNI: "11112222", Username: "jhon", Password: "jhon",
	}
	svc := newTestService(t, store)

	resp, err := svc.Login(context.Background(), &admin.LoginRequest{Username: "jhon", Password: "jhon"})
	require.NoError(t, err)
	assert.Equal(t, "11112222", resp.DNI)

	_, err = svc.Login(context.Background(), &admin.LoginRequest{Username: "jhon", Password: "JHON"})
	assert.True(t, xerrors.Is(err, xerrors.ErrUnauthorized))
}
