package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/retail-pos-api/internal/application/auth"
	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/infrastructure/memstore"
	"github.com/jhoicas/retail-pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{Secret: "secret-de-prueba", ExpMinutes: 60, Issuer: "retail-pos-test"}

func newAuthUseCase(t *testing.T) (*auth.UseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return auth.NewUseCase(store.Users(), testJWT), store
}

func seedUser(t *testing.T, store *memstore.Store, username, password, role string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	id, err := store.Users().Create(context.Background(), &entity.User{
		Username:     username,
		Email:        username + "@company.com",
		PasswordHash: string(hash),
		Role:         role,
		Name:         username,
		IsActive:     true,
	})
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, store := newAuthUseCase(t)
	id := seedUser(t, store, "salesman", "sales123", entity.RoleUser)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "salesman",
		Password: "sales123",
		Role:     entity.RoleUser,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, id, resp.User.ID)
	assert.Equal(t, entity.RoleUser, resp.User.Role)
}

// El rol agregado "staff" acepta admin, user y manager, pero no customer.
func TestLogin_RolStaffAgregado(t *testing.T) {
	uc, store := newAuthUseCase(t)
	seedUser(t, store, "admin", "admin123", entity.RoleAdmin)
	seedUser(t, store, "salesman", "sales123", entity.RoleUser)
	seedUser(t, store, "gerente", "clave123", entity.RoleManager)
	seedUser(t, store, "cliente", "clave123", entity.RoleCustomer)

	for _, c := range []struct{ username, password string }{
		{"admin", "admin123"},
		{"salesman", "sales123"},
		{"gerente", "clave123"},
	} {
		resp, err := uc.Login(context.Background(), dto.LoginRequest{
			Username: c.username, Password: c.password, Role: entity.RoleStaff,
		})
		require.NoError(t, err, "%s debe poder entrar como staff", c.username)
		assert.True(t, resp.Success)
	}

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "cliente", Password: "clave123", Role: entity.RoleStaff,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"un customer no debe autenticarse como staff")
}

// Username y rol deben coincidir a la vez: el mismo username bajo otro rol
// no autentica.
func TestLogin_RolNoCoincide(t *testing.T) {
	uc, store := newAuthUseCase(t)
	seedUser(t, store, "salesman", "sales123", entity.RoleUser)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "salesman", Password: "sales123", Role: entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, store := newAuthUseCase(t)
	seedUser(t, store, "salesman", "sales123", entity.RoleUser)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "salesman", Password: "otra-clave", Role: entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "salesman", Role: entity.RoleUser})
	assert.EqualError(t, err, "Please fill in all fields")
}

// El login exitoso estampa last_login.
func TestLogin_EstampaLastLogin(t *testing.T) {
	uc, store := newAuthUseCase(t)
	id := seedUser(t, store, "salesman", "sales123", entity.RoleUser)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "salesman", Password: "sales123", Role: entity.RoleUser,
	})
	require.NoError(t, err)

	u, err := store.Users().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotNil(t, u.LastLogin, "last_login debe quedar estampado tras el login")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SeedDefaultAccounts
// ──────────────────────────────────────────────────────────────────────────────

func TestSeedDefaultAccounts_CreaEIdempotente(t *testing.T) {
	store := memstore.New()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	require.NoError(t, auth.SeedDefaultAccounts(context.Background(), store.Users(), log))

	users, err := store.Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 4)

	byUsername := make(map[string]entity.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}
	assert.Equal(t, entity.RoleAdmin, byUsername["admin"].Role)
	assert.Equal(t, entity.RoleUser, byUsername["salesman"].Role)
	assert.Equal(t, entity.RoleCustomer, byUsername["customer"].Role)
	assert.Equal(t, entity.RoleManager, byUsername["Luigi Corpuz"].Role)
	assert.True(t, byUsername["admin"].IsActive)
	assert.NotEqual(t, "admin123", byUsername["admin"].PasswordHash,
		"la password nunca se guarda en claro")

	// Una segunda pasada no duplica cuentas.
	require.NoError(t, auth.SeedDefaultAccounts(context.Background(), store.Users(), log))
	users, err = store.Users().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 4)
}
