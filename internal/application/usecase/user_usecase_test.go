package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/infrastructure/memstore"
)

func newUserUseCase(t *testing.T) (*usecase.UserUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return usecase.NewUserUseCase(store.Users()), store
}

func accountRequest() dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		Username:        "cajero1",
		Email:           "cajero1@company.com",
		Password:        "clave123",
		ConfirmPassword: "clave123",
		Role:            entity.RoleUser,
		FullName:        "Cajero Uno",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateAccount
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAccount_Exitoso(t *testing.T) {
	uc, store := newUserUseCase(t)

	acc, err := uc.CreateAccount(context.Background(), accountRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, acc.ID)
	assert.Equal(t, "cajero1", acc.Username)
	assert.Equal(t, "Active", acc.Status)

	u, err := store.Users().GetByID(context.Background(), acc.ID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, u.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave123")),
		"la password se persiste con hash bcrypt")
}

// La cadena de validaciones del alta devuelve el primer fallo encontrado.
func TestCreateAccount_Validaciones(t *testing.T) {
	uc, _ := newUserUseCase(t)
	ctx := context.Background()

	cases := []struct {
		mutate func(*dto.CreateAccountRequest)
		msg    string
	}{
		{func(r *dto.CreateAccountRequest) { r.FullName = "" }, "Please fill in all fields"},
		{func(r *dto.CreateAccountRequest) { r.Username = "ab" }, "Username must be 3-20 characters long and contain only letters and numbers"},
		{func(r *dto.CreateAccountRequest) { r.Username = "con-guion" }, "Username must be 3-20 characters long and contain only letters and numbers"},
		{func(r *dto.CreateAccountRequest) { r.Email = "no-es-email" }, "Please enter a valid email address"},
		{func(r *dto.CreateAccountRequest) { r.Password, r.ConfirmPassword = "corta", "corta" }, "Password must be at least 6 characters long"},
		{func(r *dto.CreateAccountRequest) { r.ConfirmPassword = "otra-clave" }, "Passwords do not match"},
		{func(r *dto.CreateAccountRequest) { r.Role = entity.RoleCustomer }, "Invalid role selected"},
	}
	for _, c := range cases {
		req := accountRequest()
		c.mutate(&req)
		_, err := uc.CreateAccount(ctx, req)
		assert.EqualError(t, err, c.msg)
	}
}

func TestCreateAccount_UsernameDuplicado(t *testing.T) {
	uc, _ := newUserUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateAccount(ctx, accountRequest())
	require.NoError(t, err)

	_, err = uc.CreateAccount(ctx, accountRequest())
	assert.EqualError(t, err, "Username already exists")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Accounts / Update
// ──────────────────────────────────────────────────────────────────────────────

// El estado de la cuenta se deriva de is_active.
func TestAccounts_EstadoDerivado(t *testing.T) {
	uc, store := newUserUseCase(t)
	ctx := context.Background()

	_, err := store.Users().Create(ctx, &entity.User{ID: "u-1", Username: "activo", Role: entity.RoleUser, IsActive: true})
	require.NoError(t, err)
	_, err = store.Users().Create(ctx, &entity.User{ID: "u-2", Username: "inactivo", Role: entity.RoleUser})
	require.NoError(t, err)

	accounts, err := uc.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	byUsername := make(map[string]dto.AccountResponse)
	for _, a := range accounts {
		byUsername[a.Username] = a
	}
	assert.Equal(t, "Active", byUsername["activo"].Status)
	assert.Equal(t, "Inactive", byUsername["inactivo"].Status)
}

// Un campo password en la edición se valida y se persiste como hash.
func TestUpdateUser_RehashDePassword(t *testing.T) {
	uc, store := newUserUseCase(t)
	ctx := context.Background()

	_, err := store.Users().Create(ctx, &entity.User{ID: "u-1", Username: "cajero1", Role: entity.RoleUser})
	require.NoError(t, err)

	err = uc.Update(ctx, "u-1", map[string]any{"password": "corta"})
	assert.EqualError(t, err, "Password must be at least 6 characters long")

	require.NoError(t, uc.Update(ctx, "u-1", map[string]any{"password": "nueva-clave"}))

	u, err := store.Users().GetByID(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("nueva-clave")))
}

func TestUpdateUser_SinDatos(t *testing.T) {
	uc, _ := newUserUseCase(t)

	err := uc.Update(context.Background(), "u-1", map[string]any{})
	assert.EqualError(t, err, "No data provided")
}
