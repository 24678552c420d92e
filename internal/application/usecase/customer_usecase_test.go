package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/infrastructure/memstore"
)

func newCustomerUseCase(t *testing.T) (*usecase.CustomerUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return usecase.NewCustomerUseCase(store.Customers()), store
}

func TestUpdateProfile_CreaPerfilNuevo(t *testing.T) {
	uc, store := newCustomerUseCase(t)
	ctx := context.Background()

	err := uc.UpdateProfile(ctx, "staff-1", dto.UpdateCustomerRequest{
		Name:       "Ana",
		Age:        "34",
		Sex:        "F",
		Occupation: "Contadora",
		Phone:      "555-1234",
	}, "")
	require.NoError(t, err)

	p, err := store.Customers().FindByName(ctx, "Ana")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.Age)
	assert.Equal(t, 34, *p.Age)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "555-1234", *p.Phone)
	assert.Nil(t, p.Address, "un demográfico ausente queda en null")
	assert.Equal(t, "staff-1", p.UpdatedBy)
	assert.NotNil(t, p.CreatedAt)
}

// Una edición reemplaza los demográficos: los ausentes se borran.
func TestUpdateProfile_EdicionBorraAusentes(t *testing.T) {
	uc, store := newCustomerUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.UpdateProfile(ctx, "staff-1", dto.UpdateCustomerRequest{
		Name: "Ana", Sex: "F", Address: "Calle 1",
	}, ""))
	require.NoError(t, uc.UpdateProfile(ctx, "staff-2", dto.UpdateCustomerRequest{
		Name: "Ana", Sex: "F",
	}, ""))

	p, err := store.Customers().FindByName(ctx, "Ana")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Nil(t, p.Address)
	assert.Equal(t, "staff-2", p.UpdatedBy)
}

// Un renombrado localiza el perfil por original_name y escribe el nombre
// nuevo sobre el mismo documento.
func TestUpdateProfile_RenombradoPorOriginalName(t *testing.T) {
	uc, store := newCustomerUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.UpdateProfile(ctx, "staff-1", dto.UpdateCustomerRequest{Name: "Ana"}, ""))
	before, err := store.Customers().FindByName(ctx, "Ana")
	require.NoError(t, err)
	require.NotNil(t, before)

	require.NoError(t, uc.UpdateProfile(ctx, "staff-1", dto.UpdateCustomerRequest{
		Name: "Ana María", OriginalName: "Ana",
	}, ""))

	renamed, err := store.Customers().FindByName(ctx, "Ana María")
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Equal(t, before.ID, renamed.ID, "el renombrado no crea un documento nuevo")

	old, err := store.Customers().FindByName(ctx, "Ana")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestUpdateProfile_Validaciones(t *testing.T) {
	uc, _ := newCustomerUseCase(t)
	ctx := context.Background()

	err := uc.UpdateProfile(ctx, "staff-1", dto.UpdateCustomerRequest{}, "")
	assert.EqualError(t, err, "Customer name is required")

	for _, age := range []string{"abc", "0", "121", "-3"} {
		err := uc.UpdateProfile(ctx, "staff-1", dto.UpdateCustomerRequest{Name: "Ana", Age: age}, "")
		assert.EqualError(t, err, "Invalid age", "edad %q", age)
	}
}
