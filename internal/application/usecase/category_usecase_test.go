package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/infrastructure/memstore"
)

func newCategoryUseCase(t *testing.T) (*usecase.CategoryUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return usecase.NewCategoryUseCase(store.Categories(), store.Inventory()), store
}

// Cada lectura de categoría adjunta item_count: los artículos del inventario
// cuya categoría coincide por nombre.
func TestCategoryList_AdjuntaItemCount(t *testing.T) {
	uc, store := newCategoryUseCase(t)
	ctx := context.Background()

	id, err := uc.Create(ctx, map[string]any{"name": "Beverages", "description": "Bebidas frías"})
	require.NoError(t, err)
	assert.True(t, len(id) > 4 && id[:4] == "cat_", "los ids de categoría llevan el prefijo cat_")

	for _, name := range []string{"Coca Cola", "Agua"} {
		_, err := store.Inventory().Create(ctx, &entity.InventoryItem{Name: name, Category: "Beverages"})
		require.NoError(t, err)
	}
	_, err = store.Inventory().Create(ctx, &entity.InventoryItem{Name: "Pan", Category: "Bakery"})
	require.NoError(t, err)

	rows, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Beverages", rows[0]["name"])
	assert.Equal(t, 2, rows[0]["item_count"])
	assert.Equal(t, id, rows[0]["id"], "Flatten expone el id del documento")

	row, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, row["item_count"])
}

func TestCategoryGet_Inexistente(t *testing.T) {
	uc, _ := newCategoryUseCase(t)

	_, err := uc.Get(context.Background(), "cat_no-existe")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Category", nf.Resource)
}

// El alta sanea los valores string del documento libre.
func TestCategoryCreate_SaneaCampos(t *testing.T) {
	uc, store := newCategoryUseCase(t)
	ctx := context.Background()

	id, err := uc.Create(ctx, map[string]any{"name": "  <b>Snacks</b> "})
	require.NoError(t, err)

	doc, err := store.Categories().GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "bSnacks/b", doc.Name())

	_, err = uc.Create(ctx, map[string]any{})
	assert.EqualError(t, err, "No data provided")
}
