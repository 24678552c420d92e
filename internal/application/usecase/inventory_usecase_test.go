package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/infrastructure/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newInventoryUseCase(t *testing.T) (*usecase.InventoryUseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return usecase.NewInventoryUseCase(store.Inventory(), store.Categories()), store
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func itemRequest(name, category string, stock int, price float64) dto.InventoryItemRequest {
	return dto.InventoryItemRequest{
		Name:     name,
		Category: category,
		Stock:    intPtr(stock),
		Price:    floatPtr(price),
		Supplier: "Acme Distribución",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests validación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CamposRequeridos(t *testing.T) {
	uc, _ := newInventoryUseCase(t)
	ctx := context.Background()

	cases := []struct {
		in  dto.InventoryItemRequest
		msg string
	}{
		{dto.InventoryItemRequest{}, "Missing required field: name"},
		{dto.InventoryItemRequest{Name: "Coca Cola"}, "Missing required field: category"},
		{dto.InventoryItemRequest{Name: "Coca Cola", Category: "Beverages"}, "Missing required field: stock"},
		{dto.InventoryItemRequest{Name: "Coca Cola", Category: "Beverages", Stock: intPtr(1)}, "Missing required field: price"},
		{dto.InventoryItemRequest{Name: "Coca Cola", Category: "Beverages", Stock: intPtr(1), Price: floatPtr(1)}, "Missing required field: supplier"},
	}
	for _, c := range cases {
		_, err := uc.Create(ctx, c.in)
		assert.EqualError(t, err, c.msg)
	}
}

// Stock cero es válido; la verificación distingue "ausente" de "cero".
func TestCreate_StockCeroValido(t *testing.T) {
	uc, _ := newInventoryUseCase(t)

	resp, err := uc.Create(context.Background(), itemRequest("Coca Cola", "Beverages", 0, 2.5))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ItemID)
}

func TestCreate_ValoresNegativos(t *testing.T) {
	uc, _ := newInventoryUseCase(t)

	_, err := uc.Create(context.Background(), itemRequest("Coca Cola", "Beverages", -1, 2.5))
	assert.EqualError(t, err, "Stock and price must be non-negative")

	_, err = uc.Create(context.Background(), itemRequest("Coca Cola", "Beverages", 1, -2.5))
	assert.EqualError(t, err, "Stock and price must be non-negative")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests duplicados
// ──────────────────────────────────────────────────────────────────────────────

// El par (name, category) es único. La misma combinación duplica; otra
// categoría con el mismo nombre no.
func TestCreate_Duplicado(t *testing.T) {
	uc, _ := newInventoryUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, itemRequest("Coca Cola", "Beverages", 10, 2.5))
	require.NoError(t, err)

	_, err = uc.Create(ctx, itemRequest("Coca Cola", "Beverages", 5, 3))
	assert.EqualError(t, err, "An item with this name and category already exists.")

	_, err = uc.Create(ctx, itemRequest("Coca Cola", "Promociones", 5, 3))
	assert.NoError(t, err)
}

// Editar un artículo sin cambiar name+category no cuenta como duplicado
// consigo mismo.
func TestUpdate_DuplicadoExcluyeAlPropio(t *testing.T) {
	uc, _ := newInventoryUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, itemRequest("Coca Cola", "Beverages", 10, 2.5))
	require.NoError(t, err)

	require.NoError(t, uc.Update(ctx, created.ItemID, itemRequest("Coca Cola", "Beverages", 20, 2.75)))

	resp, err := uc.Get(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Item.Stock)
	assert.Equal(t, 2.75, resp.Item.Price)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests resolución de categoría
// ──────────────────────────────────────────────────────────────────────────────

// Un id de categoría (prefijo cat_) se resuelve al nombre del documento;
// un id desconocido cae al valor crudo.
func TestCreate_ResuelveCategoriaPorId(t *testing.T) {
	uc, store := newInventoryUseCase(t)
	ctx := context.Background()

	catID, err := store.Categories().Create(ctx, map[string]any{"name": "Beverages"})
	require.NoError(t, err)
	require.True(t, len(catID) > 4 && catID[:4] == "cat_")

	created, err := uc.Create(ctx, itemRequest("Coca Cola", catID, 10, 2.5))
	require.NoError(t, err)

	resp, err := uc.Get(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Beverages", resp.Item.Category)

	// Id inexistente: se conserva el valor tal cual.
	created, err = uc.Create(ctx, itemRequest("Fanta", "cat_desconocida", 4, 1.5))
	require.NoError(t, err)
	resp, err = uc.Get(ctx, created.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "cat_desconocida", resp.Item.Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / Get / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestList_OrdenYPaginacion(t *testing.T) {
	uc, _ := newInventoryUseCase(t)
	ctx := context.Background()

	for _, name := range []string{"zanahoria", "Coca Cola", "agua", "Pan"} {
		_, err := uc.Create(ctx, itemRequest(name, "General", 1, 1))
		require.NoError(t, err)
	}

	// Sin límite: todo, ordenado por nombre sin distinguir mayúsculas.
	resp, err := uc.List(ctx, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, resp.Total)
	names := make([]string, len(resp.Inventory))
	for i, it := range resp.Inventory {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"agua", "Coca Cola", "Pan", "zanahoria"}, names)

	// Paginado: total sigue siendo el tamaño completo.
	resp, err = uc.List(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	require.Len(t, resp.Inventory, 1)
	assert.Equal(t, "zanahoria", resp.Inventory[0].Name)

	// Página fuera de rango: lista vacía, sin error.
	resp, err = uc.List(ctx, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, resp.Inventory)
}

func TestGet_Inexistente(t *testing.T) {
	uc, _ := newInventoryUseCase(t)

	_, err := uc.Get(context.Background(), "no-existe")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Item", nf.Resource)
}

func TestDelete_ExigeExistencia(t *testing.T) {
	uc, store := newInventoryUseCase(t)
	ctx := context.Background()

	err := uc.Delete(ctx, "no-existe")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)

	id, err := store.Inventory().Create(ctx, &entity.InventoryItem{Name: "Pan", Category: "General", Supplier: "Acme"})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, id))

	item, err := store.Inventory().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, item)
}
