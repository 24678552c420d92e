package repository

import (
	"context"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para InventoryItem.
// GetByID devuelve (nil, nil) cuando el documento no existe.
type InventoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	List(ctx context.Context) ([]entity.InventoryItem, error)
	// FindByNameAndCategory devuelve los artículos cuyo par (name, category)
	// coincide exactamente; se usa para el chequeo de duplicados.
	FindByNameAndCategory(ctx context.Context, name, category string) ([]entity.InventoryItem, error)
	// CountByCategory cuenta artículos por nombre de categoría (filtro de
	// igualdad); alimenta el item_count derivado de Category.
	CountByCategory(ctx context.Context, category string) (int, error)
	Create(ctx context.Context, item *entity.InventoryItem) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	// UpdateStock fija el stock en un valor absoluto. No hay chequeo
	// condicional ni versión: el decremento de una venta es lee-y-escribe.
	UpdateStock(ctx context.Context, id string, stock int) error
	Delete(ctx context.Context, id string) error
}
