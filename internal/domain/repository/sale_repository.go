package repository

import (
	"context"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para Sale.
// GetByID devuelve (nil, nil) cuando el documento no existe.
type SaleRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]entity.Sale, error)
	// Set persiste la venta con el id ya asignado (el procesador de ventas
	// genera el uuid antes de escribir).
	Set(ctx context.Context, sale *entity.Sale) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
