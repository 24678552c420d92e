package repository

import (
	"context"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// DocumentRepository puerto genérico para colecciones de atributos libres.
// GetByID devuelve (nil, nil) cuando el documento no existe.
type DocumentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	List(ctx context.Context) ([]entity.Document, error)
	Create(ctx context.Context, fields map[string]any) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// SupplierRepository y CategoryRepository son colecciones de atributos
// libres con el mismo contrato; se distinguen para que el cableado en main
// quede explícito.
type SupplierRepository interface{ DocumentRepository }

type CategoryRepository interface{ DocumentRepository }
