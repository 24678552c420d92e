// Package repository define los puertos de persistencia (DIP). Todas las
// implementaciones se limitan al contrato del almacén de documentos: lectura
// por id, escaneo completo, filtro de igualdad por campo, inserción,
// actualización parcial por id y borrado por id.
package repository

import (
	"context"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
// GetByID devuelve (nil, nil) cuando el documento no existe.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	ListByRole(ctx context.Context, role string) ([]entity.User, error)
	Create(ctx context.Context, u *entity.User) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
