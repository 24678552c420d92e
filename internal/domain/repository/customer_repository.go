package repository

import (
	"context"

	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// CustomerProfileRepository puerto de persistencia para CustomerProfile.
// FindByName devuelve (nil, nil) cuando no hay perfil con ese nombre exacto.
type CustomerProfileRepository interface {
	List(ctx context.Context) ([]entity.CustomerProfile, error)
	FindByName(ctx context.Context, name string) (*entity.CustomerProfile, error)
	Create(ctx context.Context, fields map[string]any) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}
