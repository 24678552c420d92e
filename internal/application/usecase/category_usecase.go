package usecase

import (
	"context"

	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

// CategoryUseCase CRUD de categorías. Igual que los proveedores son
// documentos libres, pero cada lectura adjunta item_count: el número de
// artículos del inventario cuya categoría (denormalizada por nombre)
// coincide con el name del documento.
type CategoryUseCase struct {
	categoryRepo  repository.CategoryRepository
	inventoryRepo repository.InventoryRepository
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, inventoryRepo repository.InventoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, inventoryRepo: inventoryRepo}
}

func (uc *CategoryUseCase) withItemCount(ctx context.Context, d entity.Document) (map[string]any, error) {
	out := d.Flatten()
	count, err := uc.inventoryRepo.CountByCategory(ctx, d.Name())
	if err != nil {
		return nil, err
	}
	out["item_count"] = count
	return out, nil
}

// List devuelve todas las categorías con su item_count.
func (uc *CategoryUseCase) List(ctx context.Context) ([]map[string]any, error) {
	docs, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		row, err := uc.withItemCount(ctx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// Get devuelve una categoría por id con su item_count. NotFound si no existe.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (map[string]any, error) {
	doc, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFound("Category")
	}
	return uc.withItemCount(ctx, *doc)
}

// Create da de alta una categoría con los campos saneados.
func (uc *CategoryUseCase) Create(ctx context.Context, fields map[string]any) (string, error) {
	if len(fields) == 0 {
		return "", domain.Validation("No data provided")
	}
	return uc.categoryRepo.Create(ctx, validate.SanitizeFields(fields))
}

// Update aplica una edición parcial sobre una categoría. Renombrar una
// categoría no reetiqueta los artículos que ya la referencian por nombre.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.Validation("No data provided")
	}
	return uc.categoryRepo.Update(ctx, id, validate.SanitizeFields(fields))
}

// Delete elimina una categoría. Borrar un id inexistente no es error.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.categoryRepo.Delete(ctx, id)
}
