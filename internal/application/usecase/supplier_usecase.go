package usecase

import (
	"context"

	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

// SupplierUseCase CRUD de proveedores. Los proveedores son documentos de
// atributos libres: se guardan tal cual llegan, con los strings saneados.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso de proveedores.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// List devuelve todos los proveedores aplanados ({id, ...campos}).
func (uc *SupplierUseCase) List(ctx context.Context) ([]map[string]any, error) {
	docs, err := uc.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, len(docs))
	for i, d := range docs {
		out[i] = d.Flatten()
	}
	return out, nil
}

// Get devuelve un proveedor por id. NotFound si no existe.
func (uc *SupplierUseCase) Get(ctx context.Context, id string) (map[string]any, error) {
	doc, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFound("Supplier")
	}
	return doc.Fields, nil
}

// Create da de alta un proveedor con los campos saneados.
func (uc *SupplierUseCase) Create(ctx context.Context, fields map[string]any) (string, error) {
	if len(fields) == 0 {
		return "", domain.Validation("No data provided")
	}
	return uc.supplierRepo.Create(ctx, validate.SanitizeFields(fields))
}

// Update aplica una edición parcial sobre un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.Validation("No data provided")
	}
	return uc.supplierRepo.Update(ctx, id, validate.SanitizeFields(fields))
}

// Delete elimina un proveedor. Borrar un id inexistente no es error.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.supplierRepo.Delete(ctx, id)
}
