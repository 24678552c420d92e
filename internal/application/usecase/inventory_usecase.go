// Package usecase contiene los casos de uso CRUD del catálogo: inventario,
// proveedores, categorías, cuentas y perfiles de cliente.
package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

// InventoryUseCase CRUD del inventario.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	categoryRepo  repository.CategoryRepository
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(inventoryRepo repository.InventoryRepository, categoryRepo repository.CategoryRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo, categoryRepo: categoryRepo}
}

// List devuelve el inventario ordenado por nombre (sin distinguir
// mayúsculas). limit == 0 desactiva la paginación; total siempre es el
// tamaño completo de la colección.
func (uc *InventoryUseCase) List(ctx context.Context, page, limit int) (*dto.InventoryListResponse, error) {
	items, err := uc.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	total := len(items)
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}
		items = items[start:end]
	}
	return &dto.InventoryListResponse{Success: true, Inventory: items, Total: total}, nil
}

// Get devuelve un artículo por id. NotFound si no existe.
func (uc *InventoryUseCase) Get(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("Item")
	}
	return &dto.InventoryItemResponse{Success: true, Item: item}, nil
}

// resolveCategory resuelve un valor de categoría enviado por el cliente. Un
// valor con prefijo "cat_" es un id: se busca el documento y se usa su
// nombre. Cualquier fallo de resolución cae al valor crudo.
func (uc *InventoryUseCase) resolveCategory(ctx context.Context, category string) string {
	if !strings.HasPrefix(category, "cat_") {
		return category
	}
	doc, err := uc.categoryRepo.GetByID(ctx, category)
	if err != nil || doc == nil {
		return category
	}
	if name := doc.Name(); name != "" {
		return name
	}
	return category
}

// validateItem normaliza y valida una petición de alta o edición. Devuelve
// los campos ya saneados, con la categoría resuelta a nombre.
func (uc *InventoryUseCase) validateItem(ctx context.Context, in dto.InventoryItemRequest) (*entity.InventoryItem, error) {
	switch {
	case in.Name == "":
		return nil, domain.Validation("Missing required field: name")
	case in.Category == "":
		return nil, domain.Validation("Missing required field: category")
	case in.Stock == nil:
		return nil, domain.Validation("Missing required field: stock")
	case in.Price == nil:
		return nil, domain.Validation("Missing required field: price")
	case in.Supplier == "":
		return nil, domain.Validation("Missing required field: supplier")
	}
	if *in.Stock < 0 || *in.Price < 0 {
		return nil, domain.Validation("Stock and price must be non-negative")
	}
	return &entity.InventoryItem{
		Name:     validate.Sanitize(in.Name),
		Category: uc.resolveCategory(ctx, validate.Sanitize(in.Category)),
		Stock:    *in.Stock,
		Price:    *in.Price,
		Supplier: validate.Sanitize(in.Supplier),
	}, nil
}

// checkDuplicate falla si ya existe otro artículo con el mismo par (name,
// category). excludeID exime al propio artículo en una edición.
func (uc *InventoryUseCase) checkDuplicate(ctx context.Context, name, category, excludeID string) error {
	dups, err := uc.inventoryRepo.FindByNameAndCategory(ctx, name, category)
	if err != nil {
		return err
	}
	for _, d := range dups {
		if d.ID != excludeID {
			return domain.Validation("An item with this name and category already exists.")
		}
	}
	return nil
}

// Create da de alta un artículo nuevo.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.InventoryItemRequest) (*dto.CreateItemResponse, error) {
	item, err := uc.validateItem(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := uc.checkDuplicate(ctx, item.Name, item.Category, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	id, err := uc.inventoryRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return &dto.CreateItemResponse{Success: true, Message: "Inventory item created successfully", ItemID: id}, nil
}

// Update reemplaza los campos editables de un artículo. La edición exige el
// documento completo, igual que el alta.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.InventoryItemRequest) error {
	item, err := uc.validateItem(ctx, in)
	if err != nil {
		return err
	}
	if err := uc.checkDuplicate(ctx, item.Name, item.Category, id); err != nil {
		return err
	}
	return uc.inventoryRepo.Update(ctx, id, map[string]any{
		"name":       item.Name,
		"category":   item.Category,
		"stock":      item.Stock,
		"price":      item.Price,
		"supplier":   item.Supplier,
		"updated_at": time.Now(),
	})
}

// Delete elimina un artículo. NotFound si no existe.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.NotFound("Item")
	}
	return uc.inventoryRepo.Delete(ctx, id)
}
