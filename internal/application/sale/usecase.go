// Package sale implementa el procesador de ventas: validación del carrito,
// persistencia del registro y decremento best-effort del stock.
package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/repository"
	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

// UseCase procesador de ventas.
type UseCase struct {
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
}

// NewUseCase construye el procesador de ventas.
func NewUseCase(saleRepo repository.SaleRepository, inventoryRepo repository.InventoryRepository) *UseCase {
	return &UseCase{saleRepo: saleRepo, inventoryRepo: inventoryRepo}
}

// Create procesa una venta en dos fases. Primero valida todas las líneas
// contra el inventario (id presente, cantidad positiva, stock suficiente);
// cualquier fallo aborta sin escribir nada. Después persiste la venta y
// decrementa el stock línea a línea, best effort: un decremento fallido se
// registra y no revierte la venta ni las demás líneas.
func (uc *UseCase) Create(ctx context.Context, staffID string, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	customerName := validate.Sanitize(in.CustomerName)
	if customerName == "" || len(in.Items) == 0 {
		return nil, domain.Validation("Missing required fields")
	}
	if in.Total < 0 {
		return nil, domain.Validation("Total must be non-negative")
	}

	// Fase 1: validar todas las líneas antes de escribir.
	for _, it := range in.Items {
		if it.ID == "" || it.Quantity <= 0 {
			return nil, domain.Validation("Invalid item data")
		}
		item, err := uc.inventoryRepo.GetByID(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			name := it.Name
			if name == "" {
				name = "Unknown"
			}
			return nil, domain.Validation("Item %s not found", name)
		}
		if item.Stock < it.Quantity {
			return nil, domain.Validation("Insufficient stock for %s. Available: %d, Requested: %d",
				item.Name, item.Stock, it.Quantity)
		}
	}

	// Fase 2: persistir la venta.
	items := make([]entity.SaleItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = entity.SaleItem{
			ID:       it.ID,
			Name:     it.Name,
			Category: it.Category,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	s := &entity.Sale{
		ID:           uuid.New().String(),
		CustomerName: customerName,
		Items:        items,
		Total:        in.Total,
		Date:         time.Now().Format("2006-01-02T15:04:05.999999"),
		StaffID:      staffID,
	}
	if err := uc.saleRepo.Set(ctx, s); err != nil {
		return nil, err
	}

	// Decremento de stock best effort: se relee cada artículo y se escribe el
	// valor absoluto. Sin transacción entre líneas.
	for _, it := range in.Items {
		item, err := uc.inventoryRepo.GetByID(ctx, it.ID)
		if err != nil || item == nil {
			log.Error().Err(err).Str("item_id", it.ID).Msg("error actualizando inventario tras la venta")
			continue
		}
		if err := uc.inventoryRepo.UpdateStock(ctx, it.ID, item.Stock-it.Quantity); err != nil {
			log.Error().Err(err).Str("item_id", it.ID).Msg("error actualizando inventario tras la venta")
		}
	}

	log.Info().Str("sale_id", s.ID).Str("staff_id", staffID).Msg("venta registrada")
	return &dto.CreateSaleResponse{Success: true, Message: "Sale completed successfully", SaleID: s.ID}, nil
}

// Get devuelve una venta por id. NotFound si no existe.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("Sale")
	}
	return s, nil
}

// Update aplica una actualización parcial sobre el documento de la venta.
func (uc *UseCase) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.Validation("No data provided")
	}
	return uc.saleRepo.Update(ctx, id, fields)
}

// Delete elimina la venta. Borrar un id inexistente no es error.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.saleRepo.Delete(ctx, id)
}
