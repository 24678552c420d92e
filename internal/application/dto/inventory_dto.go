package dto

import "github.com/jhoicas/retail-pos-api/internal/domain/entity"

// InventoryItemRequest alta o edición de un artículo. Stock y Price son
// punteros para distinguir "ausente" de cero en ediciones parciales.
type InventoryItemRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Stock    *int     `json:"stock"`
	Price    *float64 `json:"price"`
	Supplier string   `json:"supplier"`
}

// InventoryListResponse página de inventario ordenada por nombre.
type InventoryListResponse struct {
	Success   bool                   `json:"success"`
	Inventory []entity.InventoryItem `json:"inventory"`
	Total     int                    `json:"total"`
}

// InventoryItemResponse respuesta de lectura individual.
type InventoryItemResponse struct {
	Success bool                  `json:"success"`
	Item    *entity.InventoryItem `json:"item"`
}

// CreateItemResponse respuesta de alta de artículo.
type CreateItemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ItemID  string `json:"item_id"`
}
