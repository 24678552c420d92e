package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
)

// InventoryHandler maneja el CRUD del inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List devuelve el inventario ordenado por nombre, con paginación opcional
// (limit=0 devuelve todo).
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err, "fetching inventory")
	}
	return c.JSON(out)
}

// Create da de alta un artículo. Solo staff.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	if !isStaff(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Access denied"})
	}
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "creating inventory item")
	}
	return c.JSON(out)
}

// Get devuelve un artículo por id.
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "managing inventory item")
	}
	return c.JSON(out)
}

// Update reemplaza los campos editables de un artículo.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.InventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), in); err != nil {
		return respondError(c, err, "managing inventory item")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Item updated successfully"})
}

// Delete elimina un artículo.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "managing inventory item")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Item deleted successfully"})
}
