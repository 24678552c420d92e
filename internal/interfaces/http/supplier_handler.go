package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
)

// SupplierHandler maneja el CRUD de proveedores (staff).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler de proveedores.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List devuelve todos los proveedores.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "managing suppliers")
	}
	return c.JSON(fiber.Map{"success": true, "suppliers": suppliers})
}

// Create da de alta un proveedor de atributos libres.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	id, err := h.uc.Create(c.Context(), fields)
	if err != nil {
		return respondError(c, err, "managing suppliers")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Supplier created successfully", "supplier_id": id})
}

// Get devuelve un proveedor por id (sin la clave id, como está almacenado).
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	supplier, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "managing supplier")
	}
	return c.JSON(fiber.Map{"success": true, "supplier": supplier})
}

// Update aplica una edición parcial sobre un proveedor.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), fields); err != nil {
		return respondError(c, err, "managing supplier")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Supplier updated successfully"})
}

// Delete elimina un proveedor.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "managing supplier")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Supplier deleted successfully"})
}
