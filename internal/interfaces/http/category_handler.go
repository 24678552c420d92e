package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
)

// CategoryHandler maneja el CRUD de categorías (solo admin).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List devuelve todas las categorías con su item_count.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "managing categories")
	}
	return c.JSON(fiber.Map{"success": true, "categories": categories})
}

// Create da de alta una categoría de atributos libres.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	id, err := h.uc.Create(c.Context(), fields)
	if err != nil {
		return respondError(c, err, "managing categories")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Category created successfully", "category_id": id})
}

// Get devuelve una categoría por id con su item_count.
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	category, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "managing category")
	}
	return c.JSON(fiber.Map{"success": true, "category": category})
}

// Update aplica una edición parcial sobre una categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), fields); err != nil {
		return respondError(c, err, "managing category")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Category updated successfully"})
}

// Delete elimina una categoría.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "managing category")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Category deleted successfully"})
}
