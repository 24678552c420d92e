package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/analytics"
	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/sale"
)

// SaleHandler maneja el procesamiento de ventas y sus listados.
type SaleHandler struct {
	saleUC      *sale.UseCase
	analyticsUC *analytics.UseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(saleUC *sale.UseCase, analyticsUC *analytics.UseCase) *SaleHandler {
	return &SaleHandler{saleUC: saleUC, analyticsUC: analyticsUC}
}

// List devuelve el historial completo, más reciente primero.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.analyticsUC.List(c.Context())
	if err != nil {
		return respondError(c, err, "managing sales")
	}
	return c.JSON(out)
}

// Create procesa una venta nueva a nombre del staff autenticado.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	out, err := h.saleUC.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err, "creating sale")
	}
	return c.JSON(out)
}

// Filtered devuelve una página de ventas filtradas con su resumen.
func (h *SaleHandler) Filtered(c *fiber.Ctx) error {
	f := dto.SalesFilter{
		DateFilter:     c.Query("dateFilter", "all"),
		CustomerFilter: c.Query("customerFilter"),
		AmountFilter:   c.Query("amountFilter"),
		StartDate:      c.Query("startDate"),
		EndDate:        c.Query("endDate"),
		Page:           c.QueryInt("page", 1),
	}
	out, err := h.analyticsUC.Filtered(c.Context(), f)
	if err != nil {
		return respondError(c, err, "fetching filtered sales")
	}
	return c.JSON(out)
}

// Recent devuelve las cinco ventas más recientes.
func (h *SaleHandler) Recent(c *fiber.Ctx) error {
	out, err := h.analyticsUC.Recent(c.Context())
	if err != nil {
		return respondError(c, err, "loading recent sales")
	}
	return c.JSON(out)
}

// Get devuelve una venta por id, tal como está almacenada.
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	s, err := h.saleUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "managing sale")
	}
	return c.JSON(fiber.Map{"success": true, "sale": s})
}

// Update aplica una edición parcial sobre una venta.
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	if err := h.saleUC.Update(c.Context(), c.Params("id"), fields); err != nil {
		return respondError(c, err, "managing sale")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Sale updated successfully"})
}

// Delete elimina una venta.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.saleUC.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "managing sale")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Sale deleted successfully"})
}
