package http

import (
	"encoding/base64"
	"io"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/analytics"
	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
)

// Extensiones de imagen aceptadas para la foto de perfil.
var allowedImageExts = map[string]bool{"png": true, "jpg": true, "jpeg": true, "gif": true}

// CustomerHandler maneja la analítica de clientes y la edición de perfiles.
type CustomerHandler struct {
	analyticsUC *analytics.UseCase
	customerUC  *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(analyticsUC *analytics.UseCase, customerUC *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{analyticsUC: analyticsUC, customerUC: customerUC}
}

// customerName decodifica el parámetro de ruta :name (los nombres llevan
// espacios y caracteres escapados).
func customerName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// List devuelve el roster de clientes con estadísticas.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.analyticsUC.Roster(c.Context())
	if err != nil {
		return respondError(c, err, "fetching customers")
	}
	return c.JSON(out)
}

// Profile devuelve el perfil detallado de un cliente.
func (h *CustomerHandler) Profile(c *fiber.Ctx) error {
	out, err := h.analyticsUC.Profile(c.Context(), customerName(c))
	if err != nil {
		return respondError(c, err, "fetching customer profile")
	}
	return c.JSON(out)
}

// Purchases devuelve el historial de compras de un cliente.
func (h *CustomerHandler) Purchases(c *fiber.Ctx) error {
	out, err := h.analyticsUC.Purchases(c.Context(), customerName(c))
	if err != nil {
		return respondError(c, err, "fetching customer purchase history")
	}
	return c.JSON(out)
}

// Summary devuelve el resumen de compras de un cliente.
func (h *CustomerHandler) Summary(c *fiber.Ctx) error {
	out, err := h.analyticsUC.Summary(c.Context(), customerName(c))
	if err != nil {
		return respondError(c, err, "fetching customer summary")
	}
	return c.JSON(out)
}

// Spending devuelve el gasto por par (artículo, categoría).
func (h *CustomerHandler) Spending(c *fiber.Ctx) error {
	out, err := h.analyticsUC.SpendingByItemCategory(c.Context(), customerName(c))
	if err != nil {
		return respondError(c, err, "fetching spending by item and category")
	}
	return c.JSON(out)
}

// SpendingTable devuelve la tabla de gasto con cantidades.
func (h *CustomerHandler) SpendingTable(c *fiber.Ctx) error {
	out, err := h.analyticsUC.SpendingTable(c.Context(), customerName(c))
	if err != nil {
		return respondError(c, err, "fetching spending table")
	}
	return c.JSON(out)
}

// TopItemsMonthly devuelve los tres artículos de mayor gasto con su serie
// mensual.
func (h *CustomerHandler) TopItemsMonthly(c *fiber.Ctx) error {
	out, err := h.analyticsUC.TopItemsMonthly(c.Context(), customerName(c))
	if err != nil {
		return respondError(c, err, "fetching top items monthly spending")
	}
	return c.JSON(out)
}

// profilePictureDataURL lee la imagen del formulario multipart y la codifica
// como data URL base64. Una imagen ausente o con extensión no permitida se
// ignora en silencio (el resto del formulario se procesa igual).
func profilePictureDataURL(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("profile_picture")
	if err != nil || fh == nil || fh.Filename == "" {
		return "", nil
	}
	idx := strings.LastIndex(fh.Filename, ".")
	if idx < 0 {
		return "", nil
	}
	ext := strings.ToLower(fh.Filename[idx+1:])
	if !allowedImageExts[ext] {
		return "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return "data:image/" + ext + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}

// Update crea o actualiza el perfil de un cliente a partir del formulario
// multipart, foto de perfil incluida.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	in := dto.UpdateCustomerRequest{
		Name:         c.FormValue("name"),
		OriginalName: c.FormValue("original_name"),
		Age:          c.FormValue("age"),
		Sex:          c.FormValue("sex"),
		Address:      c.FormValue("address"),
		Occupation:   c.FormValue("occupation"),
		Business:     c.FormValue("business"),
		Phone:        c.FormValue("phone"),
		Email:        c.FormValue("email"),
		Notes:        c.FormValue("notes"),
	}
	picture, err := profilePictureDataURL(c)
	if err != nil {
		return respondError(c, err, "updating customer profile")
	}
	if err := h.customerUC.UpdateProfile(c.Context(), GetUserID(c), in, picture); err != nil {
		return respondError(c, err, "updating customer profile")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Customer profile updated successfully"})
}
