package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
)

// AccountHandler maneja la administración de usuarios y cuentas (solo
// admin). Las rutas de cuentas y las de usuarios son vistas distintas sobre
// la misma colección; conservan sus formas de respuesta propias, sin el
// envoltorio success.
type AccountHandler struct {
	uc *usecase.UserUseCase
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(uc *usecase.UserUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Users devuelve los usuarios, con filtro opcional por rol exacto.
func (h *AccountHandler) Users(c *fiber.Ctx) error {
	users, err := h.uc.List(c.Context(), c.Query("role"))
	if err != nil {
		return respondError(c, err, "fetching users")
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUser devuelve un usuario por id.
func (h *AccountHandler) GetUser(c *fiber.Ctx) error {
	u, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "managing user")
	}
	return c.JSON(fiber.Map{"user": u})
}

// UpdateUser aplica una edición parcial sobre un usuario.
func (h *AccountHandler) UpdateUser(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), fields); err != nil {
		return respondError(c, err, "managing user")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "User updated successfully"})
}

// DeleteUser elimina un usuario.
func (h *AccountHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "managing user")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "User deleted successfully"})
}

// Accounts devuelve el listado de cuentas con su estado.
func (h *AccountHandler) Accounts(c *fiber.Ctx) error {
	accounts, err := h.uc.Accounts(c.Context())
	if err != nil {
		return respondError(c, err, "managing accounts")
	}
	return c.JSON(fiber.Map{"accounts": accounts})
}

// CreateAccount da de alta una cuenta de staff.
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	account, err := h.uc.CreateAccount(c.Context(), in)
	if err != nil {
		return respondError(c, err, "managing accounts")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Account created.", "account": account})
}

// GetAccount devuelve una cuenta por id.
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	u, err := h.uc.GetAccount(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "managing account")
	}
	return c.JSON(fiber.Map{"account": u})
}

// UpdateAccount aplica una edición parcial sobre una cuenta; un campo
// password se rehashea.
func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil || len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), fields); err != nil {
		return respondError(c, err, "managing account")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Account updated successfully"})
}

// DeleteAccount elimina una cuenta.
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "managing account")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Account deleted successfully"})
}
