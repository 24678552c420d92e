package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/auth"
	"github.com/jhoicas/retail-pos-api/internal/application/dto"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc         *auth.UseCase
	expMinutes int
}

// NewAuthHandler construye el handler de auth. expMinutes fija la vida de la
// cookie de sesión, alineada con la expiración del token.
func NewAuthHandler(uc *auth.UseCase, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, expMinutes: expMinutes}
}

// Login autentica username+rol+password y devuelve el token. Además deja el
// token en la cookie de sesión para los clientes de navegador.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No data provided"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err, "login")
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Expires:  time.Now().Add(time.Duration(h.expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout invalida la cookie de sesión. El token en sí no se revoca: expira
// por tiempo.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}
