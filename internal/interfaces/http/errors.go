// Package http expone la API sobre Fiber: handlers, middleware de sesión y
// el router.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
)

// respondError traduce un error de dominio a la respuesta HTTP. op nombra la
// operación en curso para los errores de almacén, que se registran con
// detalle y se genericizan hacia el cliente.
func respondError(c *fiber.Ctx, err error, op string) error {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: notFoundErr.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Access denied"})
	default:
		log.Error().Err(err).Str("operation", op).Msg("database error")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Database error during " + op})
	}
}
