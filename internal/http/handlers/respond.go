package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mercadito/internal/domain"
	applog "mercadito/internal/log"
)

// respondError is the single error-translation point for every operation.
// Validation problems map to 400, missing rows to 404, anything else is a
// storage failure: logged with detail, surfaced as a generic 500.
func respondError(c *fiber.Ctx, action string, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	default:
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
