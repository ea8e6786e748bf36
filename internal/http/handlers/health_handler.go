package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
)

// Pinger reports storage connectivity. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	DB Pinger
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.DB.PingContext(c.Context()); err != nil {
		applog.Error(c, "health.db", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "degraded",
			"database": "down",
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "database": "up"})
}
