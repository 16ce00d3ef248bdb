package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/trip-board/internal/persistence"
)

// HealthHandler responds to the liveness probe.
type HealthHandler struct {
	postgres *persistence.Postgres
	logger   *zap.Logger
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(postgres *persistence.Postgres, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{postgres: postgres, logger: logger}
}

// Check handles GET /health. It reports the database clock so the probe
// exercises a real round trip, not just the process.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	dbTime, err := h.postgres.Now(ctx)
	if err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error"})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"db_time": dbTime,
	})
}
