package handlers

import (
	"context"
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Check reports liveness and how long a database round trip took.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := h.ping(ctx)
	latency := time.Since(start)

	if err != nil {
		logger.WithError(err).Warn("health check: database unreachable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unhealthy",
			"database": "unreachable",
		})
	}

	return c.JSON(fiber.Map{
		"status":      "healthy",
		"database":    "ok",
		"db_latency":  latency.String(),
		"server_time": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
