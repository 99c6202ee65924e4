package handlers

import (
	"errors"
	"strconv"

	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// parseID lê um parâmetro de rota numérico positivo
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": message})
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, usecases.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(kind, usecases.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(kind, usecases.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(kind, usecases.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(kind, usecases.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps usecase errors to status codes. Anything else is logged
// and hidden behind a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var ucErr *usecases.Error
	if errors.As(err, &ucErr) {
		return c.Status(statusFor(ucErr.Kind)).JSON(fiber.Map{"message": ucErr.Message})
	}

	logger.WithError(err).WithFields(logger.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"request_id": middleware.RequestID(c),
	}).Error("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}
