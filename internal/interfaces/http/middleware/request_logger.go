package middleware

import (
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// slowRequestThreshold marks requests logged at warn level.
const slowRequestThreshold = 500 * time.Millisecond

// RequestLogger é um middleware que registra método, rota, status e duração
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Registrar o tempo de início
		start := time.Now()

		// Processar a requisição; errors go through the app ErrorHandler first
		// so the logged status is the one the client receives
		err := c.Next()
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		duration := time.Since(start)
		status := c.Response().StatusCode()

		level := logrus.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			level = logrus.ErrorLevel
		case duration > slowRequestThreshold:
			level = logrus.WarnLevel
		}

		logger.WithFields(logger.Fields{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"request_id":  RequestID(c),
			"ip":          c.IP(),
		}).Log(level, "request")

		return nil
	}
}
