package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit caps requests per client IP within the window. Counters live in
// store, which the caller owns.
func RateLimit(store fiber.Storage, limit int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		Storage:    store,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "ratelimit:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(errorBody("Too many requests, try again later"))
		},
	})
}
