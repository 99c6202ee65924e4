package middleware

import (
	"errors"
	"strings"

	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "current_user"

// RequireAuth validates the bearer token and stores the user in the locals.
func RequireAuth(auth *usecases.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(errorBody("Token is missing"))
		}

		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			var ucErr *usecases.Error
			if errors.As(err, &ucErr) {
				return c.Status(fiber.StatusUnauthorized).JSON(errorBody(ucErr.Message))
			}
			logger.WithError(err).WithField("request_id", RequestID(c)).Error("failed to authenticate request")
			return c.Status(fiber.StatusInternalServerError).JSON(errorBody("internal server error"))
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *entities.User {
	user, _ := c.Locals(userLocalsKey).(*entities.User)
	return user
}

// bearerToken extracts the token from "Bearer <token>". Any other scheme
// yields "", which the gate reports as a missing token.
func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
