package routes

import (
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/config"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login and register attempts allowed per client IP and window.
const (
	authRateLimit  = 20
	authRateWindow = time.Minute
)

// NewApp builds the fiber application with middlewares and routes.
func NewApp(db *gorm.DB, cfg config.Config) *fiber.App {
	// Configure Fiber
	app := fiber.New(fiber.Config{
		AppName:      "survey-builder-api",
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	middleware.SetupMiddlewares(app, cfg)
	SetupRoutes(app, db, cfg)

	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	tokens := security.NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL)

	// Use Cases
	useCases := usecases.NewUseCases(db, tokens)

	// Handlers
	h := handlers.NewHandlers(useCases, db)

	// Health check
	app.Get("/health", h.Health.Check)

	// Routes
	groups := middleware.SetupRouteGroups(app, middleware.RequireAuth(useCases.Auth))

	// Auth routes
	// Counters live for the lifetime of the app
	authLimiter := middleware.RateLimit(cache.New(authRateWindow), authRateLimit, authRateWindow)
	groups.Public.Post("/register", authLimiter, h.Auth.Register)
	groups.Public.Post("/login", authLimiter, h.Auth.Login)
	groups.Protected.Get("/me", h.Auth.Me)

	// Users routes
	groups.Protected.Get("/users", h.Users.GetUsers)
	groups.Protected.Get("/users/:id", h.Users.GetUser)
	groups.Protected.Put("/users/:id", h.Users.UpdateUser)
	groups.Protected.Delete("/users/:id", h.Users.DeleteUser)

	RegisterSurveyRoutes(groups, h)
}
