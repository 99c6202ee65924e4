package middleware

import (
	"fmt"
	"strings"

	"github.com/PavaniTiago/survey-builder-api/internal/config"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func SetupMiddlewares(app *fiber.App, cfg config.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			logger.WithFields(logger.Fields{
				"method":     c.Method(),
				"path":       c.Path(),
				"request_id": RequestID(c),
			}).Errorf("panic: %v", e)
		},
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Use(RequestLogger())

	// CORS configuration
	origins := cfg.CORSOrigins
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		// fiber refuses credentials together with a wildcard origin
		AllowCredentials: !strings.Contains(origins, "*"),
		MaxAge:           300, // 5 minutes
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(etag.New())
}

// RequestID returns the id assigned by the requestid middleware.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public    fiber.Router
	Protected fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/api")

	// Grupo protegido: both groups share the /api prefix, so the gate is
	// prepended to each route instead of being mounted with Use.
	protected := gatedRouter{Router: app.Group("/api"), gate: authMiddleware}

	return RouteGroups{
		Public:    public,
		Protected: protected,
	}
}

// gatedRouter runs gate before the handlers of every route it registers.
// Middleware mounted through Use, Mount or Static is gated for its whole
// prefix, public routes under that prefix included.
type gatedRouter struct {
	fiber.Router
	gate fiber.Handler
}

func (r gatedRouter) chain(handlers []fiber.Handler) []fiber.Handler {
	return append([]fiber.Handler{r.gate}, handlers...)
}

func (r gatedRouter) Use(args ...interface{}) fiber.Router {
	gated := make([]interface{}, 0, len(args)+1)
	inserted := false
	for _, arg := range args {
		switch h := arg.(type) {
		case fiber.Handler:
			if !inserted {
				gated = append(gated, r.gate)
				inserted = true
			}
			gated = append(gated, h)
		default:
			gated = append(gated, arg)
		}
	}
	if !inserted {
		gated = append(gated, r.gate)
	}
	r.Router.Use(gated...)
	return r
}

func (r gatedRouter) Add(method, path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Add(method, path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) All(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.All(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Get(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Get(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Head(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Head(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Post(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Post(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Put(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Put(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Delete(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Delete(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Connect(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Connect(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Options(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Options(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Trace(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Trace(path, r.chain(handlers)...)
	return r
}

func (r gatedRouter) Patch(path string, handlers ...fiber.Handler) fiber.Router {
	r.Router.Patch(path, r.chain(handlers)...)
	return r
}

// Group returns a gated sub-router; its own handlers run after the gate.
func (r gatedRouter) Group(prefix string, handlers ...fiber.Handler) fiber.Router {
	group := gatedRouter{Router: r.Router.Group(prefix), gate: r.gate}
	if len(handlers) > 0 {
		args := make([]interface{}, len(handlers))
		for i, h := range handlers {
			args[i] = h
		}
		group.Use(args...)
	}
	return group
}

func (r gatedRouter) Route(prefix string, fn func(router fiber.Router), name ...string) fiber.Router {
	group := r.Group(prefix)
	if len(name) > 0 {
		group = group.Name(name[0])
	}
	fn(group)
	return group
}

func (r gatedRouter) Name(name string) fiber.Router {
	return gatedRouter{Router: r.Router.Name(name), gate: r.gate}
}

func (r gatedRouter) Mount(prefix string, app *fiber.App) fiber.Router {
	r.Router.Use(prefix, r.gate)
	r.Router.Mount(prefix, app)
	return r
}

func (r gatedRouter) Static(prefix, root string, config ...fiber.Static) fiber.Router {
	r.Router.Use(prefix, r.gate)
	r.Router.Static(prefix, root, config...)
	return r
}

// ErrorHandler renders errors that escape handlers, such as unknown routes
// or oversized bodies, in the API's error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		logger.WithError(err).WithFields(logger.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"request_id": RequestID(c),
		}).Error("unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}

func errorBody(format string, args ...any) fiber.Map {
	return fiber.Map{"message": fmt.Sprintf(format, args...)}
}
