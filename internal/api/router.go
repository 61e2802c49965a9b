package api

import (
	"arbotique/docs"
	"arbotique/internal/api/handlers"
	"arbotique/internal/wizard"
	"arbotique/pkg/config"
	"arbotique/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Health         *handlers.HealthHandler
	Recommendation *handlers.RecommendationHandler
	Session        *handlers.SessionHandler
}

// SetupRouter builds the stylist API.
func SetupRouter(h Handlers, store *wizard.Store, serverCfg config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := newApp(serverCfg, appLogger)

	// Swagger docs are registered by the docs package init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", h.Health.Health)

	v1 := app.Group("/api/v1")
	v1.Post("/recommendations", h.Recommendation.Recommend)
	v1.Get("/placeholders/:type", h.Recommendation.Placeholder)
	v1.Post("/sessions", h.Session.CreateSession)

	session := v1.Group("/session", middleware.SessionMiddleware(store, appLogger))
	session.Get("/", h.Session.GetSession)
	session.Delete("/", h.Session.DeleteSession)
	session.Post("/start", h.Session.Start)
	session.Post("/intro/dismiss", h.Session.DismissIntro)
	session.Put("/profile", h.Session.SubmitProfile)
	session.Post("/quiz/toggle", h.Session.ToggleQuiz)
	session.Put("/quiz", h.Session.UpdateQuiz)
	session.Post("/recommendations", h.Session.Recommend)
	session.Post("/back", h.Session.Back)
	session.Post("/restart", h.Session.Restart)
	session.Post("/home", h.Session.Home)

	return app
}

// SetupCatalogRouter builds the standalone catalog recommender.
func SetupCatalogRouter(h *handlers.CatalogHandler, serverCfg config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := newApp(serverCfg, appLogger)

	app.Get("/health", h.Health)
	app.Post("/api/recommendations", h.Recommend)

	return app
}

func newApp(serverCfg config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
		ReadTimeout:           serverCfg.ReadTimeout,
		WriteTimeout:          serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Request failed", zap.String("path", utils.CopyString(c.Path())), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.SessionHeader,
	}))
	app.Use(middleware.RequestLogger(appLogger))

	return app
}
