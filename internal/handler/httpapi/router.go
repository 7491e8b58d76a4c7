package httpapi

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog"
)

// Handlers holds the handler instances wired by the router.
type Handlers struct {
	Channel *ChannelHandler
	Status  *StatusHandler
	Health  *HealthHandler
}

// Setup installs the middleware stack and all routes on the Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string, log zerolog.Logger) {
	app.Use(recoverer.New())
	app.Use(NewRequestLogger(log))
	app.Use(MetricsMiddleware())
	app.Use(NewCORS(corsOrigins))

	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello World"})
	})

	api.Get("/youtube/channel-videos", h.Channel.GetChannelVideos)

	api.Post("/status", h.Status.Create)
	api.Get("/status", h.Status.List)
}
