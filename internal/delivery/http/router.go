package http

import (
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler, static fs.FS) {
	assets := nethttp.FS(static)

	// Health check
	app.Get("/health", handler.HealthCheck)

	api := app.Group("/api")
	{
		api.Get("/status", handler.GetStatus)
		api.Get("/areas", handler.GetAreas)
	}

	// Dashboard
	app.Get("/", func(c *fiber.Ctx) error {
		return filesystem.SendFile(c, assets, "index.html")
	})
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   assets,
		Browse: false,
	}))
}
