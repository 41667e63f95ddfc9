package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// BaseRoutes: liveness and root info.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "SPIS backend",
			"status":  "running",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
		})
	})
}
