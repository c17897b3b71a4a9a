package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

// BaseRoutes: info dasar + file statis hasil upload branding.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Simitra API",
			"data": fiber.Map{
				"uptime": time.Since(startedAt).Round(time.Second).String(),
			},
		})
	})

	app.Static("/uploads", "./uploads")
}
