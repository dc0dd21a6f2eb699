// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

// BaseRoutes registers the unauthenticated service endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
