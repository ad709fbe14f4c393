// file: internals/middlewares/setup_middlewares.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"artsfest_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan aman:
// recovery paling luar, lalu CORS, logging, dan rate limit global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
