package mediaRoutes

import (
	mediaControllers "coursecraft/controllers/media"
	"coursecraft/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupMediaRoutes sets up admin media upload routes
func SetupMediaRoutes(app *fiber.App) {
	mediaGroup := app.Group("/admin/media", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	mediaGroup.Post("/upload", mediaControllers.UploadMedia)
}
