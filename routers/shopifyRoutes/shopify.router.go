package shopifyRoutes

import (
	shopifyControllers "coursecraft/controllers/shopify"
	"coursecraft/middleware"
	shopifyValidators "coursecraft/validators/shopify"

	"github.com/gofiber/fiber/v2"
)

// SetupShopifyRoutes sets up the commerce bridge endpoints. Sync is an admin
// action; webhooks are called by the platform and authenticate via HMAC, not
// JWT.
func SetupShopifyRoutes(app *fiber.App) {
	syncGroup := app.Group("/api/shopify/sync", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	syncGroup.Post("/", shopifyValidators.SyncCourse(), shopifyControllers.SyncCourse)
	syncGroup.Delete("/", shopifyValidators.UnlinkCourse(), shopifyControllers.UnlinkCourse)

	app.Post("/api/shopify/webhooks", shopifyControllers.HandleWebhook)
	app.Get("/api/shopify/webhooks", shopifyControllers.WebhookHealth)
}
