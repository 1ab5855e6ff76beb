package main

import (
	"coursecraft/config"
	"coursecraft/database"
	authRoutes "coursecraft/routers/authRoutes"
	courseRoutes "coursecraft/routers/courseRoutes"
	mediaRoutes "coursecraft/routers/mediaRoutes"
	shopifyRoutes "coursecraft/routers/shopifyRoutes"
	"coursecraft/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.ConnectMediaStorage()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-Shopify-Hmac-Sha256,X-Shopify-Topic",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files (PWA manifest, service worker) from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	mediaRoutes.SetupMediaRoutes(app)
	shopifyRoutes.SetupShopifyRoutes(app)

	utils.InitializeShopifySyncScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
