package courseRoutes

import (
	controllers "coursecraft/controllers/course"
	"coursecraft/middleware"
	validators "coursecraft/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Purchase
	courseGroup.Post("/:id/buy", middleware.JWTMiddleware, validators.CourseID(), controllers.BuyCourse)

	// Playback (authorization boundary for lesson media)
	courseGroup.Get("/:id/lesson/:lesson_id/play", middleware.JWTMiddleware, validators.LessonParams(), controllers.GetLessonPlayback)

	// Progress tracking
	courseGroup.Post("/:id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.LessonParams(), controllers.MarkLessonComplete)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	// User purchases
	userGroup := app.Group("/user")
	userGroup.Get("/purchases", middleware.JWTMiddleware, validators.PurchaseList(), controllers.GetPurchases)
}
