package courseRoutes

import (
	controllers "coursecraft/controllers/course"
	"coursecraft/middleware"
	validators "coursecraft/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin authoring routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.AdminList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:id", validators.CourseID(), validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/:id/publish", validators.PublishCourse(), controllers.AdminPublishCourse)

	// Lesson Management
	adminGroup.Post("/:id/lesson", validators.CourseID(), validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Get("/:id/lessons", validators.CourseID(), controllers.AdminListLessons)
	adminGroup.Put("/:id/lesson/:lesson_id", validators.LessonParams(), validators.UpdateLesson(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/:id/lesson/:lesson_id", validators.LessonParams(), controllers.AdminDeleteLesson)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	dashGroup.Get("/stats", controllers.AdminDashboardStats)
}
