package shopifyValidator

import (
	"coursecraft/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SyncCourse validates the sync body `{courseId}`
func SyncCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID int `json:"courseId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required", nil)
		}

		c.Locals("courseID", reqData.CourseID)
		return c.Next()
	}
}

// UnlinkCourse validates the `courseId` query parameter
func UnlinkCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := c.Query("courseId")
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId query parameter is required", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid courseId!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
