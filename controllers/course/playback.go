package controllers

import (
	"coursecraft/database"
	"coursecraft/middleware"
	"coursecraft/models"
	"coursecraft/utils"

	"github.com/gofiber/fiber/v2"
)

// GetLessonPlayback is the authorization boundary for lesson media. The
// access policy is enforced here, server-side, before any media URL leaves
// the API: the first lesson in course order is free, everything else needs a
// purchase. Uploaded media is returned as a short-lived presigned URL.
func GetLessonPlayback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var lessons []models.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc, id asc").Find(&lessons)

	var purchase models.Purchase
	purchased := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&purchase).Error == nil

	if !utils.IsLessonPlayable(lessons, lesson.ID, purchased) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Lesson is locked. Purchase the course to continue!", nil)
	}

	videoURL := lesson.VideoURL
	if lesson.ObjectKey != "" {
		presigned, err := utils.Media.PresignedURL(c.Context(), lesson.ObjectKey)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve lesson media!", nil)
		}
		videoURL = presigned
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson playback resolved!", fiber.Map{
		"lesson_id": lesson.ID,
		"title":     lesson.Title,
		"video_url": videoURL,
	})
}
