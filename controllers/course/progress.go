package controllers

import (
	"coursecraft/database"
	"coursecraft/middleware"
	"coursecraft/models"
	"coursecraft/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// MarkLessonComplete records a video-end event. The write is an upsert keyed
// on (user_id, lesson_id), so repeated completion events leave a single row.
func MarkLessonComplete(c *fiber.Ctx) error {
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

	// Check if course exists and is published
	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if lesson belongs to the course
	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// A completion must come from a playable lesson
	var lessons []models.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc, id asc").Find(&lessons)

	var purchase models.Purchase
	purchased := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&purchase).Error == nil

	if !utils.IsLessonPlayable(lessons, lesson.ID, purchased) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Lesson is locked. Purchase the course to continue!", nil)
	}

	progress := models.Progress{
		UserID:    userID,
		LessonID:  lesson.ID,
		Completed: true,
	}

	// Idempotent upsert on (user_id, lesson_id)
	if err := database.Database.Db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":  true,
			"updated_at": time.Now(),
		}),
	}).Create(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed!", progress)
}

// GetCourseProgress returns the caller's completion rows and percentage for a
// course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []models.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&lessons)

	lessonIDs := make([]uint, len(lessons))
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
	}

	var completions []models.Progress
	if len(lessonIDs) > 0 {
		database.Database.Db.Where("user_id = ? AND lesson_id IN ? AND completed = ?", userID, lessonIDs, true).Find(&completions)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"completions":        completions,
		"completed_lessons":  len(completions),
		"total_lessons":      len(lessons),
		"completion_percent": utils.CompletionPercent(len(completions), len(lessons)),
	})
}
