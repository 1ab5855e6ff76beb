package controllers

import (
	"coursecraft/database"
	"coursecraft/middleware"
	"coursecraft/models"
	"coursecraft/utils"

	"github.com/gofiber/fiber/v2"
)

// LessonView is a lesson annotated with the caller's access and progress
type LessonView struct {
	models.Lesson
	Playable    bool `json:"playable"`
	IsCompleted bool `json:"is_completed"`
}

// GetAllCourses lists published courses for the catalog
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Get optional filters from query params
	category := c.Query("category")
	search := c.Query("search")

	// Retrieve validated pagination request
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)

	if category != "" {
		db = db.Where("category = ?", category)
	}
	if search != "" {
		db = db.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseWithLabel struct {
		models.Course
		RatingLabel string `json:"rating_label"`
		PriceLabel  string `json:"price_label"`
	}

	result := make([]CourseWithLabel, len(courses))
	for i, course := range courses {
		course.ApplyDefaults()
		result[i] = CourseWithLabel{
			Course:      course,
			RatingLabel: utils.RatingLabel(course.Rating),
			PriceLabel:  utils.FormatCurrency(float64(course.Price)),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails gets a published course with its lessons, the caller's
// purchase state and completion percentage
func GetCourseDetails(c *fiber.Ctx) error {
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
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	course.ApplyDefaults()

	// Get lessons in course order
	var lessons []models.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc, id asc").Find(&lessons)

	// Check if user has purchased the course
	var purchase models.Purchase
	purchased := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&purchase).Error == nil

	permitted := utils.PermittedLessonIDs(lessons, purchased)

	// Completed lesson ids for this user
	lessonIDs := make([]uint, len(lessons))
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
	}
	var completedRows []models.Progress
	if len(lessonIDs) > 0 {
		database.Database.Db.Where("user_id = ? AND lesson_id IN ? AND completed = ?", userID, lessonIDs, true).Find(&completedRows)
	}
	completed := make(map[uint]bool, len(completedRows))
	for _, row := range completedRows {
		completed[row.LessonID] = true
	}

	result := make([]LessonView, len(lessons))
	for i, lesson := range lessons {
		result[i] = LessonView{
			Lesson:      lesson,
			Playable:    permitted[lesson.ID],
			IsCompleted: completed[lesson.ID],
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":             course,
		"lessons":            result,
		"purchased":          purchased,
		"completion_percent": utils.CompletionPercent(len(completedRows), len(lessons)),
	})
}
