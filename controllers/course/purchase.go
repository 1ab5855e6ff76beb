package controllers

import (
	"coursecraft/database"
	"coursecraft/middleware"
	"coursecraft/models"
	"coursecraft/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// BuyCourse creates the purchase that unlocks all lessons of a course for the
// authenticated user. A repeated buy returns 409 and creates no second row.
func BuyCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if course exists and is published
	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if user already bought the course
	var existingPurchase models.Purchase
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existingPurchase).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already purchased!", nil)
	}

	purchase := models.Purchase{
		UserID:    userID,
		CourseID:  uint(courseID),
		PricePaid: course.Price,
	}

	// Save to database with transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase course!", nil)
	}
	tx.Commit()

	go func(email, name, title string, price int) {
		if err := utils.SendPurchaseReceipt(email, name, title, price); err != nil {
			log.Printf("Error sending purchase receipt to %s: %v", email, err)
		}
	}(user.Email, user.FullName, course.Title, course.Price)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course unlocked successfully!", purchase)
}

// GetPurchases lists the authenticated user's purchases
func GetPurchases(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated pagination request
	reqData, ok := c.Locals("validatedPurchaseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		// Fetch all purchases without pagination
		var purchases []models.Purchase
		if err := database.Database.Db.Where("user_id = ?", userID).Preload("Course").Order("created_at desc").Find(&purchases).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
		}
		response := map[string]interface{}{
			"purchases": purchases,
			"pagination": map[string]interface{}{
				"total": int64(len(purchases)),
				"page":  1,
				"limit": len(purchases),
			},
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", response)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var purchases []models.Purchase
	db := database.Database.Db.Model(&models.Purchase{}).Where("user_id = ?", userID).Preload("Course")

	var total int64
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	response := map[string]interface{}{
		"purchases": purchases,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", response)
}
