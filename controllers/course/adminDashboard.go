package controllers

import (
	"coursecraft/database"
	"coursecraft/middleware"
	"coursecraft/models"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats returns the counts shown on the admin control center
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses int64
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var publishedCourses int64
	db.Model(&models.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)

	var totalLessons int64
	db.Model(&models.Lesson{}).Where("is_deleted = ?", false).Count(&totalLessons)

	var totalStudents int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "STUDENT", false).Count(&totalStudents)

	var totalPurchases int64
	db.Model(&models.Purchase{}).Count(&totalPurchases)

	var revenue int64
	db.Model(&models.Purchase{}).Select("COALESCE(SUM(price_paid), 0)").Scan(&revenue)

	var linkedCourses int64
	db.Model(&models.Course{}).Where("shopify_product_id <> '' AND is_deleted = ?", false).Count(&linkedCourses)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_courses":     totalCourses,
		"published_courses": publishedCourses,
		"total_lessons":     totalLessons,
		"total_students":    totalStudents,
		"total_purchases":   totalPurchases,
		"revenue":           revenue,
		"shopify_linked":    linkedCourses,
	})
}
