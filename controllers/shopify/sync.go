package shopifyController

import (
	"coursecraft/config"
	"coursecraft/database"
	"coursecraft/middleware"
	"coursecraft/models"
	"coursecraft/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// newShopifyClient is swapped for a stub-server client in tests
var newShopifyClient = utils.NewShopifyClient

// SyncCourse pushes a course to the commerce platform, creating or updating
// the remote product and persisting the returned ids on the course row.
func SyncCourse(c *fiber.Ctx) error {
	if !config.ShopifyEnabled() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Shopify integration is not configured", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId is required", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	productID, variantID, err := newShopifyClient().SyncCourse(database.Database.Db, &course)
	if err != nil {
		log.Printf("Shopify sync failed for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course synced successfully!", fiber.Map{
		"ok":        true,
		"productId": productID,
		"variantId": variantID,
	})
}

// UnlinkCourse removes the remote product and clears the stored ids
func UnlinkCourse(c *fiber.Ctx) error {
	if !config.ShopifyEnabled() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Shopify integration is not configured", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "courseId query parameter is required", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := newShopifyClient().UnlinkCourse(database.Database.Db, &course); err != nil {
		log.Printf("Shopify unlink failed for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course unlinked successfully!", fiber.Map{
		"ok": true,
	})
}
