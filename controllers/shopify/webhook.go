package shopifyController

import (
	"coursecraft/config"
	"coursecraft/database"
	"coursecraft/models"
	"coursecraft/utils"
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProductWebhookPayload is the product shape Shopify posts on
// products/create, products/update and products/delete topics.
type ProductWebhookPayload struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	BodyHTML    string  `json:"body_html"`
	ProductType string  `json:"product_type"`
	Image       *struct {
		Src string `json:"src"`
	} `json:"image"`
	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
	Variants []struct {
		ID    int64  `json:"id"`
		Price string `json:"price"`
	} `json:"variants"`
}

// HandleWebhook consumes product webhooks from the commerce platform. The
// signature is verified over the raw body before anything touches the
// database; a bad or missing signature mutates nothing.
func HandleWebhook(c *fiber.Ctx) error {
	if !config.ShopifyEnabled() {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
	}

	rawBody := c.Body()
	hmacHeader := c.Get("X-Shopify-Hmac-Sha256")
	topic := c.Get("X-Shopify-Topic")

	if !utils.VerifyShopifyWebhook(rawBody, hmacHeader, config.AppConfig.ShopifyWebhookSecret) {
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid HMAC")
	}

	var payload ProductWebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid payload")
	}

	switch topic {
	case "products/create", "products/update":
		if err := upsertCourseFromProduct(payload); err != nil {
			log.Printf("Webhook upsert failed for product %d: %v", payload.ID, err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
	case "products/delete":
		productID := strconv.FormatInt(payload.ID, 10)
		// Unlink only; the local course row survives a remote delete
		if err := database.Database.Db.Model(&models.Course{}).
			Where("shopify_product_id = ?", productID).
			Updates(map[string]interface{}{
				"shopify_product_id": "",
				"shopify_variant_id": "",
			}).Error; err != nil {
			log.Printf("Webhook unlink failed for product %d: %v", payload.ID, err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

// upsertCourseFromProduct maps a remote product onto a local course row keyed
// by the remote product id.
func upsertCourseFromProduct(payload ProductWebhookPayload) error {
	productID := strconv.FormatInt(payload.ID, 10)

	price := 0
	variantID := ""
	if len(payload.Variants) > 0 {
		price = utils.ParseWebhookPrice(payload.Variants[0].Price)
		variantID = strconv.FormatInt(payload.Variants[0].ID, 10)
	}

	thumbnail := ""
	if payload.Image != nil && payload.Image.Src != "" {
		thumbnail = payload.Image.Src
	} else if len(payload.Images) > 0 {
		thumbnail = payload.Images[0].Src
	}

	category := payload.ProductType
	if category == "" {
		category = "General"
	}

	db := database.Database.Db

	var course models.Course
	err := db.Where("shopify_product_id = ?", productID).First(&course).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		course = models.Course{
			Title:            payload.Title,
			Description:      payload.BodyHTML,
			Price:            price,
			ThumbnailURL:     thumbnail,
			Category:         category,
			Rating:           4.8,
			ShopifyProductID: productID,
			ShopifyVariantID: variantID,
		}
		return db.Create(&course).Error
	}

	course.Title = payload.Title
	course.Description = payload.BodyHTML
	course.Price = price
	course.ThumbnailURL = thumbnail
	course.Category = category
	course.ShopifyVariantID = variantID
	return db.Save(&course).Error
}

// WebhookHealth reports bridge status and, when an app URL is configured,
// the webhook callback address to register remotely.
func WebhookHealth(c *fiber.Ctx) error {
	if config.AppConfig.ShopifyAppURL == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "ok",
		"webhookUrl": config.AppConfig.ShopifyAppURL + "/api/shopify/webhooks",
	})
}
