package shopifyController

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursecraft/config"
	"coursecraft/database"
	"coursecraft/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testWebhookSecret = "shpss_webhook_secret"

func setupWebhookTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:                  "test-secret",
		SaltRound:               4,
		ShopifyStoreDomain:      "test-store.myshopify.com",
		ShopifyStorefrontToken:  "storefront-token",
		ShopifyAdminAccessToken: "admin-token",
		ShopifyWebhookSecret:    testWebhookSecret,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/shopify/webhooks", HandleWebhook)
	app.Get("/api/shopify/webhooks", WebhookHealth)
	return app
}

func signWebhookBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, topic string, body []byte, hmacHeader string) *http.Response {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/shopify/webhooks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Topic", topic)
	if hmacHeader != "" {
		req.Header.Set("X-Shopify-Hmac-Sha256", hmacHeader)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleWebhookRejectsInvalidHMAC(t *testing.T) {
	app := setupWebhookTest(t)

	body := []byte(`{"id":100,"title":"Injected Course","variants":[{"id":1,"price":"0.00"}]}`)
	resp := postWebhook(t, app, "products/create", body, base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0}, 32)))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Course{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestHandleWebhookRejectsMissingHMAC(t *testing.T) {
	app := setupWebhookTest(t)

	body := []byte(`{"id":100,"title":"Injected Course"}`)
	resp := postWebhook(t, app, "products/create", body, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHandleWebhookCreatesCourse(t *testing.T) {
	app := setupWebhookTest(t)

	body := []byte(`{
		"id": 9001,
		"title": "Go Fundamentals",
		"body_html": "<p>Learn Go.</p>",
		"product_type": "",
		"image": {"src": "https://cdn.example.com/go.png"},
		"variants": [{"id": 7001, "price": "19900.00"}]
	}`)

	resp := postWebhook(t, app, "products/create", body, signWebhookBody(body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var course models.Course
	err := database.Database.Db.Where("shopify_product_id = ?", "9001").First(&course).Error
	require.NoError(t, err)

	assert.Equal(t, "Go Fundamentals", course.Title)
	assert.Equal(t, "<p>Learn Go.</p>", course.Description)
	assert.Equal(t, 19900, course.Price)
	assert.Equal(t, "https://cdn.example.com/go.png", course.ThumbnailURL)
	assert.Equal(t, "General", course.Category)
	assert.Equal(t, 4.8, course.Rating)
	assert.Equal(t, "7001", course.ShopifyVariantID)
	assert.False(t, course.IsPublished)
}

func TestHandleWebhookUpdateIsIdempotent(t *testing.T) {
	app := setupWebhookTest(t)

	createBody := []byte(`{"id":9002,"title":"Old Title","body_html":"old","product_type":"Bootcamp","variants":[{"id":1,"price":"100.00"}]}`)
	resp := postWebhook(t, app, "products/create", createBody, signWebhookBody(createBody))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	updateBody := []byte(`{"id":9002,"title":"New Title","body_html":"new","product_type":"Bootcamp","variants":[{"id":2,"price":"not-a-price"}]}`)
	resp = postWebhook(t, app, "products/update", updateBody, signWebhookBody(updateBody))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Course{}).Where("shopify_product_id = ?", "9002").Count(&count)
	assert.Equal(t, int64(1), count)

	var course models.Course
	require.NoError(t, database.Database.Db.Where("shopify_product_id = ?", "9002").First(&course).Error)
	assert.Equal(t, "New Title", course.Title)
	assert.Equal(t, "new", course.Description)
	assert.Equal(t, "Bootcamp", course.Category)
	// malformed variant price coerces to 0
	assert.Equal(t, 0, course.Price)
	assert.Equal(t, "2", course.ShopifyVariantID)
}

func TestHandleWebhookFallsBackToImagesList(t *testing.T) {
	app := setupWebhookTest(t)

	body := []byte(`{"id":9003,"title":"Pictures","images":[{"src":"https://cdn.example.com/first.png"},{"src":"https://cdn.example.com/second.png"}]}`)
	resp := postWebhook(t, app, "products/create", body, signWebhookBody(body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var course models.Course
	require.NoError(t, database.Database.Db.Where("shopify_product_id = ?", "9003").First(&course).Error)
	assert.Equal(t, "https://cdn.example.com/first.png", course.ThumbnailURL)
	assert.Equal(t, 0, course.Price)
}

func TestHandleWebhookDeleteUnlinksButKeepsCourse(t *testing.T) {
	app := setupWebhookTest(t)

	course := models.Course{
		Title:            "Linked Course",
		ShopifyProductID: "9004",
		ShopifyVariantID: "7004",
		IsPublished:      true,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	body := []byte(`{"id":9004}`)
	resp := postWebhook(t, app, "products/delete", body, signWebhookBody(body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var kept models.Course
	require.NoError(t, database.Database.Db.First(&kept, course.ID).Error)
	assert.Equal(t, "", kept.ShopifyProductID)
	assert.Equal(t, "", kept.ShopifyVariantID)
	assert.Equal(t, "Linked Course", kept.Title)
	assert.True(t, kept.IsPublished)
}

func TestHandleWebhookAcksWhenBridgeDisabled(t *testing.T) {
	app := setupWebhookTest(t)
	config.AppConfig.ShopifyWebhookSecret = ""

	body := []byte(`{"id":9005,"title":"Should Not Exist"}`)
	resp := postWebhook(t, app, "products/create", body, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Course{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestWebhookHealth(t *testing.T) {
	app := setupWebhookTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/shopify/webhooks", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	assert.Equal(t, "ok", payload["status"])
	assert.NotContains(t, payload, "webhookUrl")

	config.AppConfig.ShopifyAppURL = "https://courses.example.com"
	resp, err = app.Test(httptest.NewRequest("GET", "/api/shopify/webhooks", nil), -1)
	require.NoError(t, err)

	payload = decodeBody(t, resp)
	assert.Equal(t, "https://courses.example.com/api/shopify/webhooks", payload["webhookUrl"])
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}
