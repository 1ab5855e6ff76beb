package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"coursecraft/models"

	"github.com/stretchr/testify/assert"
)

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyShopifyWebhook(t *testing.T) {
	secret := "shpss_test_secret"
	body := []byte(`{"id":123,"title":"Go Course"}`)

	assert.True(t, VerifyShopifyWebhook(body, signBody(body, secret), secret))
}

func TestVerifyShopifyWebhookRejectsTamperedBody(t *testing.T) {
	secret := "shpss_test_secret"
	body := []byte(`{"id":123,"title":"Go Course"}`)
	header := signBody(body, secret)

	tampered := []byte(`{"id":123,"title":"Free Course"}`)
	assert.False(t, VerifyShopifyWebhook(tampered, header, secret))
}

func TestVerifyShopifyWebhookRejectsBadHeader(t *testing.T) {
	secret := "shpss_test_secret"
	body := []byte(`{}`)

	assert.False(t, VerifyShopifyWebhook(body, "", secret))
	assert.False(t, VerifyShopifyWebhook(body, "not-base64!!!", secret))
	assert.False(t, VerifyShopifyWebhook(body, base64.StdEncoding.EncodeToString([]byte("short")), secret))
	assert.False(t, VerifyShopifyWebhook(body, signBody(body, "other_secret"), secret))
	assert.False(t, VerifyShopifyWebhook(body, signBody(body, secret), ""))
}

func TestParseWebhookPrice(t *testing.T) {
	assert.Equal(t, 19900, ParseWebhookPrice("19900.00"))
	assert.Equal(t, 50, ParseWebhookPrice("49.50"))
	assert.Equal(t, 49, ParseWebhookPrice("49.49"))
	assert.Equal(t, 0, ParseWebhookPrice(""))
	assert.Equal(t, 0, ParseWebhookPrice("free"))
	assert.Equal(t, 0, ParseWebhookPrice("NaN"))
}

func TestBuildCourseProductPayload(t *testing.T) {
	course := models.Course{
		Title:       "Go for Web Developers",
		Description: "Build services in Go.",
		Price:       19900,
	}

	payload := BuildCourseProductPayload(course)

	assert.Equal(t, "Go for Web Developers", payload.Title)
	assert.Equal(t, "Build services in Go.", payload.BodyHTML)
	assert.Equal(t, "active", payload.Status)
	assert.Equal(t, "Course", payload.ProductType)
	assert.Equal(t, "CourseCraft", payload.Tags)
	assert.Len(t, payload.Variants, 1)
	assert.Equal(t, "19900.00", payload.Variants[0].Price)
	assert.Equal(t, int64(0), payload.Variants[0].ID)
	if assert.NotNil(t, payload.Variants[0].Taxable) {
		assert.False(t, *payload.Variants[0].Taxable)
	}
}

func TestBuildCourseProductPayloadKeepsVariantID(t *testing.T) {
	course := models.Course{
		Title:            "Go for Web Developers",
		Price:            100,
		ShopifyVariantID: "456",
	}

	payload := BuildCourseProductPayload(course)

	assert.Equal(t, int64(456), payload.Variants[0].ID)
}
