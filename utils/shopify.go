package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"coursecraft/config"
	"coursecraft/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

const ShopifyAdminAPIVersion = "2024-07"

// ShopifyVariant is the variant shape sent to and returned by the admin API.
type ShopifyVariant struct {
	ID      int64  `json:"id,omitempty"`
	Price   string `json:"price,omitempty"`
	Taxable *bool  `json:"taxable,omitempty"`
}

// ShopifyProduct is the product shape sent to and returned by the admin API.
type ShopifyProduct struct {
	ID          int64            `json:"id,omitempty"`
	Title       string           `json:"title,omitempty"`
	BodyHTML    string           `json:"body_html,omitempty"`
	Status      string           `json:"status,omitempty"`
	ProductType string           `json:"product_type,omitempty"`
	Tags        string           `json:"tags,omitempty"`
	Variants    []ShopifyVariant `json:"variants,omitempty"`
}

type shopifyProductEnvelope struct {
	Product ShopifyProduct `json:"product"`
}

// ShopifyClient talks to the Shopify admin REST API.
type ShopifyClient struct {
	http    *resty.Client
	baseURL string
	token   string
}

// NewShopifyClient builds a client from the loaded configuration.
func NewShopifyClient() *ShopifyClient {
	return NewShopifyClientFor(
		fmt.Sprintf("https://%s/admin/api/%s", config.AppConfig.ShopifyStoreDomain, ShopifyAdminAPIVersion),
		config.AppConfig.ShopifyAdminAccessToken,
	)
}

// NewShopifyClientFor builds a client against an explicit base URL. Used for
// pointing the bridge at a stub server in tests.
func NewShopifyClientFor(baseURL, token string) *ShopifyClient {
	return &ShopifyClient{
		http:    resty.New().SetTimeout(10 * time.Second),
		baseURL: baseURL,
		token:   token,
	}
}

func (s *ShopifyClient) request(method, path string, product *ShopifyProduct) (*ShopifyProduct, error) {
	req := s.http.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Shopify-Access-Token", s.token)

	if product != nil {
		req.SetBody(shopifyProductEnvelope{Product: *product})
	}

	resp, err := req.Execute(method, s.baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("shopify admin request failed: %v", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("shopify admin request failed (%d): %s", resp.StatusCode(), resp.String())
	}

	var envelope shopifyProductEnvelope
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			return nil, fmt.Errorf("failed to parse shopify response: %v", err)
		}
	}
	return &envelope.Product, nil
}

// BuildCourseProductPayload maps a course onto the remote product shape.
func BuildCourseProductPayload(course models.Course) ShopifyProduct {
	taxable := false
	variant := ShopifyVariant{
		Price:   fmt.Sprintf("%.2f", float64(course.Price)),
		Taxable: &taxable,
	}
	if course.ShopifyVariantID != "" {
		if id, err := strconv.ParseInt(course.ShopifyVariantID, 10, 64); err == nil {
			variant.ID = id
		}
	}

	return ShopifyProduct{
		Title:       course.Title,
		BodyHTML:    course.Description,
		Status:      "active",
		ProductType: "Course",
		Tags:        "CourseCraft",
		Variants:    []ShopifyVariant{variant},
	}
}

// SyncCourse creates or updates the remote product for a course and persists
// the returned product/variant ids back onto the course row.
func (s *ShopifyClient) SyncCourse(db *gorm.DB, course *models.Course) (string, string, error) {
	payload := BuildCourseProductPayload(*course)

	if course.ShopifyProductID != "" {
		if id, err := strconv.ParseInt(course.ShopifyProductID, 10, 64); err == nil {
			payload.ID = id
		}

		updated, err := s.request("PUT", fmt.Sprintf("/products/%s.json", course.ShopifyProductID), &payload)
		if err != nil {
			return "", "", err
		}

		variantID := course.ShopifyVariantID
		if variantID == "" && len(updated.Variants) > 0 {
			variantID = strconv.FormatInt(updated.Variants[0].ID, 10)
			if err := db.Model(course).Update("shopify_variant_id", variantID).Error; err != nil {
				return "", "", err
			}
			course.ShopifyVariantID = variantID
		}
		return course.ShopifyProductID, variantID, nil
	}

	created, err := s.request("POST", "/products.json", &payload)
	if err != nil {
		return "", "", err
	}

	productID := strconv.FormatInt(created.ID, 10)
	variantID := ""
	if len(created.Variants) > 0 {
		variantID = strconv.FormatInt(created.Variants[0].ID, 10)
	}

	updates := map[string]interface{}{
		"shopify_product_id": productID,
		"shopify_variant_id": variantID,
	}
	if err := db.Model(course).Updates(updates).Error; err != nil {
		return "", "", err
	}
	course.ShopifyProductID = productID
	course.ShopifyVariantID = variantID

	return productID, variantID, nil
}

// UnlinkCourse deletes the remote product and clears the stored ids. The
// local course row survives.
func (s *ShopifyClient) UnlinkCourse(db *gorm.DB, course *models.Course) error {
	if course.ShopifyProductID == "" {
		return nil
	}

	if _, err := s.request("DELETE", fmt.Sprintf("/products/%s.json", course.ShopifyProductID), nil); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"shopify_product_id": "",
		"shopify_variant_id": "",
	}
	if err := db.Model(course).Updates(updates).Error; err != nil {
		return err
	}
	course.ShopifyProductID = ""
	course.ShopifyVariantID = ""
	return nil
}

// VerifyShopifyWebhook checks the HMAC-SHA256 signature (base64) of a raw
// webhook body against the shared secret using a constant-time compare.
func VerifyShopifyWebhook(rawBody []byte, hmacHeader, secret string) bool {
	if hmacHeader == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	digest := mac.Sum(nil)

	header, err := base64.StdEncoding.DecodeString(hmacHeader)
	if err != nil || len(header) != len(digest) {
		return false
	}

	return hmac.Equal(digest, header)
}

// ParseWebhookPrice coerces a variant price string to integer currency units.
// Malformed prices fall back to 0, matching the storefront, but the fallback
// is logged so silent zero-priced upserts can be traced.
func ParseWebhookPrice(raw string) int {
	if raw == "" {
		return 0
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		log.Printf("Warning: webhook variant price %q is not numeric, falling back to 0", raw)
		return 0
	}
	return int(math.Round(price))
}
