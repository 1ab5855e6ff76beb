package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	SendgridApiKey string
	EmailSender    string

	// MinIO / S3 compatible media bucket
	MediaEndpoint     string
	MediaAccessKey    string
	MediaSecretKey    string
	MediaBucket       string
	MediaUseSSL       bool
	MediaPresignedTTL int // minutes

	// Shopify commerce bridge
	ShopifyStoreDomain      string
	ShopifyStorefrontToken  string
	ShopifyAdminAccessToken string
	ShopifyWebhookSecret    string
	ShopifyAppURL           string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@coursecraft.app"),

		MediaEndpoint:     getEnv("MEDIA_ENDPOINT", "localhost:9000"),
		MediaAccessKey:    getEnv("MEDIA_ACCESS_KEY", ""),
		MediaSecretKey:    getEnv("MEDIA_SECRET_KEY", ""),
		MediaBucket:       getEnv("MEDIA_BUCKET", "coursecraft-media"),
		MediaUseSSL:       getEnv("MEDIA_USE_SSL", "false") == "true",
		MediaPresignedTTL: getEnvInt("MEDIA_PRESIGNED_TTL_MINUTES", 60),

		ShopifyStoreDomain:      getEnv("SHOPIFY_STORE_DOMAIN", ""),
		ShopifyStorefrontToken:  getEnv("SHOPIFY_STOREFRONT_ACCESS_TOKEN", ""),
		ShopifyAdminAccessToken: getEnv("SHOPIFY_ADMIN_ACCESS_TOKEN", ""),
		ShopifyWebhookSecret:    getEnv("SHOPIFY_WEBHOOK_SECRET", ""),
		ShopifyAppURL:           getEnv("SHOPIFY_APP_URL", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// ShopifyEnabled reports whether the commerce bridge is fully configured.
// All four secrets must be present; the app URL stays optional.
func ShopifyEnabled() bool {
	return AppConfig.ShopifyStoreDomain != "" &&
		AppConfig.ShopifyStorefrontToken != "" &&
		AppConfig.ShopifyAdminAccessToken != "" &&
		AppConfig.ShopifyWebhookSecret != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
