package authController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursecraft/config"
	"coursecraft/database"
	"coursecraft/middleware"
	"coursecraft/models"
	authValidators "coursecraft/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authValidators.Signup(), Signup)
	authGroup.Post("/login", authValidators.Login(), Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, GetProfile)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func parseEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestSignupCreatesStudent(t *testing.T) {
	app := setupAuthTest(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"full_name": "Ada Lovelace",
		"email":     "ada@example.com",
		"password":  "supersecret",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload := parseEnvelope(t, resp)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "Ada Lovelace", data["full_name"])
	assert.Equal(t, "STUDENT", data["role"])
	assert.NotContains(t, data, "password")

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "ada@example.com").First(&user).Error)
	assert.Equal(t, "STUDENT", user.Role)
	assert.NotEqual(t, "supersecret", user.Password)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupAuthTest(t)

	body := fiber.Map{"full_name": "Ada Lovelace", "email": "ada@example.com", "password": "supersecret"}
	resp := postJSON(t, app, "/auth/signup", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/signup", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app := setupAuthTest(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"full_name": "A",
		"email":     "not-an-email",
		"password":  "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	payload := parseEnvelope(t, resp)
	errors := payload["data"].(map[string]interface{})
	assert.Contains(t, errors, "full_name")
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "password")
}

func TestLoginReturnsTokenAndTracksLogin(t *testing.T) {
	app := setupAuthTest(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"full_name": "Ada Lovelace",
		"email":     "ada@example.com",
		"password":  "supersecret",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	payload := parseEnvelope(t, resp)
	data := payload["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)

	var trackingCount int64
	database.Database.Db.Model(&models.LoginTracking{}).Count(&trackingCount)
	assert.Equal(t, int64(1), trackingCount)

	// token works against the profile endpoint
	req := httptest.NewRequest("GET", "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	profileResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, profileResp.StatusCode)

	profile := parseEnvelope(t, profileResp)["data"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", profile["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupAuthTest(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"full_name": "Ada Lovelace",
		"email":     "ada@example.com",
		"password":  "supersecret",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "ada@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupAuthTest(t)

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "ghost@example.com",
		"password": "whatever",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	app := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/auth/profile", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
