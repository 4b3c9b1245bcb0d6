package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitflow/internal/config"
	"fitflow/internal/database"
	"fitflow/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "Str0ng!Pass1"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecret:      "test-secret-key-0123456789abcdef0123456789",
		JWTExpiryHours: 168,
		Port:           "8080",
		Env:            "test",
		FrontendURL:    "http://localhost:5173",
		UploadDir:      t.TempDir(),
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func newTestApp(s *Server) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupRoutes(app)
	return app
}

func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	s := NewServerWithDeps(testConfig(t), newTestDB(t), nil)
	return s, newTestApp(s)
}

// createTestUser inserts a user with the shared test password and
// returns it with a valid bearer token.
func createTestUser(t *testing.T, s *Server, email string) (*models.User, string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
	}
	require.NoError(t, s.userRepo.Create(context.Background(), user))

	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func jsonRequest(t *testing.T, method, path, token string, body any) *http.Request {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	resp, err := app.Test(jsonRequest(t, method, path, token, body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestValidationMessage(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"omitempty,email"`
		Bio   string `validate:"max=5"`
	}

	tests := []struct {
		name string
		in   payload
		want string
	}{
		{"missing required", payload{Email: "a@b.co"}, "Name is required"},
		{"bad email", payload{Name: "x", Email: "nope"}, "Invalid email address"},
		{"too long", payload{Name: "x", Bio: "abcdefgh"}, "Bio is too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, validationMessage(err))
		})
	}
}

func TestParseIDRejectsBadParams(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "parseid@example.com")

	for _, path := range []string{"/api/workouts/abc", "/api/workouts/0", "/api/workouts/-3"} {
		resp := doJSON(t, app, fiber.MethodGet, path, token, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Invalid ID", body.Error)
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	_, app := newTestServer(t)

	resp := doJSON(t, app, fiber.MethodGet, "/health/live", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Redis    string `json:"redis"`
		} `json:"checks"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks.Database)
	assert.Equal(t, "unavailable", body.Checks.Redis)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()
	_, app := newTestServer(t)

	for _, path := range []string{
		"/api/workouts/",
		"/api/nutrition/meals",
		"/api/goals/",
		"/api/dashboard/stats",
		"/api/user/profile",
	} {
		resp := doJSON(t, app, fiber.MethodGet, path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}
