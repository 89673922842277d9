package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AviAkaMe/Studio-App-Code/handlers"
	"github.com/AviAkaMe/Studio-App-Code/middleware"
	"github.com/AviAkaMe/Studio-App-Code/models"
	"github.com/AviAkaMe/Studio-App-Code/routes"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestApp wires the full handler stack against a fresh in-memory
// database, mirroring the wiring in cmd/api/main.go.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Lesson{}, &models.Booking{}))

	app := fiber.New()
	protected := middleware.Protected(testSecret)
	routes.AuthRoutes(app, handlers.NewAuthHandler(db, testSecret, nil))
	routes.LessonRoutes(app, handlers.NewLessonHandler(db), protected)
	routes.BookingRoutes(app, handlers.NewBookingHandler(db), protected)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createLesson(t *testing.T, app *fiber.App, adminToken, title string) string {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/v1/lessons", adminToken, fiber.Map{
		"title":      title,
		"start_time": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"duration":   60,
		"capacity":   10,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var lesson struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &lesson)
	require.NotEmpty(t, lesson.ID)
	return lesson.ID
}

func createBooking(t *testing.T, app *fiber.App, studentToken, lessonID string) string {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/v1/bookings", studentToken, fiber.Map{
		"lesson_id": lessonID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var booking struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &booking)
	require.NotEmpty(t, booking.ID)
	return booking.ID
}
