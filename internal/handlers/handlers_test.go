package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/openlistings/realestate-api/internal/auth"
	"github.com/openlistings/realestate-api/internal/middleware"
	"github.com/openlistings/realestate-api/internal/models"
	"github.com/openlistings/realestate-api/internal/services"
	"github.com/openlistings/realestate-api/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testSecret = []byte("handler-test-secret")

// newTestApp builds a Fiber app with the full route table wired against
// an in-memory SQLite database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Favorite{},
		&models.ViewedProperty{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := err.Error()
			errorType := "unknown"
			switch e := err.(type) {
			case *types.CustomError:
				code = e.Code
				message = e.Message
				errorType = e.Type
			case *fiber.Error:
				code = e.Code
				message = e.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"status":    code,
				"message":   message,
				"ok":        false,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"url":       c.OriginalURL(),
				"type":      errorType,
			})
		},
	})

	authHandler := &AuthHandler{DB: db, JWTSecret: testSecret, TokenTTL: time.Hour}
	propertyHandler := &PropertyHandler{DB: db}
	favoriteHandler := &FavoriteHandler{DB: db}
	viewedHandler := &RecentlyViewedHandler{DB: db}

	requireAuth := middleware.RequireAuth(testSecret)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	properties := api.Group("/properties")
	properties.Get("/", propertyHandler.ListProperties)
	properties.Get("/mine", requireAuth, propertyHandler.ListMyProperties)
	properties.Get("/:id", propertyHandler.GetProperty)
	properties.Post("/", requireAuth, propertyHandler.CreateProperty)
	properties.Put("/:id", requireAuth, propertyHandler.UpdateProperty)
	properties.Delete("/:id", requireAuth, propertyHandler.DeleteProperty)

	favorites := api.Group("/favorites", requireAuth)
	favorites.Get("/", favoriteHandler.ListFavorites)
	favorites.Post("/:propertyId", favoriteHandler.AddFavorite)
	favorites.Delete("/:propertyId", favoriteHandler.RemoveFavorite)

	viewed := api.Group("/recentlyviewed", requireAuth)
	viewed.Get("/", viewedHandler.ListRecentlyViewed)
	viewed.Post("/:propertyId", viewedHandler.RecordView)

	return app, db
}

// registerUser creates an account directly and returns the user with a
// valid bearer token.
func registerUser(t *testing.T, db *gorm.DB, email string) (*models.User, string) {
	t.Helper()

	user, err := services.RegisterUser(db, email, "Passw0rd")
	if err != nil {
		t.Fatalf("Failed to register %s: %v", email, err)
	}
	token, err := auth.GenerateToken(user.ID, user.Email, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token for %s: %v", email, err)
	}
	return user, token
}

// seedProperty inserts a listing owned by ownerID.
func seedProperty(t *testing.T, db *gorm.DB, ownerID uint, fields services.PropertyFields) *models.Property {
	t.Helper()

	if fields.Title == "" {
		fields.Title = "Test Listing"
	}
	if fields.Address == "" {
		fields.Address = "1 Test St"
	}
	if fields.ListingType == "" {
		fields.ListingType = models.ListingTypeSale
	}
	property, err := services.CreateProperty(db, ownerID, fields)
	if err != nil {
		t.Fatalf("Failed to seed property: %v", err)
	}
	return property
}

// doRequest performs a request against the app. A non-empty token is
// sent as a bearer Authorization header; a non-nil body is sent as JSON.
func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, target, err)
	}
	return resp
}

// decodeBody decodes the response body into out.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}
