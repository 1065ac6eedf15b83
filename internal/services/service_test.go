package services

import (
	"testing"

	"github.com/openlistings/realestate-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
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

	return db
}

// createTestUser registers a user through the service layer
func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := RegisterUser(db, email, "Passw0rd")
	if err != nil {
		t.Fatalf("Failed to create test user %s: %v", email, err)
	}
	return user
}

// createTestProperty inserts a listing owned by ownerID
func createTestProperty(t *testing.T, db *gorm.DB, ownerID uint, fields PropertyFields) *models.Property {
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

	property, err := CreateProperty(db, ownerID, fields)
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}
	return property
}
