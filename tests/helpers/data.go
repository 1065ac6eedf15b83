package helpers

import (
	"testing"

	"github.com/openlistings/realestate-api/internal/auth"
	"github.com/openlistings/realestate-api/internal/models"
	"gorm.io/gorm"
)

// CreateTestUser inserts an account with the given credentials.
func CreateTestUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, salt, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return &user
}

// CreateTestProperty inserts a listing owned by ownerID.
func CreateTestProperty(t *testing.T, db *gorm.DB, ownerID uint, title string, price float64) *models.Property {
	t.Helper()

	property := models.Property{
		Title:       title,
		Address:     "1 Test St",
		City:        "Testville",
		Suburb:      "Central",
		Price:       price,
		ListingType: models.ListingTypeSale,
		Bedrooms:    2,
		Bathrooms:   1,
		ImageUrls:   "[]",
		UserID:      ownerID,
	}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("Failed to create property %s: %v", title, err)
	}
	return &property
}
