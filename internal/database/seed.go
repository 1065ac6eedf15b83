package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/openlistings/realestate-api/data"
	"github.com/openlistings/realestate-api/internal/auth"
	"github.com/openlistings/realestate-api/internal/models"
	"gorm.io/gorm"
)

type seedUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type seedProperty struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Suburb      string   `json:"suburb"`
	ListingType string   `json:"listingType"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	CarSpots    int      `json:"carSpots"`
	ImageUrls   []string `json:"imageUrls"`
	Owner       int      `json:"owner"`
}

type seedData struct {
	Users      []seedUser     `json:"users"`
	Properties []seedProperty `json:"properties"`
}

// Seed populates an empty database with the embedded demo users and
// listings. A database that already has users is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	var sd seedData
	if err := json.Unmarshal(data.SeedListings, &sd); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	users := make([]models.User, 0, len(sd.Users))
	for _, su := range sd.Users {
		hash, salt, err := auth.HashPassword(su.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		users = append(users, models.User{
			Email:        su.Email,
			PasswordHash: hash,
			PasswordSalt: salt,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to create seed users: %w", err)
	}

	properties := make([]models.Property, 0, len(sd.Properties))
	for _, sp := range sd.Properties {
		if sp.Owner < 0 || sp.Owner >= len(users) {
			return fmt.Errorf("seed property %q references unknown owner %d", sp.Title, sp.Owner)
		}
		properties = append(properties, models.Property{
			Title:       sp.Title,
			Description: sp.Description,
			Price:       sp.Price,
			Address:     sp.Address,
			City:        sp.City,
			Suburb:      sp.Suburb,
			ListingType: sp.ListingType,
			Bedrooms:    sp.Bedrooms,
			Bathrooms:   sp.Bathrooms,
			CarSpots:    sp.CarSpots,
			ImageUrls:   models.SerializeImageURLs(sp.ImageUrls),
			UserID:      users[sp.Owner].ID,
		})
	}
	if err := db.Create(&properties).Error; err != nil {
		return fmt.Errorf("failed to create seed properties: %w", err)
	}

	log.Printf("Seeded %d users and %d properties", len(users), len(properties))

	return nil
}
