package models

import (
	"time"
)

// Listing type values for Property.ListingType.
const (
	ListingTypeSale = "Sale"
	ListingTypeRent = "Rent"
)

// Property represents a listing for sale or rent. ImageUrls is persisted
// as a JSON-encoded text column and converted at the storage boundary by
// SerializeImageURLs/ParseImageURLs.
type Property struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"size:255;not null"`
	Address     string  `gorm:"size:500;not null"`
	City        string  `gorm:"size:100"`
	Suburb      string  `gorm:"size:100"`
	Description string  `gorm:"size:2000"`
	Price       float64 `gorm:"not null"`
	ListingType string  `gorm:"size:50;not null;default:Sale"`
	Bedrooms    int     `gorm:"not null"`
	Bathrooms   int     `gorm:"not null"`
	CarSpots    int     `gorm:"not null"`
	ImageUrls   string  `gorm:"type:text"`
	UserID      uint    `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "properties"
}
