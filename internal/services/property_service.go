package services

import (
	"errors"

	"github.com/openlistings/realestate-api/internal/models"
	"gorm.io/gorm"
)

// PropertyFilter holds the optional predicates for FilterProperties.
// Nil/empty fields are omitted from the query, not matched against.
type PropertyFilter struct {
	Suburb      string
	MinPrice    *float64
	MaxPrice    *float64
	Bedrooms    *int
	ListingType string
}

// PropertyFields is the explicit update/create command payload for a
// listing. Mutations go through this struct rather than mutating a
// fetched row in place.
type PropertyFields struct {
	Title       string
	Description string
	Address     string
	City        string
	Suburb      string
	Price       float64
	ListingType string
	Bedrooms    int
	Bathrooms   int
	CarSpots    int
	ImageUrls   []string
}

// FilterProperties returns every property satisfying the conjunction of
// the supplied predicates. The suburb term is matched case-sensitively as
// a substring of suburb, city, or address. Results are ordered by id
// ascending; the upstream contract left ordering undefined and this is
// the documented choice.
func FilterProperties(db *gorm.DB, filter PropertyFilter) ([]models.Property, error) {
	query := db.Model(&models.Property{})

	if filter.Suburb != "" {
		term := "%" + filter.Suburb + "%"
		query = query.Where("suburb LIKE ? OR city LIKE ? OR address LIKE ?", term, term, term)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Bedrooms != nil {
		query = query.Where("bedrooms = ?", *filter.Bedrooms)
	}
	if filter.ListingType != "" {
		query = query.Where("listing_type = ?", filter.ListingType)
	}

	var properties []models.Property
	if err := query.Order("id ASC").Find(&properties).Error; err != nil {
		return nil, err
	}

	return properties, nil
}

// ListPropertiesByOwner returns every listing owned by ownerID, newest
// id first.
func ListPropertiesByOwner(db *gorm.DB, ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := db.Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// GetPropertyByID returns the property or ErrNotFound.
func GetPropertyByID(db *gorm.DB, id uint) (*models.Property, error) {
	var property models.Property
	if err := db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// CreateProperty inserts a listing owned by ownerID.
func CreateProperty(db *gorm.DB, ownerID uint, fields PropertyFields) (*models.Property, error) {
	property := models.Property{
		Title:       fields.Title,
		Description: fields.Description,
		Address:     fields.Address,
		City:        fields.City,
		Suburb:      fields.Suburb,
		Price:       fields.Price,
		ListingType: fields.ListingType,
		Bedrooms:    fields.Bedrooms,
		Bathrooms:   fields.Bathrooms,
		CarSpots:    fields.CarSpots,
		ImageUrls:   models.SerializeImageURLs(fields.ImageUrls),
		UserID:      ownerID,
	}
	if err := db.Create(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// UpdateProperty replaces the mutable fields of the listing. Existence is
// checked before ownership: a missing id is ErrNotFound for everyone, a
// present id owned by someone else is ErrForbidden.
func UpdateProperty(db *gorm.DB, id, ownerID uint, fields PropertyFields) error {
	property, err := GetPropertyByID(db, id)
	if err != nil {
		return err
	}
	if property.UserID != ownerID {
		return ErrForbidden
	}

	result := db.Model(property).Updates(map[string]interface{}{
		"title":        fields.Title,
		"description":  fields.Description,
		"address":      fields.Address,
		"city":         fields.City,
		"suburb":       fields.Suburb,
		"price":        fields.Price,
		"listing_type": fields.ListingType,
		"bedrooms":     fields.Bedrooms,
		"bathrooms":    fields.Bathrooms,
		"car_spots":    fields.CarSpots,
		"image_urls":   models.SerializeImageURLs(fields.ImageUrls),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOperationFailed
	}

	return nil
}

// DeleteProperty removes the listing with the same existence-then-
// ownership precedence as UpdateProperty.
func DeleteProperty(db *gorm.DB, id, ownerID uint) error {
	property, err := GetPropertyByID(db, id)
	if err != nil {
		return err
	}
	if property.UserID != ownerID {
		return ErrForbidden
	}

	result := db.Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOperationFailed
	}

	return nil
}
