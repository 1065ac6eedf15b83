package services

import (
	"errors"
	"strings"

	"github.com/openlistings/realestate-api/internal/models"
	"gorm.io/gorm"
)

// GetFavorite returns the favorite row for the pair or ErrNotFound.
func GetFavorite(db *gorm.DB, userID, propertyID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

// ListFavorites returns every property the user has favorited. No
// ordering is part of the contract.
func ListFavorites(db *gorm.DB, userID uint) ([]models.Property, error) {
	var properties []models.Property
	err := db.Model(&models.Property{}).
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_id = ?", userID).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// AddFavorite bookmarks the property for the user. Returns ErrConflict if
// the pair already exists and ErrNotFound if the property does not. The
// pre-check and the insert are separate round trips; a concurrent add
// that loses the race hits the composite-key constraint, which is
// reported as ErrConflict rather than a raw database failure.
func AddFavorite(db *gorm.DB, userID, propertyID uint) error {
	if _, err := GetFavorite(db, userID, propertyID); err == nil {
		return ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	if _, err := GetPropertyByID(db, propertyID); err != nil {
		return err
	}

	favorite := models.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
	}
	if err := db.Create(&favorite).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrConflict
		}
		return ErrOperationFailed
	}

	return nil
}

// RemoveFavorite deletes the bookmark. Returns ErrNotFound when no row
// exists for the pair.
func RemoveFavorite(db *gorm.DB, userID, propertyID uint) error {
	favorite, err := GetFavorite(db, userID, propertyID)
	if err != nil {
		return err
	}

	result := db.Delete(favorite)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOperationFailed
	}

	return nil
}

// isDuplicateKeyError recognizes a composite-key violation across the
// supported dialects.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
