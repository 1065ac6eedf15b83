package services

import (
	"errors"
	"time"

	"github.com/openlistings/realestate-api/internal/models"
	"gorm.io/gorm"
)

// DefaultRecentlyViewedCount is the listRecent cap when the caller does
// not supply a valid count.
const DefaultRecentlyViewedCount = 10

// RecordView upserts the last-viewed timestamp for the (user, property)
// pair: an existing row gets its viewedAt replaced with now (UTC), a
// missing pair gets a new row. Last write wins. The property must exist;
// views of unknown ids are rejected instead of creating orphaned rows.
func RecordView(db *gorm.DB, userID, propertyID uint) error {
	if _, err := GetPropertyByID(db, propertyID); err != nil {
		return err
	}

	now := time.Now().UTC()

	var viewed models.ViewedProperty
	err := db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&viewed).Error
	switch {
	case err == nil:
		result := db.Model(&viewed).Update("viewed_at", now)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOperationFailed
		}
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		viewed = models.ViewedProperty{
			UserID:     userID,
			PropertyID: propertyID,
			ViewedAt:   now,
		}
		if err := db.Create(&viewed).Error; err != nil {
			return ErrOperationFailed
		}
		return nil

	default:
		return err
	}
}

// ListRecentlyViewed returns up to count properties most recently viewed
// by the user, newest first. The upsert in RecordView keeps one row per
// pair, but the read path deduplicates by property id anyway.
func ListRecentlyViewed(db *gorm.DB, userID uint, count int) ([]models.Property, error) {
	if count <= 0 {
		count = DefaultRecentlyViewedCount
	}

	var views []models.ViewedProperty
	err := db.Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(count).
		Find(&views).Error
	if err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(views))
	seen := make(map[uint]struct{}, len(views))
	for _, view := range views {
		if _, dup := seen[view.PropertyID]; dup {
			continue
		}
		seen[view.PropertyID] = struct{}{}

		var property models.Property
		if err := db.First(&property, view.PropertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The listing was deleted after it was viewed.
				continue
			}
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, nil
}
