package models

import (
	"time"
)

// ViewedProperty records the last time a user viewed a property. At most
// one live row exists per (user, property) pair; the write path upserts
// rather than inserting duplicates, so no unique constraint is declared.
type ViewedProperty struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	UserID     uint      `gorm:"not null;index:idx_viewed_user_property"`
	PropertyID uint      `gorm:"not null;index:idx_viewed_user_property"`
	ViewedAt   time.Time `gorm:"not null;index"`
}

// TableName overrides the table name for ViewedProperty
func (ViewedProperty) TableName() string {
	return "viewed_properties"
}
