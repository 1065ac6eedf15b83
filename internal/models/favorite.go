package models

import (
	"time"
)

// Favorite is the user-to-property bookmark association. The composite
// primary key is the uniqueness guarantee for the (user, property) pair.
type Favorite struct {
	UserID     uint `gorm:"primaryKey;autoIncrement:false"`
	PropertyID uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time
}

// TableName overrides the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}
