package models

import (
	"time"
)

// User represents a registered account. The email is stored lowercased;
// the password is stored as an HMAC-SHA512 digest with the per-user HMAC
// key persisted as the salt.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash []byte `gorm:"not null"`
	PasswordSalt []byte `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
