package services

import (
	"errors"
	"strings"

	"github.com/openlistings/realestate-api/internal/auth"
	"github.com/openlistings/realestate-api/internal/models"
	"gorm.io/gorm"
)

// RegisterUser creates an account for the given credentials. The email is
// lowercased before the uniqueness check so duplicates cannot differ only
// by case. Returns ErrConflict when the email is already taken; a
// concurrent registration that loses the race hits the unique index and
// is reported as ErrConflict too.
func RegisterUser(db *gorm.DB, email, password string) (*models.User, error) {
	email = strings.ToLower(email)

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}

	hash, salt, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	if err := db.Create(&user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return &user, nil
}

// AuthenticateUser verifies the credentials and returns the account.
// Unknown email and wrong password both yield ErrInvalidCredentials; the
// caller cannot tell which check failed.
func AuthenticateUser(db *gorm.DB, email, password string) (*models.User, error) {
	email = strings.ToLower(email)

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
