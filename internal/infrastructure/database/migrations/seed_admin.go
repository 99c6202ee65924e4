package migrations

import (
	"errors"
	"fmt"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
	"gorm.io/gorm"
)

// SeedAdmin creates the administrator account unless a user with the same
// username already exists. It reports whether a row was inserted.
func SeedAdmin(db *gorm.DB, username, email, password string) (bool, error) {
	var existing entities.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		logger.Infof("admin user %q already exists", username)
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return false, err
	}

	logger.Infof("admin user %q created", username)
	return true, nil
}
