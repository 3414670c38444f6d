package seeders

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/config"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/auth"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin bootstraps the back-office account from
// ADMIN_EMAIL/ADMIN_PASSWORD. Idempotent: an existing account with
// that email is left alone.
func SeedAdmin(db *gorm.DB) error {
	email, password := config.AdminEmail(), config.AdminPassword()
	if email == "" || password == "" {
		logger.Warn("seed: ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hash,
		Role:     models.RoleAdmin,
		Status:   models.UserActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logger.Info("seed: admin account created", "email", email)
	return nil
}
