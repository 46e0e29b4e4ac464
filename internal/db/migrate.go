package db

import (
	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/models"
)

// Migrate runs AutoMigrate for all models.
// Call this at application startup or as part of a migration step.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Auth & authorization
		&models.User{},
		&models.Group{},
		// Business entities
		&models.Client{},
		&models.Contract{},
		&models.Event{},
	)
}
