package db

import (
	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/auth"
	"github.com/ClemRoy/epicEvents/internal/models"
)

// Seed initializes the database with required seed data.
// Should be called after Migrate.
func Seed(db *gorm.DB) error {
	return SeedGroups(db)
}

// SeedGroups creates the role groups the policies depend on. Uses
// FirstOrCreate so re-running is harmless.
func SeedGroups(db *gorm.DB) error {
	for _, name := range []string{models.GroupCommercial, models.GroupSupport} {
		group := models.Group{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin provisions an initial management user if the email is not taken.
// Intended for first boot; later user creation goes through the admin-only
// provisioning endpoint.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        email,
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      true,
	}
	return db.Create(&admin).Error
}
