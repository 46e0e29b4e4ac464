package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/auth"
	"github.com/ClemRoy/epicEvents/internal/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Provision creates a staff user with a hashed password and attaches the
// named groups. Group names must already exist (they are seeded); a typo
// fails the whole creation rather than silently provisioning a roleless user.
func (s *UserService) Provision(ctx context.Context, user *models.User, password string, groupNames []string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range groupNames {
			var group models.Group
			if err := tx.Where("name = ?", name).First(&group).Error; err != nil {
				return fmt.Errorf("group %q: %w", name, err)
			}
			user.Groups = append(user.Groups, group)
		}
		return tx.Create(user).Error
	})
}
