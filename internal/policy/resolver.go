package policy

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/models"
)

// Resolver turns a user ID into an Actor by loading the user and their group
// memberships from the store. The auth middleware calls this once per request
// and stores the result in the request context; nothing else should resolve
// actors.
type Resolver struct {
	db *gorm.DB
}

// NewResolver creates a database-backed actor resolver.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve loads the user and their groups in one query. Inactive or missing
// users resolve to nil, which downstream checks treat as anonymous.
func (r *Resolver) Resolve(ctx context.Context, userID uint) (*Actor, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Groups").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, nil
	}
	return NewActor(&user), nil
}
