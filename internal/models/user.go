package models

import "time"

// User is a staff member of the CRM. Role membership (commercial, support)
// comes from the Groups relation; IsAdmin marks management users that bypass
// ownership rules entirely.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"size:60;uniqueIndex;not null" json:"email"`
	FirstName    string `gorm:"size:30;not null" json:"first_name"`
	LastName     string `gorm:"size:30;not null" json:"last_name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	Groups []Group `gorm:"many2many:user_groups" json:"groups,omitempty"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// InGroup reports whether the user belongs to the named group. Only valid
// when Groups has been preloaded.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}
