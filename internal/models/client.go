package models

import "time"

// ClientStatus tracks where a client sits in the sales funnel.
type ClientStatus string

const (
	ClientStatusPotential ClientStatus = "potential"
	ClientStatusCustomer  ClientStatus = "customer"
)

// Client is a company contact managed by a commercial user. Status moves
// potential -> customer exactly once, as a side effect of the client's first
// contract being signed; it is never set directly by an update payload.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName   string       `gorm:"size:25;not null" json:"first_name"`
	LastName    string       `gorm:"size:25;not null" json:"last_name"`
	CompanyName string       `gorm:"size:255;not null" json:"company_name"`
	Email       string       `gorm:"size:60;uniqueIndex;not null" json:"email"`
	Mobile      string       `gorm:"size:20" json:"mobile,omitempty"`
	Phone       string       `gorm:"size:20" json:"phone,omitempty"`
	Status      ClientStatus `gorm:"size:20;default:potential" json:"status"`

	// SalesContactID is the owning commercial user.
	SalesContactID uint `gorm:"index;not null" json:"sales_contact_id"`
	SalesContact   User `gorm:"foreignKey:SalesContactID" json:"-"`

	Contracts []Contract `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"contracts,omitempty"`
}

// FullName returns the client's full name.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
