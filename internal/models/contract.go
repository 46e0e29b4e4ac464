package models

import "time"

// ContractStatus tracks the contract lifecycle.
type ContractStatus string

const (
	ContractStatusNegotiation ContractStatus = "negotiation"
	ContractStatusSigned      ContractStatus = "signed"
)

// Contract belongs to exactly one Client and is owned by a commercial user.
// Status moves negotiation -> signed one way; there is no unsign path.
type Contract struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"foreignKey:ClientID" json:"-"`

	// SalesContactID is the owning commercial user.
	SalesContactID uint `gorm:"index;not null" json:"sales_contact_id"`
	SalesContact   User `gorm:"foreignKey:SalesContactID" json:"-"`

	Status         ContractStatus `gorm:"size:20;default:negotiation" json:"status"`
	AmountDue      float64        `gorm:"not null" json:"amount_due"`
	PaymentDueDate time.Time      `json:"payment_due_date"`

	Events []Event `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
}

// Signed reports whether the contract has reached the signed status.
func (c *Contract) Signed() bool {
	return c.Status == ContractStatusSigned
}
