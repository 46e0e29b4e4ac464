package models

import "time"

// EventStatus tracks event progress. Transitions are forward-only.
type EventStatus string

const (
	EventStatusPreparation EventStatus = "preparation"
	EventStatusOngoing     EventStatus = "ongoing"
	EventStatusFinished    EventStatus = "finished"
)

// Event is a service engagement backed by a signed Contract. ClientID is
// stored redundantly for query convenience and must always equal the
// contract's ClientID; creation enforces this.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ContractID uint     `gorm:"index;not null" json:"contract_id"`
	Contract   Contract `gorm:"foreignKey:ContractID" json:"-"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"foreignKey:ClientID" json:"-"`

	// SupportContactID is the support user assigned to run the event.
	SupportContactID uint `gorm:"index;not null" json:"support_contact_id"`
	SupportContact   User `gorm:"foreignKey:SupportContactID" json:"-"`

	Status        EventStatus `gorm:"size:20;default:preparation" json:"status"`
	AttendeeCount int         `gorm:"not null" json:"attendee_count"`
	EventDate     time.Time   `json:"event_date"`
	Notes         string      `gorm:"size:500" json:"notes,omitempty"`
}
