package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/workflow"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// Create inserts an event after checking its preconditions inside the same
// transaction: the referenced contract and client must exist (NotFound
// otherwise), the contract must be signed, and the event's client must be the
// contract's client. Any failure rejects the whole creation.
func (s *EventService) Create(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		if err := tx.First(&contract, event.ContractID).Error; err != nil {
			return err
		}
		var client models.Client
		if err := tx.First(&client, event.ClientID).Error; err != nil {
			return err
		}
		if err := workflow.ValidateEventCreation(&client, &contract); err != nil {
			return err
		}
		return tx.Create(event).Error
	})
}
