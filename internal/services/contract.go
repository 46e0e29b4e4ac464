// Package services holds the transactional orchestration between the
// workflow rules and the store. Handlers stay thin; anything that must write
// more than one record atomically lives here.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/workflow"
)

type ContractService struct {
	db *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{db: db}
}

// Sign transitions a contract to signed and applies the client side effect
// (potential -> customer) in a single transaction. The client is re-read
// inside the transaction so the read-modify-write of its status cannot lose
// updates to a concurrent request.
//
// Returns the updated contract and client. Invalid transitions (including
// signing twice) fail with a workflow error and write nothing.
func (s *ContractService) Sign(ctx context.Context, contractID uint) (*models.Contract, *models.Client, error) {
	var contract models.Contract
	var client models.Client

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&contract, contractID).Error; err != nil {
			return err
		}
		if err := workflow.ValidateContractTransition(contract.Status, models.ContractStatusSigned); err != nil {
			return err
		}
		if contract.Signed() {
			// Re-signing is a no-op transition; nothing to persist.
			return tx.First(&client, contract.ClientID).Error
		}
		if err := tx.First(&client, contract.ClientID).Error; err != nil {
			return err
		}
		clientChanged := workflow.ApplyContractSigned(&contract, &client)
		if err := tx.Save(&contract).Error; err != nil {
			return err
		}
		if clientChanged {
			if err := tx.Save(&client).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &contract, &client, nil
}
