package workflow_test

import (
	"errors"
	"testing"

	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/workflow"
)

func TestValidateClientTransition(t *testing.T) {
	if err := workflow.ValidateClientTransition(models.ClientStatusPotential, models.ClientStatusCustomer); err != nil {
		t.Errorf("potential -> customer should be valid, got %v", err)
	}
	if err := workflow.ValidateClientTransition(models.ClientStatusCustomer, models.ClientStatusCustomer); err != nil {
		t.Errorf("no-op transition should be valid, got %v", err)
	}
	err := workflow.ValidateClientTransition(models.ClientStatusCustomer, models.ClientStatusPotential)
	if !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Errorf("customer -> potential should be rejected, got %v", err)
	}
}

func TestValidateContractTransition(t *testing.T) {
	if err := workflow.ValidateContractTransition(models.ContractStatusNegotiation, models.ContractStatusSigned); err != nil {
		t.Errorf("negotiation -> signed should be valid, got %v", err)
	}
	if err := workflow.ValidateContractTransition(models.ContractStatusSigned, models.ContractStatusSigned); err != nil {
		t.Errorf("no-op transition should be valid, got %v", err)
	}
	// There is no unsign path.
	err := workflow.ValidateContractTransition(models.ContractStatusSigned, models.ContractStatusNegotiation)
	if !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Errorf("signed -> negotiation should be rejected, got %v", err)
	}
	if !errors.Is(err, workflow.ErrValidation) {
		t.Error("transition errors should match ErrValidation")
	}
}

func TestValidateEventTransition(t *testing.T) {
	valid := [][2]models.EventStatus{
		{models.EventStatusPreparation, models.EventStatusOngoing},
		{models.EventStatusOngoing, models.EventStatusFinished},
		{models.EventStatusPreparation, models.EventStatusFinished},
		{models.EventStatusOngoing, models.EventStatusOngoing},
	}
	for _, tc := range valid {
		if err := workflow.ValidateEventTransition(tc[0], tc[1]); err != nil {
			t.Errorf("%s -> %s should be valid, got %v", tc[0], tc[1], err)
		}
	}
	invalid := [][2]models.EventStatus{
		{models.EventStatusOngoing, models.EventStatusPreparation},
		{models.EventStatusFinished, models.EventStatusOngoing},
		{models.EventStatusFinished, models.EventStatusPreparation},
		{models.EventStatusPreparation, models.EventStatus("cancelled")},
	}
	for _, tc := range invalid {
		if err := workflow.ValidateEventTransition(tc[0], tc[1]); !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Errorf("%s -> %s should be rejected, got %v", tc[0], tc[1], err)
		}
	}
}

func TestValidateEventCreation(t *testing.T) {
	client := &models.Client{ID: 1}
	signed := &models.Contract{ID: 2, ClientID: 1, Status: models.ContractStatusSigned}
	unsigned := &models.Contract{ID: 3, ClientID: 1, Status: models.ContractStatusNegotiation}
	otherClients := &models.Contract{ID: 4, ClientID: 9, Status: models.ContractStatusSigned}

	if err := workflow.ValidateEventCreation(client, signed); err != nil {
		t.Errorf("signed contract with matching client should pass, got %v", err)
	}
	if err := workflow.ValidateEventCreation(client, unsigned); !errors.Is(err, workflow.ErrContractNotSigned) {
		t.Errorf("unsigned contract should fail, got %v", err)
	}
	if err := workflow.ValidateEventCreation(client, otherClients); !errors.Is(err, workflow.ErrClientMismatch) {
		t.Errorf("client mismatch should fail, got %v", err)
	}
}

func TestApplyContractSigned(t *testing.T) {
	contract := &models.Contract{Status: models.ContractStatusNegotiation}
	client := &models.Client{Status: models.ClientStatusPotential}

	if changed := workflow.ApplyContractSigned(contract, client); !changed {
		t.Error("signing the first contract should change the client")
	}
	if contract.Status != models.ContractStatusSigned {
		t.Errorf("contract should be signed, got %s", contract.Status)
	}
	if client.Status != models.ClientStatusCustomer {
		t.Errorf("client should become customer, got %s", client.Status)
	}

	// Signing another contract for the same client is idempotent on the client.
	second := &models.Contract{Status: models.ContractStatusNegotiation}
	if changed := workflow.ApplyContractSigned(second, client); changed {
		t.Error("signing for an existing customer should not change the client")
	}
	if client.Status != models.ClientStatusCustomer {
		t.Errorf("client should stay customer, got %s", client.Status)
	}
}
