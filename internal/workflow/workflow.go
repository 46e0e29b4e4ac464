// Package workflow enforces the cross-entity state rules of the CRM: the
// one-way status machines of clients, contracts and events, the preconditions
// for creating an event, and the contract-sign side effect that graduates a
// client from potential to customer.
//
// Everything here is pure: functions validate or transform records in memory
// and report violations as errors wrapping ErrValidation. Persisting the
// results atomically is the services layer's job.
package workflow

import (
	"errors"
	"fmt"

	"github.com/ClemRoy/epicEvents/internal/models"
)

// ErrValidation is the root of every workflow rejection. Handlers match on it
// to turn state-machine violations into 400 responses.
var ErrValidation = errors.New("workflow: validation failed")

var (
	// ErrInvalidTransition rejects any status move outside the machine,
	// including signed -> negotiation: a contract cannot be unsigned.
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", ErrValidation)

	// ErrContractNotSigned rejects event creation against an unsigned contract.
	ErrContractNotSigned = fmt.Errorf("%w: contract is not signed", ErrValidation)

	// ErrClientMismatch rejects an event whose client is not the contract's.
	ErrClientMismatch = fmt.Errorf("%w: event client does not match contract client", ErrValidation)
)

// ValidateClientTransition allows staying put or moving potential -> customer.
// Customer is terminal.
func ValidateClientTransition(from, to models.ClientStatus) error {
	if from == to {
		return nil
	}
	if from == models.ClientStatusPotential && to == models.ClientStatusCustomer {
		return nil
	}
	return fmt.Errorf("%w: client %s -> %s", ErrInvalidTransition, from, to)
}

// ValidateContractTransition allows staying put or moving
// negotiation -> signed. Signed is terminal.
func ValidateContractTransition(from, to models.ContractStatus) error {
	if from == to {
		return nil
	}
	if from == models.ContractStatusNegotiation && to == models.ContractStatusSigned {
		return nil
	}
	return fmt.Errorf("%w: contract %s -> %s", ErrInvalidTransition, from, to)
}

// eventStatusRank orders event statuses; transitions may only move forward.
var eventStatusRank = map[models.EventStatus]int{
	models.EventStatusPreparation: 0,
	models.EventStatusOngoing:     1,
	models.EventStatusFinished:    2,
}

// ValidateEventTransition allows staying put or any forward move in
// preparation -> ongoing -> finished.
func ValidateEventTransition(from, to models.EventStatus) error {
	fromRank, okFrom := eventStatusRank[from]
	toRank, okTo := eventStatusRank[to]
	if !okFrom || !okTo || toRank < fromRank {
		return fmt.Errorf("%w: event %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// ValidateEventCreation checks the preconditions for attaching an event to a
// contract: the contract must be signed and the event's client must be the
// contract's client. Both are checked together before anything is written, so
// a failed creation leaves no partial state.
func ValidateEventCreation(client *models.Client, contract *models.Contract) error {
	if !contract.Signed() {
		return ErrContractNotSigned
	}
	if contract.ClientID != client.ID {
		return ErrClientMismatch
	}
	return nil
}

// ApplyContractSigned moves the contract to signed and applies the side
// effect on its client: a potential client becomes a customer when their
// first contract is signed. Returns whether the client record changed, so
// callers only persist it when needed. Signing a contract for an existing
// customer is idempotent on the client.
func ApplyContractSigned(contract *models.Contract, client *models.Client) bool {
	contract.Status = models.ContractStatusSigned
	if client.Status == models.ClientStatusPotential {
		client.Status = models.ClientStatusCustomer
		return true
	}
	return false
}
