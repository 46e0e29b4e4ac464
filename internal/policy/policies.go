package policy

import (
	"context"

	"github.com/ClemRoy/epicEvents/gate"
	"github.com/ClemRoy/epicEvents/internal/models"
)

// Resource type names registered on the gate.
const (
	ResourceClient   = "client"
	ResourceContract = "contract"
	ResourceEvent    = "event"
	ResourceUser     = "user"
)

// NewGate builds the application gate with every CRM policy registered.
func NewGate() *gate.Gate[*Actor] {
	g := gate.NewGate[*Actor]()
	g.Register(ResourceClient, ClientContractPolicy{})
	g.Register(ResourceContract, ClientContractPolicy{})
	g.Register(ResourceEvent, EventPolicy{})
	g.Register(ResourceUser, AdminOnlyPolicy{})
	return g
}

// ClientContractPolicy governs clients and contracts, which share the same
// action rules: commercial users own the sales side of the CRM.
//
// Action precedence, first match wins:
//  1. admin: everything
//  2. read-only: commercial or support
//  3. delete: admin only (already matched by rule 1, so: deny)
//  4. create/update: commercial
//  5. default deny
type ClientContractPolicy struct{}

func (ClientContractPolicy) CanAction(_ context.Context, actor *Actor, action gate.Action) bool {
	switch {
	case actor.Admin:
		return true
	case action.Safe():
		return actor.IsCommercial() || actor.IsSupport()
	case action == gate.ActionDelete:
		return false
	case action == gate.ActionCreate || action == gate.ActionUpdate:
		return actor.IsCommercial()
	default:
		return false
	}
}

// CanObject checks instance ownership. Read-only access to a record is open
// to anyone who passed the action check; mutations require being the record's
// sales contact. A client additionally requires the commercial role, so a
// sales contact demoted out of the group loses write access to their clients.
func (ClientContractPolicy) CanObject(_ context.Context, actor *Actor, action gate.Action, resource any) bool {
	if actor.Admin || action.Safe() {
		return true
	}
	switch obj := resource.(type) {
	case *models.Client:
		return obj.SalesContactID == actor.ID && actor.IsCommercial()
	case *models.Contract:
		return obj.SalesContactID == actor.ID
	default:
		return false
	}
}

// EventPolicy governs events. Commercial users create them (through contract
// linkage), support users run them.
type EventPolicy struct{}

func (EventPolicy) CanAction(_ context.Context, actor *Actor, action gate.Action) bool {
	switch {
	case actor.Admin:
		return true
	case action.Safe():
		return actor.IsCommercial() || actor.IsSupport()
	case action == gate.ActionDelete:
		return false
	case action == gate.ActionCreate:
		return actor.IsCommercial()
	case action == gate.ActionUpdate:
		return actor.IsSupport()
	default:
		return false
	}
}

// CanObject allows mutation only for the event's assigned support contact,
// who must still hold the support role.
func (EventPolicy) CanObject(_ context.Context, actor *Actor, action gate.Action, resource any) bool {
	if actor.Admin || action.Safe() {
		return true
	}
	obj, ok := resource.(*models.Event)
	if !ok {
		return false
	}
	return obj.SupportContactID == actor.ID && actor.IsSupport()
}

// AdminOnlyPolicy locks a resource to management users. Used for user
// provisioning.
type AdminOnlyPolicy struct{}

func (AdminOnlyPolicy) CanAction(_ context.Context, actor *Actor, _ gate.Action) bool {
	return actor.Admin
}

func (AdminOnlyPolicy) CanObject(_ context.Context, actor *Actor, _ gate.Action, _ any) bool {
	return actor.Admin
}
