package policy_test

import (
	"context"
	"testing"

	"github.com/ClemRoy/epicEvents/gate"
	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/policy"
)

func commercialActor(id uint) *policy.Actor {
	return policy.NewActor(&models.User{
		ID:     id,
		Groups: []models.Group{{Name: models.GroupCommercial}},
	})
}

func supportActor(id uint) *policy.Actor {
	return policy.NewActor(&models.User{
		ID:     id,
		Groups: []models.Group{{Name: models.GroupSupport}},
	})
}

func adminActor(id uint) *policy.Actor {
	return policy.NewActor(&models.User{ID: id, IsAdmin: true})
}

func rolelessActor(id uint) *policy.Actor {
	return policy.NewActor(&models.User{ID: id})
}

func TestActorRoles(t *testing.T) {
	if !commercialActor(1).IsCommercial() {
		t.Error("commercial group membership should grant the commercial role")
	}
	if commercialActor(1).IsSupport() {
		t.Error("commercial actor should not hold the support role")
	}
	a := rolelessActor(1)
	if a.IsCommercial() || a.IsSupport() {
		t.Error("actor in no group should hold no role")
	}
}

func TestClientCreate_ByRole(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()

	if !g.Can(ctx, commercialActor(1), gate.ActionCreate, policy.ResourceClient, nil) {
		t.Error("commercial actor should create clients")
	}
	if g.Can(ctx, supportActor(2), gate.ActionCreate, policy.ResourceClient, nil) {
		t.Error("support actor should not create clients")
	}
	if g.Can(ctx, rolelessActor(3), gate.ActionCreate, policy.ResourceClient, nil) {
		t.Error("roleless actor should not create clients")
	}
	if !g.Can(ctx, adminActor(4), gate.ActionCreate, policy.ResourceClient, nil) {
		t.Error("admin should create clients")
	}
}

func TestDelete_AdminOnly(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()

	for _, resource := range []string{policy.ResourceClient, policy.ResourceContract, policy.ResourceEvent} {
		if !g.Can(ctx, adminActor(1), gate.ActionDelete, resource, nil) {
			t.Errorf("admin should delete %s", resource)
		}
		if g.Can(ctx, commercialActor(2), gate.ActionDelete, resource, nil) {
			t.Errorf("commercial actor should not delete %s", resource)
		}
		if g.Can(ctx, supportActor(3), gate.ActionDelete, resource, nil) {
			t.Errorf("support actor should not delete %s", resource)
		}
	}
}

func TestListRead_RequiresRole(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()

	for _, resource := range []string{policy.ResourceClient, policy.ResourceContract, policy.ResourceEvent} {
		if !g.Can(ctx, commercialActor(1), gate.ActionList, resource, nil) {
			t.Errorf("commercial actor should list %s", resource)
		}
		if !g.Can(ctx, supportActor(2), gate.ActionList, resource, nil) {
			t.Errorf("support actor should list %s", resource)
		}
		if g.Can(ctx, rolelessActor(3), gate.ActionList, resource, nil) {
			t.Errorf("roleless actor should not list %s", resource)
		}
		if err := g.Authorize(ctx, nil, gate.ActionList, resource, nil); err != gate.ErrUnauthenticated {
			t.Errorf("anonymous list on %s: expected ErrUnauthenticated, got %v", resource, err)
		}
	}
}

func TestClientUpdate_OwnershipRequired(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()
	client := &models.Client{ID: 10, SalesContactID: 1}

	// Owner passes both phases.
	if err := g.Authorize(ctx, commercialActor(1), gate.ActionUpdate, policy.ResourceClient, client); err != nil {
		t.Errorf("owning sales contact should update their client, got %v", err)
	}
	// Another commercial passes the action phase but fails on the object.
	if err := g.Authorize(ctx, commercialActor(2), gate.ActionUpdate, policy.ResourceClient, client); err != gate.ErrForbidden {
		t.Errorf("non-owning commercial actor: expected ErrForbidden, got %v", err)
	}
	// Ownership without the commercial role is not enough for a client.
	demoted := policy.NewActor(&models.User{ID: 1})
	if err := g.Authorize(ctx, demoted, gate.ActionUpdate, policy.ResourceClient, client); err != gate.ErrForbidden {
		t.Errorf("demoted sales contact: expected ErrForbidden, got %v", err)
	}
	// Admin bypasses ownership.
	if err := g.Authorize(ctx, adminActor(3), gate.ActionUpdate, policy.ResourceClient, client); err != nil {
		t.Errorf("admin should update any client, got %v", err)
	}
}

func TestClientRead_IgnoresOwnership(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()
	client := &models.Client{ID: 10, SalesContactID: 1}

	if err := g.Authorize(ctx, commercialActor(2), gate.ActionView, policy.ResourceClient, client); err != nil {
		t.Errorf("read access should not require ownership, got %v", err)
	}
	if err := g.Authorize(ctx, supportActor(3), gate.ActionView, policy.ResourceClient, client); err != nil {
		t.Errorf("support actor should read any client, got %v", err)
	}
}

func TestContractUpdate_SalesContactOnly(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()
	contract := &models.Contract{ID: 20, SalesContactID: 1}

	if err := g.Authorize(ctx, commercialActor(1), gate.ActionUpdate, policy.ResourceContract, contract); err != nil {
		t.Errorf("owning sales contact should update their contract, got %v", err)
	}
	if err := g.Authorize(ctx, commercialActor(2), gate.ActionUpdate, policy.ResourceContract, contract); err != gate.ErrForbidden {
		t.Errorf("non-owning commercial actor: expected ErrForbidden, got %v", err)
	}
}

func TestEventCreate_CommercialOnly(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()

	if !g.Can(ctx, commercialActor(1), gate.ActionCreate, policy.ResourceEvent, nil) {
		t.Error("commercial actor should create events")
	}
	if g.Can(ctx, supportActor(2), gate.ActionCreate, policy.ResourceEvent, nil) {
		t.Error("support actor should not create events")
	}
}

func TestEventUpdate_SupportContactOnly(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()
	event := &models.Event{ID: 30, SupportContactID: 1}

	if err := g.Authorize(ctx, supportActor(1), gate.ActionUpdate, policy.ResourceEvent, event); err != nil {
		t.Errorf("assigned support contact should update their event, got %v", err)
	}
	if err := g.Authorize(ctx, supportActor(2), gate.ActionUpdate, policy.ResourceEvent, event); err != gate.ErrForbidden {
		t.Errorf("unassigned support actor: expected ErrForbidden, got %v", err)
	}
	if err := g.Authorize(ctx, commercialActor(3), gate.ActionUpdate, policy.ResourceEvent, event); err != gate.ErrForbidden {
		t.Errorf("commercial actor: expected ErrForbidden on event update, got %v", err)
	}
}

func TestObjectCheck_UnknownTypeDenied(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()

	// A contract handed to the event policy (or any foreign type) is denied.
	err := g.Authorize(ctx, supportActor(1), gate.ActionUpdate, policy.ResourceEvent, &models.Contract{ID: 1})
	if err != gate.ErrForbidden {
		t.Errorf("foreign object type: expected ErrForbidden, got %v", err)
	}
}

func TestUserProvisioning_AdminOnly(t *testing.T) {
	g := policy.NewGate()
	ctx := context.Background()

	if !g.Can(ctx, adminActor(1), gate.ActionCreate, policy.ResourceUser, nil) {
		t.Error("admin should provision users")
	}
	if g.Can(ctx, commercialActor(2), gate.ActionCreate, policy.ResourceUser, nil) {
		t.Error("commercial actor should not provision users")
	}
}
