// Package policy holds the CRM's authorization rules: the per-request Actor
// (a user with their role set resolved once), and the gate policies encoding
// who may do what to clients, contracts and events.
package policy

import "github.com/ClemRoy/epicEvents/internal/models"

// Actor is a request-scoped view of a user with roles resolved up front.
// Group membership is read-only for the duration of a request, so it is
// looked up exactly once (by Resolver) and carried through call contexts
// instead of being re-derived at every check. Actors must not be cached
// across requests: membership may change between them.
type Actor struct {
	ID    uint
	Admin bool
	roles map[string]bool
}

// NewActor builds an actor from a user record with its Groups preloaded.
func NewActor(u *models.User) *Actor {
	a := &Actor{ID: u.ID, Admin: u.IsAdmin, roles: make(map[string]bool, len(u.Groups))}
	for _, g := range u.Groups {
		a.roles[g.Name] = true
	}
	return a
}

// HasRole reports whether the actor holds the named role. A user in no group
// holds no role.
func (a *Actor) HasRole(name string) bool {
	return a.roles[name]
}

// IsCommercial reports membership in the commercial group.
func (a *Actor) IsCommercial() bool {
	return a.HasRole(models.GroupCommercial)
}

// IsSupport reports membership in the support group.
func (a *Actor) IsSupport() bool {
	return a.HasRole(models.GroupSupport)
}
