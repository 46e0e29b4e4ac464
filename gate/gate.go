// Package gate provides a Laravel-inspired Gate/Policy authorization system.
// The Gate is a central registry of policies; each Policy defines authorization
// rules for a specific resource type. This package has no dependencies on
// domain models and can be reused across different web applications.
//
// Authorization runs in two phases. The action-level phase answers "can this
// kind of subject ever perform this kind of action"; the object-level phase
// answers "may this subject touch this particular record". Both must pass for
// a request against a specific resource to succeed.
//
// The package uses generics to allow any user/subject type:
//   - Gate[uint] for simple user ID based auth
//   - Gate[*Actor] for resolved-actor based auth
package gate

import "context"

// Gate is the central authorization checkpoint.
// U is the user/subject type (must be comparable for zero-value check).
// Register policies by resource type name, then call Authorize or Can.
type Gate[U comparable] struct {
	policies map[string]Policy[U]
}

// NewGate creates an empty Gate ready to register policies.
func NewGate[U comparable]() *Gate[U] {
	return &Gate[U]{policies: make(map[string]Policy[U])}
}

// Register adds a policy for a given resource type (e.g., "client").
// Overwrites any existing policy for that type.
func (g *Gate[U]) Register(resourceType string, p Policy[U]) {
	g.policies[resourceType] = p
}

// Authorize checks authorization and returns an error if denied.
//
// A zero-value user is treated as anonymous and rejected with
// ErrUnauthenticated before any policy runs. An unregistered resource type
// yields ErrNoPolicyDefined: unknown resources are never authorized.
// Otherwise the action-level check runs first; if resource is non-nil the
// object-level check runs as well. Either denial yields ErrForbidden.
func (g *Gate[U]) Authorize(ctx context.Context, user U, action Action, resourceType string, resource any) error {
	var zero U
	if user == zero {
		return ErrUnauthenticated
	}
	p, ok := g.policies[resourceType]
	if !ok {
		return ErrNoPolicyDefined
	}
	if !p.CanAction(ctx, user, action) {
		return ErrForbidden
	}
	if resource != nil && !p.CanObject(ctx, user, action, resource) {
		return ErrForbidden
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
// Returns true only if Authorize returns nil.
func (g *Gate[U]) Can(ctx context.Context, user U, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, user, action, resourceType, resource) == nil
}

// CanAction checks only the action-level rule, without an object check.
// Useful before a specific resource is loaded (list and create requests).
func (g *Gate[U]) CanAction(ctx context.Context, user U, action Action, resourceType string) bool {
	var zero U
	if user == zero {
		return false
	}
	p, ok := g.policies[resourceType]
	if !ok {
		return false
	}
	return p.CanAction(ctx, user, action)
}
