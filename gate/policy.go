package gate

import "context"

// Policy defines authorization rules for a resource type.
// U is the user/subject type (e.g., uint for userID, *Actor for a resolved
// actor). Implementations answer the two phases separately so that the
// precedence order of each stays auditable in isolation.
type Policy[U any] interface {
	// CanAction returns true if user may ever perform action on this kind
	// of resource, before any particular record is considered.
	CanAction(ctx context.Context, user U, action Action) bool

	// CanObject returns true if user may perform action on this specific
	// resource. Only consulted after CanAction has passed.
	CanObject(ctx context.Context, user U, action Action, resource any) bool
}
