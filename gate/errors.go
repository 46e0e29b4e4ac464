package gate

import "errors"

// Sentinel errors returned by Gate.Authorize.
var (
	// ErrUnauthenticated is returned for a zero-value (anonymous) user.
	ErrUnauthenticated = errors.New("gate: unauthenticated")

	// ErrForbidden is returned when an authenticated user is denied by policy.
	ErrForbidden = errors.New("gate: forbidden")

	// ErrNoPolicyDefined is returned when the resource type has no policy.
	ErrNoPolicyDefined = errors.New("gate: no policy defined for resource")
)
