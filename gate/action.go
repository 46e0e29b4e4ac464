package gate

// Action describes the kind of operation a user wants to perform.
type Action string

const (
	ActionList   Action = "list"
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Safe reports whether the action is read-only. Safe actions never require
// an ownership check at the object level.
func (a Action) Safe() bool {
	return a == ActionList || a == ActionView
}
