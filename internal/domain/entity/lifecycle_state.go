// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// LifecycleState is the tagged soft-delete state of a record.
// Inactive is terminal: nothing ever transitions a record back to Active.
type LifecycleState bool

const (
	// StateActive marks a record as visible to normal queries.
	StateActive LifecycleState = true

	// StateInactive marks a record as soft-deleted or swept.
	StateInactive LifecycleState = false
)

// Active reports whether the state is StateActive.
func (s LifecycleState) Active() bool {
	return s == StateActive
}

// String implements fmt.Stringer.
func (s LifecycleState) String() string {
	if s == StateActive {
		return "active"
	}

	return "inactive"
}
