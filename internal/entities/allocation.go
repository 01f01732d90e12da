// Package entities contains core business entities.
package entities

// Allocation is the capacity, in working days, a member contributes to a
// sprint. At most one allocation exists per (sprint, member) pair.
type Allocation struct {
	ID       string
	SprintID string
	MemberID string
	Capacity int
}

// AllocationInput names a member and capacity for bulk replacement.
type AllocationInput struct {
	MemberID string
	Capacity int
}
