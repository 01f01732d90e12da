// Package entities contains core business entities.
package entities

import "time"

// Sprint is a fixed time-boxed work period. Capacity and ProjectedVelocity
// are derived values; they go stale between allocation changes and the next
// aggregation or projection call.
//
// CompletedVelocity is nullable on purpose: nil means the sprint was never
// closed out, while an explicit zero means it closed with nothing delivered.
// Only a recorded value can lock the sprint.
type Sprint struct {
	ID                 string
	Name               string
	StartDate          time.Time
	EndDate            time.Time
	Capacity           int
	ProjectedVelocity  int
	CompletedVelocity  *int
	VelocityCommitment *int
	TeamID             *string
	Allocations        []Allocation
}

// SprintUpdate is a partial patch for a sprint. Nil fields are left untouched.
type SprintUpdate struct {
	Name               *string
	StartDate          *time.Time
	EndDate            *time.Time
	TeamID             *string
	CompletedVelocity  *int
	VelocityCommitment *int
}

// TouchesVelocity reports whether the patch mutates lock-protected fields.
func (u SprintUpdate) TouchesVelocity() bool {
	return u.CompletedVelocity != nil || u.VelocityCommitment != nil
}

// VelocityProjection is the result of a velocity recomputation.
type VelocityProjection struct {
	ProjectedVelocity     int     `json:"projected_velocity"`
	AverageCompletionRate float64 `json:"average_completion_rate"`
	SprintsAnalyzed       int     `json:"sprints_analyzed"`
}
