// Package dto defines transport models for the HTTP layer.
package dto

import "time"

// DateLayout is the wire format for calendar dates; no time-of-day is carried.
const DateLayout = "2006-01-02"

// ParseDate parses a wire date into a midnight-anchored calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar day in wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Team is the transport model of a team.
type Team struct {
	TeamID  string       `json:"team_id"`
	Name    string       `json:"name"`
	Active  bool         `json:"active"`
	Members []TeamMember `json:"members"`
}

// TeamMember is the transport model of a team member.
type TeamMember struct {
	MemberID string  `json:"member_id"`
	Name     string  `json:"name"`
	Skill    string  `json:"skill"`
	IsActive bool    `json:"is_active"`
	TeamID   *string `json:"team_id,omitempty"`
}

// Sprint is the transport model of a sprint.
type Sprint struct {
	SprintID           string       `json:"sprint_id"`
	Name               string       `json:"name"`
	StartDate          string       `json:"start_date"`
	EndDate            string       `json:"end_date"`
	Capacity           int          `json:"capacity"`
	ProjectedVelocity  int          `json:"projected_velocity"`
	CompletedVelocity  *int         `json:"completed_velocity,omitempty"`
	VelocityCommitment *int         `json:"velocity_commitment,omitempty"`
	TeamID             *string      `json:"team_id,omitempty"`
	Allocations        []Allocation `json:"allocations"`
}

// Allocation is the transport model of a capacity allocation.
type Allocation struct {
	AllocationID string `json:"allocation_id"`
	SprintID     string `json:"sprint_id"`
	MemberID     string `json:"member_id"`
	Capacity     int    `json:"capacity"`
}

// AllocationInput names a member and a capacity.
type AllocationInput struct {
	MemberID string `json:"member_id"`
	Capacity int    `json:"capacity"`
}

// CreateTeamRequest is the body of POST /api/teams.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// CreateMemberRequest is the body of POST /api/members.
type CreateMemberRequest struct {
	Name   string  `json:"name"`
	Skill  string  `json:"skill"`
	TeamID *string `json:"team_id,omitempty"`
}

// SetMemberActiveRequest is the body of PATCH /api/members/:id/active.
type SetMemberActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// CreateSprintRequest is the body of POST /api/sprints.
type CreateSprintRequest struct {
	Name               string            `json:"name"`
	StartDate          string            `json:"start_date"`
	EndDate            string            `json:"end_date"`
	CompletedVelocity  *int              `json:"completed_velocity,omitempty"`
	VelocityCommitment *int              `json:"velocity_commitment,omitempty"`
	TeamID             *string           `json:"team_id,omitempty"`
	Allocations        []AllocationInput `json:"allocations,omitempty"`
}

// UpdateSprintRequest is the body of PATCH /api/sprints/:id. Absent fields
// are left untouched.
type UpdateSprintRequest struct {
	Name               *string `json:"name,omitempty"`
	StartDate          *string `json:"start_date,omitempty"`
	EndDate            *string `json:"end_date,omitempty"`
	TeamID             *string `json:"team_id,omitempty"`
	CompletedVelocity  *int    `json:"completed_velocity,omitempty"`
	VelocityCommitment *int    `json:"velocity_commitment,omitempty"`
}

// ReplaceAllocationsRequest is the body of PUT /api/sprints/:id/allocations.
type ReplaceAllocationsRequest struct {
	Allocations []AllocationInput `json:"allocations"`
}

// UpsertAllocationRequest is the body of PUT /api/sprints/:id/allocations/:memberId.
type UpsertAllocationRequest struct {
	Capacity int `json:"capacity"`
}

// VelocityProjection is the response of POST /api/sprints/:id/velocity.
type VelocityProjection struct {
	ProjectedVelocity     int     `json:"projected_velocity"`
	AverageCompletionRate float64 `json:"average_completion_rate"`
	SprintsAnalyzed       int     `json:"sprints_analyzed"`
}

// WorkingDaysResponse carries a working-day count.
type WorkingDaysResponse struct {
	WorkingDays int `json:"working_days"`
}

// Error codes returned in ErrorResponse.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeTeamExists      = "TEAM_EXISTS"
	CodeSprintLocked    = "SPRINT_LOCKED"
	CodeInternal        = "INTERNAL"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine code and a human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
