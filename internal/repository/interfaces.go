// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
	DeactivateTeam(ctx context.Context, teamID string) error
}

// MemberInterface exposes team-member operations.
type MemberInterface interface {
	CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	GetMember(ctx context.Context, memberID string) (*entities.TeamMember, error)
	SetMemberActive(ctx context.Context, memberID string, isActive bool) (*entities.TeamMember, error)
}

// SprintInterface exposes sprint CRUD and history queries.
type SprintInterface interface {
	CreateSprint(ctx context.Context, sprint entities.Sprint, allocations []entities.AllocationInput) (*entities.Sprint, error)
	GetSprint(ctx context.Context, sprintID string) (*entities.Sprint, error)
	UpdateSprint(ctx context.Context, sprintID string, patch entities.SprintUpdate) (*entities.Sprint, error)
	DeleteSprint(ctx context.Context, sprintID string) error
	// RecentCompletedSprints returns up to limit sprints with a recorded
	// completed velocity above zero, newest start date first, scoped to a
	// team when teamID is non-nil.
	RecentCompletedSprints(ctx context.Context, teamID *string, limit int) ([]entities.Sprint, error)
	SaveSprintVelocity(ctx context.Context, sprintID string, capacity, projectedVelocity int) error
}

// AllocationInterface exposes capacity allocation operations.
type AllocationInterface interface {
	ListAllocations(ctx context.Context, sprintID string) ([]entities.Allocation, error)
	ReplaceAllocations(ctx context.Context, sprintID string, allocations []entities.AllocationInput) error
	UpsertAllocation(ctx context.Context, sprintID, memberID string, capacity int) (*entities.Allocation, error)
	RemoveAllocation(ctx context.Context, sprintID, memberID string) error
	SetSprintCapacity(ctx context.Context, sprintID string, capacity int) error
}
