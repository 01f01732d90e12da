package usecase

import (
	"context"
	"time"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, teamID string) (*entities.Team, error)
	DeactivateTeam(ctx context.Context, teamID string) error
}

// MemberUsecaseInterface abstracts team-member operations.
type MemberUsecaseInterface interface {
	CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error)
	Member(ctx context.Context, memberID string) (*entities.TeamMember, error)
	SetActiveMember(ctx context.Context, memberID string, isActive bool) (*entities.TeamMember, error)
}

// SprintUsecaseInterface abstracts sprint CRUD operations.
type SprintUsecaseInterface interface {
	CreateSprint(ctx context.Context, sprint entities.Sprint, allocations []entities.AllocationInput) (*entities.Sprint, error)
	Sprint(ctx context.Context, sprintID string) (*entities.Sprint, error)
	UpdateSprint(ctx context.Context, sprintID string, patch entities.SprintUpdate) (*entities.Sprint, error)
	DeleteSprint(ctx context.Context, sprintID string) error
}

// CapacityUsecaseInterface abstracts allocation and capacity operations.
type CapacityUsecaseInterface interface {
	ReplaceAllocations(ctx context.Context, sprintID string, allocations []entities.AllocationInput) (*entities.Sprint, error)
	UpsertAllocation(ctx context.Context, sprintID, memberID string, capacity int) (*entities.Allocation, error)
	RemoveAllocation(ctx context.Context, sprintID, memberID string) error
	RecomputeCapacity(ctx context.Context, sprintID string) (int, error)
}

// VelocityUsecaseInterface abstracts projection and calendar operations.
type VelocityUsecaseInterface interface {
	ProjectVelocity(ctx context.Context, sprintID string) (entities.VelocityProjection, error)
	WorkingDays(start, end time.Time) int
	SprintWorkingDays(ctx context.Context, sprintID string) (int, error)
}
