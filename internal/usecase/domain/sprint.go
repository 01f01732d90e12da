// Package domain contains application Usecases orchestrating domain logic by sprint.
package domain

import (
	"context"
	"fmt"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// CreateSprint creates a sprint with optional initial allocations.
// Non-positive allocation capacities are dropped, matching the bulk
// replacement semantics.
func (u *Usecase) CreateSprint(ctx context.Context, sprint entities.Sprint, allocations []entities.AllocationInput) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprint.Name == "" {
		u.log.Errorw("failed to create sprint: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if sprint.StartDate.IsZero() || sprint.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", entities.ErrInvalidArgument)
	}
	if err := validateVelocityFields(sprint.CompletedVelocity, sprint.VelocityCommitment); err != nil {
		return nil, err
	}

	res, err := u.repo.CreateSprint(ctx, sprint, keepPositive(allocations))
	if err != nil {
		return nil, err
	}
	u.log.Infow("sprint created", "sprint_id", res.ID, "capacity", res.Capacity)
	return res, nil
}

// Sprint returns a sprint with its allocations.
func (u *Usecase) Sprint(ctx context.Context, sprintID string) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetSprint(ctx, sprintID)
}

// UpdateSprint applies a partial patch. Velocity fields are rejected on a
// completed sprint; metadata corrections stay possible after completion.
func (u *Usecase) UpdateSprint(ctx context.Context, sprintID string, patch entities.SprintUpdate) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	if err := validateVelocityFields(patch.CompletedVelocity, patch.VelocityCommitment); err != nil {
		return nil, err
	}

	if patch.TouchesVelocity() {
		sprint, err := u.repo.GetSprint(ctx, sprintID)
		if err != nil {
			return nil, err
		}
		if u.sprintCompleted(sprint) {
			u.log.Warnw("velocity update rejected on completed sprint", "sprint_id", sprintID)
			return nil, fmt.Errorf("%w: velocity fields are immutable once the sprint has ended with a recorded result", entities.ErrSprintLocked)
		}
	}

	return u.repo.UpdateSprint(ctx, sprintID, patch)
}

// DeleteSprint removes a sprint together with its allocations.
func (u *Usecase) DeleteSprint(ctx context.Context, sprintID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteSprint(ctx, sprintID)
}

func validateVelocityFields(completed, commitment *int) error {
	if completed != nil && *completed < 0 {
		return fmt.Errorf("%w: completed_velocity must not be negative", entities.ErrInvalidArgument)
	}
	if commitment != nil && *commitment <= 0 {
		return fmt.Errorf("%w: velocity_commitment must be greater than zero", entities.ErrInvalidArgument)
	}
	return nil
}
