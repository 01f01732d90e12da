// Package domain contains application Usecases orchestrating domain logic by allocation.
package domain

import (
	"context"
	"fmt"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// ReplaceAllocations swaps the full allocation set of a sprint and
// re-aggregates its capacity. Entries with non-positive capacity are dropped
// silently, not rejected.
func (u *Usecase) ReplaceAllocations(ctx context.Context, sprintID string, allocations []entities.AllocationInput) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}

	kept := keepPositive(allocations)
	if dropped := len(allocations) - len(kept); dropped > 0 {
		u.log.Infow("dropped non-positive allocations", "sprint_id", sprintID, "dropped", dropped)
	}

	if err := u.repo.ReplaceAllocations(ctx, sprintID, kept); err != nil {
		return nil, err
	}
	if _, err := u.RecomputeCapacity(ctx, sprintID); err != nil {
		return nil, err
	}
	return u.repo.GetSprint(ctx, sprintID)
}

// UpsertAllocation creates or overwrites the allocation of a member on a
// sprint. Unlike bulk replacement a non-positive capacity is rejected here.
func (u *Usecase) UpsertAllocation(ctx context.Context, sprintID, memberID string, capacity int) (*entities.Allocation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" || memberID == "" {
		return nil, fmt.Errorf("%w: sprint_id and member_id are required", entities.ErrInvalidArgument)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be greater than zero", entities.ErrInvalidArgument)
	}

	allocation, err := u.repo.UpsertAllocation(ctx, sprintID, memberID, capacity)
	if err != nil {
		return nil, err
	}
	if _, err := u.RecomputeCapacity(ctx, sprintID); err != nil {
		return nil, err
	}
	return allocation, nil
}

// RemoveAllocation deletes a member's allocation on a sprint; removing an
// absent allocation is a no-op.
func (u *Usecase) RemoveAllocation(ctx context.Context, sprintID, memberID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" || memberID == "" {
		return fmt.Errorf("%w: sprint_id and member_id are required", entities.ErrInvalidArgument)
	}

	if err := u.repo.RemoveAllocation(ctx, sprintID, memberID); err != nil {
		return err
	}
	_, err := u.RecomputeCapacity(ctx, sprintID)
	return err
}

// RecomputeCapacity sums a sprint's allocations and persists the total.
func (u *Usecase) RecomputeCapacity(ctx context.Context, sprintID string) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return 0, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}

	total, err := u.aggregateCapacity(ctx, sprintID)
	if err != nil {
		return 0, err
	}
	if err := u.repo.SetSprintCapacity(ctx, sprintID, total); err != nil {
		return 0, err
	}
	return total, nil
}

func (u *Usecase) aggregateCapacity(ctx context.Context, sprintID string) (int, error) {
	allocations, err := u.repo.ListAllocations(ctx, sprintID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, a := range allocations {
		total += a.Capacity
	}
	return total, nil
}

func keepPositive(allocations []entities.AllocationInput) []entities.AllocationInput {
	kept := make([]entities.AllocationInput, 0, len(allocations))
	for _, a := range allocations {
		if a.Capacity > 0 {
			kept = append(kept, a)
		}
	}
	return kept
}
