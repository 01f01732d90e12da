// Package domain contains application Usecases orchestrating domain logic by velocity.
package domain

import (
	"context"
	"fmt"
	"math"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

const (
	// velocityHistoryWindow bounds the influence of stale data on projections.
	velocityHistoryWindow = 6
	// fallbackCompletionRate applies when a team has no completed history.
	fallbackCompletionRate = 0.8
)

// ProjectVelocity recomputes a sprint's capacity from its current
// allocations, averages the completion rate of the team's recent completed
// sprints and persists the rounded projection. Rejected on a completed sprint.
func (u *Usecase) ProjectVelocity(ctx context.Context, sprintID string) (entities.VelocityProjection, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	var res entities.VelocityProjection

	if sprintID == "" {
		return res, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}

	sprint, err := u.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return res, err
	}
	if u.sprintCompleted(sprint) {
		u.log.Warnw("projection rejected on completed sprint", "sprint_id", sprintID)
		return res, fmt.Errorf("%w: cannot recompute projected velocity after the sprint has ended with a recorded result", entities.ErrSprintLocked)
	}

	capacity, err := u.aggregateCapacity(ctx, sprintID)
	if err != nil {
		return res, err
	}

	history, err := u.repo.RecentCompletedSprints(ctx, sprint.TeamID, velocityHistoryWindow)
	if err != nil {
		return res, err
	}

	rate := fallbackCompletionRate
	if len(history) > 0 {
		sum := 0.0
		for _, h := range history {
			// A sprint with zero recorded capacity or no recorded velocity
			// contributes a rate of 0 but still counts toward the analyzed
			// window.
			if h.Capacity > 0 && h.CompletedVelocity != nil {
				sum += float64(*h.CompletedVelocity) / float64(h.Capacity)
			}
		}
		rate = sum / float64(len(history))
	}

	res = entities.VelocityProjection{
		ProjectedVelocity:     int(math.Round(float64(capacity) * rate)),
		AverageCompletionRate: rate,
		SprintsAnalyzed:       len(history),
	}

	if err := u.repo.SaveSprintVelocity(ctx, sprintID, capacity, res.ProjectedVelocity); err != nil {
		return entities.VelocityProjection{}, err
	}

	u.log.Infow("velocity projected",
		"sprint_id", sprintID,
		"capacity", capacity,
		"projected_velocity", res.ProjectedVelocity,
		"average_completion_rate", res.AverageCompletionRate,
		"sprints_analyzed", res.SprintsAnalyzed,
	)
	return res, nil
}
