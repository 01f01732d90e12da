package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// CountWorkingDays counts Monday-to-Friday days in the inclusive range
// [start, end], walking one calendar day at a time. A range whose end
// precedes its start never iterates and yields 0, not a negative count.
// Inputs are truncated to calendar dates; no timezone normalization beyond
// that is attempted.
func CountWorkingDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WorkingDays exposes the calculator over raw dates.
func (u *Usecase) WorkingDays(start, end time.Time) int {
	return CountWorkingDays(start, end)
}

// SprintWorkingDays counts working days across a sprint's date range.
func (u *Usecase) SprintWorkingDays(ctx context.Context, sprintID string) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return 0, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}

	sprint, err := u.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return 0, err
	}
	return CountWorkingDays(sprint.StartDate, sprint.EndDate), nil
}
