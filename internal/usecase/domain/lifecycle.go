package domain

import (
	"time"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// sprintCompleted reports whether a sprint is locked against velocity
// mutations: its end date has fully passed and a completed velocity has been
// recorded. An unset completed velocity never locks, a recorded zero does.
// The state is derived, never stored.
func (u *Usecase) sprintCompleted(s *entities.Sprint) bool {
	if s.CompletedVelocity == nil {
		return false
	}
	return u.now().After(endOfDay(s.EndDate))
}

func endOfDay(t time.Time) time.Time {
	return truncateToDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
