package domain

import (
	"testing"
	"time"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestSprintCompletedBoundary(t *testing.T) {
	uc := newTestUsecase(&repoMock{})
	sprint := &entities.Sprint{EndDate: date(2024, 1, 14), CompletedVelocity: intPtr(10)}

	endOfDay := time.Date(2024, 1, 14, 23, 59, 59, 999000000, time.UTC)

	uc.now = func() time.Time { return endOfDay }
	require.False(t, uc.sprintCompleted(sprint), "end of day itself is still open")

	uc.now = func() time.Time { return endOfDay.Add(time.Millisecond) }
	require.True(t, uc.sprintCompleted(sprint))
}

func TestSprintCompletedRequiresRecordedVelocity(t *testing.T) {
	uc := newTestUsecase(&repoMock{})
	uc.now = func() time.Time { return date(2030, 1, 1) }

	require.False(t, uc.sprintCompleted(&entities.Sprint{EndDate: date(2024, 1, 14)}))
	require.True(t, uc.sprintCompleted(&entities.Sprint{EndDate: date(2024, 1, 14), CompletedVelocity: intPtr(0)}))
}
