package domain

import (
	"context"
	"testing"
	"time"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) DeactivateTeam(ctx context.Context, teamID string) error {
	return m.Called(ctx, teamID).Error(0)
}

func (m *repoMock) CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) GetMember(ctx context.Context, memberID string) (*entities.TeamMember, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) SetMemberActive(ctx context.Context, memberID string, isActive bool) (*entities.TeamMember, error) {
	args := m.Called(ctx, memberID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamMember), args.Error(1)
}

func (m *repoMock) CreateSprint(ctx context.Context, sprint entities.Sprint, allocations []entities.AllocationInput) (*entities.Sprint, error) {
	args := m.Called(ctx, sprint, allocations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *repoMock) GetSprint(ctx context.Context, sprintID string) (*entities.Sprint, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *repoMock) UpdateSprint(ctx context.Context, sprintID string, patch entities.SprintUpdate) (*entities.Sprint, error) {
	args := m.Called(ctx, sprintID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Sprint), args.Error(1)
}

func (m *repoMock) DeleteSprint(ctx context.Context, sprintID string) error {
	return m.Called(ctx, sprintID).Error(0)
}

func (m *repoMock) RecentCompletedSprints(ctx context.Context, teamID *string, limit int) ([]entities.Sprint, error) {
	args := m.Called(ctx, teamID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Sprint), args.Error(1)
}

func (m *repoMock) SaveSprintVelocity(ctx context.Context, sprintID string, capacity, projectedVelocity int) error {
	return m.Called(ctx, sprintID, capacity, projectedVelocity).Error(0)
}

func (m *repoMock) ListAllocations(ctx context.Context, sprintID string) ([]entities.Allocation, error) {
	args := m.Called(ctx, sprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Allocation), args.Error(1)
}

func (m *repoMock) ReplaceAllocations(ctx context.Context, sprintID string, allocations []entities.AllocationInput) error {
	return m.Called(ctx, sprintID, allocations).Error(0)
}

func (m *repoMock) UpsertAllocation(ctx context.Context, sprintID, memberID string, capacity int) (*entities.Allocation, error) {
	args := m.Called(ctx, sprintID, memberID, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Allocation), args.Error(1)
}

func (m *repoMock) RemoveAllocation(ctx context.Context, sprintID, memberID string) error {
	return m.Called(ctx, sprintID, memberID).Error(0)
}

func (m *repoMock) SetSprintCapacity(ctx context.Context, sprintID string, capacity int) error {
	return m.Called(ctx, sprintID, capacity).Error(0)
}

func newTestUsecase(repo repository.Repository) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, time.Second)
}

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
func date(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

func TestUsecase_CreateSprintValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateSprint(context.Background(), entities.Sprint{}, nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateSprint", mock.Anything, mock.Anything, mock.Anything)

	_, err = uc.CreateSprint(context.Background(), entities.Sprint{
		Name:               "Sprint 1",
		StartDate:          date(2024, 1, 1),
		EndDate:            date(2024, 1, 14),
		VelocityCommitment: intPtr(0),
	}, nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_CreateSprintDropsNonPositiveAllocations(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	expected := &entities.Sprint{ID: "s1", Name: "Sprint 1", Capacity: 18}
	repo.On("CreateSprint", mock.Anything, mock.Anything, []entities.AllocationInput{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m3", Capacity: 8},
	}).Return(expected, nil)

	res, err := uc.CreateSprint(context.Background(), entities.Sprint{
		Name:      "Sprint 1",
		StartDate: date(2024, 1, 1),
		EndDate:   date(2024, 1, 14),
	}, []entities.AllocationInput{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m2", Capacity: 0},
		{MemberID: "m3", Capacity: 8},
		{MemberID: "m4", Capacity: -3},
	})
	require.NoError(t, err)
	require.Equal(t, expected, res)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateSprintLockedVelocityFields(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	uc.now = func() time.Time { return date(2024, 2, 1) }

	locked := &entities.Sprint{
		ID:                "s1",
		EndDate:           date(2024, 1, 14),
		CompletedVelocity: intPtr(0),
	}
	repo.On("GetSprint", mock.Anything, "s1").Return(locked, nil)

	_, err := uc.UpdateSprint(context.Background(), "s1", entities.SprintUpdate{VelocityCommitment: intPtr(40)})
	require.ErrorIs(t, err, entities.ErrSprintLocked)

	_, err = uc.UpdateSprint(context.Background(), "s1", entities.SprintUpdate{CompletedVelocity: intPtr(30)})
	require.ErrorIs(t, err, entities.ErrSprintLocked)

	repo.AssertNotCalled(t, "UpdateSprint", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateSprintMetadataAllowedWhenLocked(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	uc.now = func() time.Time { return date(2024, 2, 1) }

	renamed := &entities.Sprint{ID: "s1", Name: "Renamed"}
	patch := entities.SprintUpdate{Name: strPtr("Renamed")}
	repo.On("UpdateSprint", mock.Anything, "s1", patch).Return(renamed, nil)

	res, err := uc.UpdateSprint(context.Background(), "s1", patch)
	require.NoError(t, err)
	require.Equal(t, renamed, res)
	repo.AssertNotCalled(t, "GetSprint", mock.Anything, mock.Anything)
}

func TestUsecase_UpdateSprintNotLockedBeforeEndOfDay(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	// still within the sprint's final day
	uc.now = func() time.Time { return time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC) }

	open := &entities.Sprint{
		ID:                "s1",
		EndDate:           date(2024, 1, 14),
		CompletedVelocity: intPtr(42),
	}
	patch := entities.SprintUpdate{VelocityCommitment: intPtr(40)}
	repo.On("GetSprint", mock.Anything, "s1").Return(open, nil)
	repo.On("UpdateSprint", mock.Anything, "s1", patch).Return(open, nil)

	_, err := uc.UpdateSprint(context.Background(), "s1", patch)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateSprintNeverLocksWithoutRecordedVelocity(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	uc.now = func() time.Time { return date(2030, 1, 1) }

	open := &entities.Sprint{ID: "s1", EndDate: date(2024, 1, 14)}
	patch := entities.SprintUpdate{VelocityCommitment: intPtr(40)}
	repo.On("GetSprint", mock.Anything, "s1").Return(open, nil)
	repo.On("UpdateSprint", mock.Anything, "s1", patch).Return(open, nil)

	_, err := uc.UpdateSprint(context.Background(), "s1", patch)
	require.NoError(t, err)
}

func TestUsecase_ProjectVelocityFallbackWithoutHistory(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	sprint := &entities.Sprint{ID: "s1", TeamID: strPtr("t1"), EndDate: date(2030, 1, 14)}
	repo.On("GetSprint", mock.Anything, "s1").Return(sprint, nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m2", Capacity: 8},
		{MemberID: "m3", Capacity: 6},
	}, nil)
	repo.On("RecentCompletedSprints", mock.Anything, strPtr("t1"), 6).Return([]entities.Sprint{}, nil)
	repo.On("SaveSprintVelocity", mock.Anything, "s1", 24, 19).Return(nil)

	res, err := uc.ProjectVelocity(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, 0, res.SprintsAnalyzed)
	require.InDelta(t, 0.8, res.AverageCompletionRate, 1e-9)
	require.Equal(t, 19, res.ProjectedVelocity) // round(24 * 0.8)
	repo.AssertExpectations(t)
}

func TestUsecase_ProjectVelocityAveragesRecentHistory(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	sprint := &entities.Sprint{ID: "s1", TeamID: strPtr("t1"), EndDate: date(2030, 1, 14)}
	repo.On("GetSprint", mock.Anything, "s1").Return(sprint, nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m1", Capacity: 30},
		{MemberID: "m2", Capacity: 30},
	}, nil)
	repo.On("RecentCompletedSprints", mock.Anything, strPtr("t1"), 6).Return([]entities.Sprint{
		{ID: "h1", Capacity: 50, CompletedVelocity: intPtr(45)},
		{ID: "h2", Capacity: 50, CompletedVelocity: intPtr(40)},
	}, nil)
	repo.On("SaveSprintVelocity", mock.Anything, "s1", 60, 51).Return(nil)

	res, err := uc.ProjectVelocity(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, 2, res.SprintsAnalyzed)
	require.InDelta(t, 0.85, res.AverageCompletionRate, 1e-9)
	require.Equal(t, 51, res.ProjectedVelocity)
}

func TestUsecase_ProjectVelocityZeroCapacityHistoryCounts(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	sprint := &entities.Sprint{ID: "s1", EndDate: date(2030, 1, 14)}
	repo.On("GetSprint", mock.Anything, "s1").Return(sprint, nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m1", Capacity: 20},
	}, nil)
	repo.On("RecentCompletedSprints", mock.Anything, (*string)(nil), 6).Return([]entities.Sprint{
		{ID: "h1", Capacity: 0, CompletedVelocity: intPtr(30)},
		{ID: "h2", Capacity: 50, CompletedVelocity: intPtr(40)},
	}, nil)
	repo.On("SaveSprintVelocity", mock.Anything, "s1", 20, 8).Return(nil)

	res, err := uc.ProjectVelocity(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, 2, res.SprintsAnalyzed)
	require.InDelta(t, 0.4, res.AverageCompletionRate, 1e-9) // (0 + 0.8) / 2
	require.Equal(t, 8, res.ProjectedVelocity)
}

func TestUsecase_ProjectVelocityUnrecordedHistoryCounts(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	sprint := &entities.Sprint{ID: "s1", EndDate: date(2030, 1, 14)}
	repo.On("GetSprint", mock.Anything, "s1").Return(sprint, nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m1", Capacity: 20},
	}, nil)
	repo.On("RecentCompletedSprints", mock.Anything, (*string)(nil), 6).Return([]entities.Sprint{
		{ID: "h1", Capacity: 50, CompletedVelocity: nil},
		{ID: "h2", Capacity: 50, CompletedVelocity: intPtr(40)},
	}, nil)
	repo.On("SaveSprintVelocity", mock.Anything, "s1", 20, 8).Return(nil)

	res, err := uc.ProjectVelocity(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, 2, res.SprintsAnalyzed)
	require.InDelta(t, 0.4, res.AverageCompletionRate, 1e-9) // (0 + 0.8) / 2
	require.Equal(t, 8, res.ProjectedVelocity)
}

func TestUsecase_ProjectVelocityDeterministic(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	sprint := &entities.Sprint{ID: "s1", EndDate: date(2030, 1, 14)}
	repo.On("GetSprint", mock.Anything, "s1").Return(sprint, nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m1", Capacity: 25},
	}, nil)
	repo.On("RecentCompletedSprints", mock.Anything, (*string)(nil), 6).Return([]entities.Sprint{
		{ID: "h1", Capacity: 40, CompletedVelocity: intPtr(30)},
	}, nil)
	repo.On("SaveSprintVelocity", mock.Anything, "s1", 25, 19).Return(nil)

	first, err := uc.ProjectVelocity(context.Background(), "s1")
	require.NoError(t, err)
	second, err := uc.ProjectVelocity(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUsecase_ProjectVelocityRejectedOnCompletedSprint(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)
	uc.now = func() time.Time { return date(2024, 2, 1) }

	locked := &entities.Sprint{
		ID:                "s1",
		EndDate:           date(2024, 1, 14),
		CompletedVelocity: intPtr(38),
	}
	repo.On("GetSprint", mock.Anything, "s1").Return(locked, nil)

	_, err := uc.ProjectVelocity(context.Background(), "s1")
	require.ErrorIs(t, err, entities.ErrSprintLocked)
	repo.AssertNotCalled(t, "SaveSprintVelocity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_ReplaceAllocationsDropsNonPositive(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	kept := []entities.AllocationInput{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m3", Capacity: 8},
	}
	updated := &entities.Sprint{ID: "s1", Capacity: 18}
	repo.On("ReplaceAllocations", mock.Anything, "s1", kept).Return(nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m3", Capacity: 8},
	}, nil)
	repo.On("SetSprintCapacity", mock.Anything, "s1", 18).Return(nil)
	repo.On("GetSprint", mock.Anything, "s1").Return(updated, nil)

	res, err := uc.ReplaceAllocations(context.Background(), "s1", []entities.AllocationInput{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m2", Capacity: -5},
		{MemberID: "m3", Capacity: 8},
		{MemberID: "m4", Capacity: 0},
	})
	require.NoError(t, err)
	require.Equal(t, 18, res.Capacity)
	repo.AssertExpectations(t)
}

func TestUsecase_ReplaceAllocationsIdempotent(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	input := []entities.AllocationInput{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m2", Capacity: 8},
	}
	updated := &entities.Sprint{ID: "s1", Capacity: 18}
	repo.On("ReplaceAllocations", mock.Anything, "s1", input).Return(nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m2", Capacity: 8},
	}, nil)
	repo.On("SetSprintCapacity", mock.Anything, "s1", 18).Return(nil)
	repo.On("GetSprint", mock.Anything, "s1").Return(updated, nil)

	first, err := uc.ReplaceAllocations(context.Background(), "s1", input)
	require.NoError(t, err)
	second, err := uc.ReplaceAllocations(context.Background(), "s1", input)
	require.NoError(t, err)
	require.Equal(t, first.Capacity, second.Capacity)
	repo.AssertNumberOfCalls(t, "SetSprintCapacity", 2)
}

func TestUsecase_RecomputeCapacityOrderIndependent(t *testing.T) {
	allocations := []entities.Allocation{
		{MemberID: "m1", Capacity: 10},
		{MemberID: "m2", Capacity: 8},
		{MemberID: "m3", Capacity: 6},
	}
	reversed := []entities.Allocation{allocations[2], allocations[1], allocations[0]}

	totals := make([]int, 0, 2)
	for _, order := range [][]entities.Allocation{allocations, reversed} {
		repo := &repoMock{}
		uc := newTestUsecase(repo)
		repo.On("ListAllocations", mock.Anything, "s1").Return(order, nil)
		repo.On("SetSprintCapacity", mock.Anything, "s1", 24).Return(nil)

		total, err := uc.RecomputeCapacity(context.Background(), "s1")
		require.NoError(t, err)
		totals = append(totals, total)
	}
	require.Equal(t, totals[0], totals[1])
	require.Equal(t, 24, totals[0])
}

func TestUsecase_UpsertAllocationValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.UpsertAllocation(context.Background(), "s1", "m1", 0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.UpsertAllocation(context.Background(), "s1", "", 5)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "UpsertAllocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_RemoveAllocationRecomputesCapacity(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("RemoveAllocation", mock.Anything, "s1", "m1").Return(nil)
	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{
		{MemberID: "m2", Capacity: 7},
	}, nil)
	repo.On("SetSprintCapacity", mock.Anything, "s1", 7).Return(nil)

	require.NoError(t, uc.RemoveAllocation(context.Background(), "s1", "m1"))
	repo.AssertExpectations(t)
}

func TestUsecase_RecomputeCapacityEmptySprint(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	repo.On("ListAllocations", mock.Anything, "s1").Return([]entities.Allocation{}, nil)
	repo.On("SetSprintCapacity", mock.Anything, "s1", 0).Return(nil)

	total, err := uc.RecomputeCapacity(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestUsecase_TeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateTeam(context.Background(), entities.Team{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.Team(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	err = uc.DeactivateTeam(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_MemberValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newTestUsecase(repo)

	_, err := uc.CreateMember(context.Background(), entities.TeamMember{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	_, err = uc.SetActiveMember(context.Background(), "", true)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
