package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertSprintQuery = `
INSERT INTO sprints(id, name, start_date, end_date, capacity, projected_velocity, completed_velocity, velocity_commitment, team_id)
VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $8)`
	selectSprintQuery = `
SELECT id, name, start_date, end_date, capacity, projected_velocity, completed_velocity, velocity_commitment, team_id
FROM sprints WHERE id=$1`
	selectSprintForUpdateQuery = selectSprintQuery + ` FOR UPDATE`
	updateSprintQuery          = `
UPDATE sprints
SET name=$2, start_date=$3, end_date=$4, completed_velocity=$5, velocity_commitment=$6, team_id=$7
WHERE id=$1`
	deleteSprintQuery    = `DELETE FROM sprints WHERE id=$1`
	saveVelocityQuery    = `UPDATE sprints SET capacity=$2, projected_velocity=$3 WHERE id=$1`
	recentCompletedQuery = `
SELECT id, name, start_date, end_date, capacity, projected_velocity, completed_velocity, velocity_commitment, team_id
FROM sprints
WHERE completed_velocity IS NOT NULL AND completed_velocity > 0
ORDER BY start_date DESC
LIMIT $1`
	recentCompletedByTeamQuery = `
SELECT id, name, start_date, end_date, capacity, projected_velocity, completed_velocity, velocity_commitment, team_id
FROM sprints
WHERE completed_velocity IS NOT NULL AND completed_velocity > 0 AND team_id=$2
ORDER BY start_date DESC
LIMIT $1`
)

// CreateSprint inserts a sprint with its initial allocations in one
// transaction; capacity is set to the sum of the inserted allocations.
func (p *Postgres) CreateSprint(ctx context.Context, sprint entities.Sprint, allocations []entities.AllocationInput) (*entities.Sprint, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sprint.ID = uuid.NewString()
	total := 0
	for _, a := range allocations {
		total += a.Capacity
	}

	_, err = tx.Exec(ctx, insertSprintQuery,
		sprint.ID, sprint.Name, sprint.StartDate, sprint.EndDate, total,
		sprint.CompletedVelocity, sprint.VelocityCommitment, sprint.TeamID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("insert sprint: %w", err)
	}

	for _, a := range allocations {
		if err := insertAllocationTx(ctx, tx, sprint.ID, a.MemberID, a.Capacity); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("sprint created", "sprint_id", sprint.ID, "name", sprint.Name, "capacity", total)
	return p.GetSprint(ctx, sprint.ID)
}

// GetSprint fetches a sprint with its allocations.
func (p *Postgres) GetSprint(ctx context.Context, sprintID string) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.db.QueryRow(ctx, selectSprintQuery, sprintID).Scan(
		&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Capacity,
		&s.ProjectedVelocity, &s.CompletedVelocity, &s.VelocityCommitment, &s.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSprintNotFound
		}
		return nil, fmt.Errorf("get sprint: %w", err)
	}

	allocations, err := p.ListAllocations(ctx, sprintID)
	if err != nil {
		return nil, err
	}
	s.Allocations = allocations
	return &s, nil
}

// UpdateSprint applies a partial patch under a row lock and returns the
// updated sprint.
func (p *Postgres) UpdateSprint(ctx context.Context, sprintID string, patch entities.SprintUpdate) (*entities.Sprint, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var s entities.Sprint
	err = tx.QueryRow(ctx, selectSprintForUpdateQuery, sprintID).Scan(
		&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Capacity,
		&s.ProjectedVelocity, &s.CompletedVelocity, &s.VelocityCommitment, &s.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSprintNotFound
		}
		return nil, fmt.Errorf("select sprint for update: %w", err)
	}

	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.StartDate != nil {
		s.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		s.EndDate = *patch.EndDate
	}
	if patch.TeamID != nil {
		s.TeamID = patch.TeamID
	}
	if patch.CompletedVelocity != nil {
		s.CompletedVelocity = patch.CompletedVelocity
	}
	if patch.VelocityCommitment != nil {
		s.VelocityCommitment = patch.VelocityCommitment
	}

	_, err = tx.Exec(ctx, updateSprintQuery,
		s.ID, s.Name, s.StartDate, s.EndDate, s.CompletedVelocity, s.VelocityCommitment, s.TeamID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("update sprint: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("sprint updated", "sprint_id", sprintID)
	return p.GetSprint(ctx, sprintID)
}

// DeleteSprint removes a sprint; its allocations go with it via cascade.
func (p *Postgres) DeleteSprint(ctx context.Context, sprintID string) error {
	tag, err := p.db.Exec(ctx, deleteSprintQuery, sprintID)
	if err != nil {
		return fmt.Errorf("delete sprint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrSprintNotFound
	}

	p.log.Infow("sprint deleted", "sprint_id", sprintID)
	return nil
}

// RecentCompletedSprints returns the newest sprints carrying a completed
// velocity above zero, optionally scoped to a team.
func (p *Postgres) RecentCompletedSprints(ctx context.Context, teamID *string, limit int) ([]entities.Sprint, error) {
	var rows pgx.Rows
	var err error
	if teamID != nil {
		rows, err = p.db.Query(ctx, recentCompletedByTeamQuery, limit, *teamID)
	} else {
		rows, err = p.db.Query(ctx, recentCompletedQuery, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("select recent completed sprints: %w", err)
	}
	defer rows.Close()

	sprints := make([]entities.Sprint, 0, limit)
	for rows.Next() {
		var s entities.Sprint
		if err := rows.Scan(
			&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.Capacity,
			&s.ProjectedVelocity, &s.CompletedVelocity, &s.VelocityCommitment, &s.TeamID); err != nil {
			return nil, fmt.Errorf("scan recent sprint: %w", err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent sprints: %w", err)
	}

	return sprints, nil
}

// SaveSprintVelocity persists derived capacity and projected velocity.
func (p *Postgres) SaveSprintVelocity(ctx context.Context, sprintID string, capacity, projectedVelocity int) error {
	tag, err := p.db.Exec(ctx, saveVelocityQuery, sprintID, capacity, projectedVelocity)
	if err != nil {
		return fmt.Errorf("save sprint velocity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrSprintNotFound
	}

	p.log.Infow("sprint velocity saved", "sprint_id", sprintID, "capacity", capacity, "projected_velocity", projectedVelocity)
	return nil
}
