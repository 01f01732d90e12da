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
	selectAllocationsQuery = `SELECT id, sprint_id, member_id, capacity FROM allocations WHERE sprint_id=$1 ORDER BY member_id`
	insertAllocationQuery  = `INSERT INTO allocations(id, sprint_id, member_id, capacity) VALUES ($1, $2, $3, $4)`
	upsertAllocationQuery  = `
INSERT INTO allocations(id, sprint_id, member_id, capacity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (sprint_id, member_id) DO UPDATE SET capacity = EXCLUDED.capacity
RETURNING id`
	deleteAllocationsQuery = `DELETE FROM allocations WHERE sprint_id=$1`
	deleteAllocationQuery  = `DELETE FROM allocations WHERE sprint_id=$1 AND member_id=$2`
	sprintExistsQuery      = `SELECT id FROM sprints WHERE id=$1 FOR UPDATE`
	setCapacityQuery       = `UPDATE sprints SET capacity=$2 WHERE id=$1`
)

// ListAllocations returns all allocations of a sprint.
func (p *Postgres) ListAllocations(ctx context.Context, sprintID string) ([]entities.Allocation, error) {
	rows, err := p.db.Query(ctx, selectAllocationsQuery, sprintID)
	if err != nil {
		return nil, fmt.Errorf("select allocations: %w", err)
	}
	defer rows.Close()

	allocations := make([]entities.Allocation, 0)
	for rows.Next() {
		var a entities.Allocation
		if err := rows.Scan(&a.ID, &a.SprintID, &a.MemberID, &a.Capacity); err != nil {
			return nil, fmt.Errorf("scan allocation: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate allocations: %w", err)
	}

	return allocations, nil
}

// ReplaceAllocations swaps the full allocation set of a sprint in one
// transaction, holding the sprint row lock for the duration.
func (p *Postgres) ReplaceAllocations(ctx context.Context, sprintID string, allocations []entities.AllocationInput) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	if err := tx.QueryRow(ctx, sprintExistsQuery, sprintID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrSprintNotFound
		}
		return fmt.Errorf("lock sprint: %w", err)
	}

	if _, err := tx.Exec(ctx, deleteAllocationsQuery, sprintID); err != nil {
		return fmt.Errorf("delete allocations: %w", err)
	}

	for _, a := range allocations {
		if err := insertAllocationTx(ctx, tx, sprintID, a.MemberID, a.Capacity); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("allocations replaced", "sprint_id", sprintID, "count", len(allocations))
	return nil
}

// UpsertAllocation creates or overwrites the allocation of a member on a sprint.
func (p *Postgres) UpsertAllocation(ctx context.Context, sprintID, memberID string, capacity int) (*entities.Allocation, error) {
	a := entities.Allocation{SprintID: sprintID, MemberID: memberID, Capacity: capacity}
	err := p.db.QueryRow(ctx, upsertAllocationQuery, uuid.NewString(), sprintID, memberID, capacity).Scan(&a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			if pgErr.ConstraintName == "allocations_member_id_fkey" {
				return nil, entities.ErrMemberNotFound
			}
			return nil, entities.ErrSprintNotFound
		}
		return nil, fmt.Errorf("upsert allocation: %w", err)
	}

	p.log.Infow("allocation upserted", "sprint_id", sprintID, "member_id", memberID, "capacity", capacity)
	return &a, nil
}

// RemoveAllocation deletes the allocation of a member on a sprint. Removing
// an absent allocation is a no-op.
func (p *Postgres) RemoveAllocation(ctx context.Context, sprintID, memberID string) error {
	if _, err := p.db.Exec(ctx, deleteAllocationQuery, sprintID, memberID); err != nil {
		return fmt.Errorf("delete allocation: %w", err)
	}
	return nil
}

// SetSprintCapacity persists an aggregated capacity value.
func (p *Postgres) SetSprintCapacity(ctx context.Context, sprintID string, capacity int) error {
	tag, err := p.db.Exec(ctx, setCapacityQuery, sprintID, capacity)
	if err != nil {
		return fmt.Errorf("set sprint capacity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrSprintNotFound
	}
	return nil
}

func insertAllocationTx(ctx context.Context, tx pgx.Tx, sprintID, memberID string, capacity int) error {
	if _, err := tx.Exec(ctx, insertAllocationQuery, uuid.NewString(), sprintID, memberID, capacity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return entities.ErrMemberNotFound
		}
		return fmt.Errorf("insert allocation: %w", err)
	}
	return nil
}
