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
	insertTeamQuery      = `INSERT INTO teams(id, name, active) VALUES ($1, $2, true)`
	selectTeamQuery      = `SELECT id, name, active FROM teams WHERE id=$1`
	selectTeamMembers    = `SELECT id, name, skill, active, team_id FROM team_members WHERE team_id=$1 ORDER BY name`
	deactivateTeamQuery  = `UPDATE teams SET active=false WHERE id=$1`
	insertMemberQuery    = `INSERT INTO team_members(id, name, skill, active, team_id) VALUES ($1, $2, $3, $4, $5)`
	selectMemberQuery    = `SELECT id, name, skill, active, team_id FROM team_members WHERE id=$1`
	setMemberActiveQuery = `UPDATE team_members SET active=$2 WHERE id=$1 RETURNING id, name, skill, active, team_id`
)

// Postgres error codes checked across this package.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// CreateTeam inserts a team with a generated identity.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	team.ID = uuid.NewString()
	if _, err := p.db.Exec(ctx, insertTeamQuery, team.ID, team.Name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}
	team.Active = true
	team.Members = make([]entities.TeamMember, 0)

	p.log.Infow("team created", "team_id", team.ID, "name", team.Name)
	return &team, nil
}

// GetTeam fetches a team with its members.
func (p *Postgres) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	var t entities.Team
	if err := p.db.QueryRow(ctx, selectTeamQuery, teamID).Scan(&t.ID, &t.Name, &t.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTeamMembers, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Skill, &m.Active, &m.TeamID); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	t.Members = members
	return &t, nil
}

// DeactivateTeam soft-deletes a team by clearing its active flag.
func (p *Postgres) DeactivateTeam(ctx context.Context, teamID string) error {
	tag, err := p.db.Exec(ctx, deactivateTeamQuery, teamID)
	if err != nil {
		return fmt.Errorf("deactivate team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}

	p.log.Infow("team deactivated", "team_id", teamID)
	return nil
}

// CreateMember inserts a team member with a generated identity.
func (p *Postgres) CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	member.ID = uuid.NewString()
	if _, err := p.db.Exec(ctx, insertMemberQuery, member.ID, member.Name, member.Skill, member.Active, member.TeamID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member created", "member_id", member.ID, "name", member.Name)
	return &member, nil
}

// GetMember fetches a team member by id.
func (p *Postgres) GetMember(ctx context.Context, memberID string) (*entities.TeamMember, error) {
	var m entities.TeamMember
	err := p.db.QueryRow(ctx, selectMemberQuery, memberID).
		Scan(&m.ID, &m.Name, &m.Skill, &m.Active, &m.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// SetMemberActive updates the active flag and returns the updated member.
func (p *Postgres) SetMemberActive(ctx context.Context, memberID string, isActive bool) (*entities.TeamMember, error) {
	var m entities.TeamMember
	err := p.db.QueryRow(ctx, setMemberActiveQuery, memberID, isActive).
		Scan(&m.ID, &m.Name, &m.Skill, &m.Active, &m.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("set member active: %w", err)
	}

	p.log.Infow("member active flag updated", "member_id", memberID, "is_active", isActive)
	return &m, nil
}
