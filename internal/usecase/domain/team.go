// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// CreateTeam creates a team.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.Name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateTeam(ctx, team)
}

// Team returns a team with its members.
func (u *Usecase) Team(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, teamID)
}

// DeactivateTeam soft-deletes a team. Its sprints and members stay in place.
func (u *Usecase) DeactivateTeam(ctx context.Context, teamID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeactivateTeam(ctx, teamID)
}
