// Package domain contains application Usecases orchestrating domain logic by team member.
package domain

import (
	"context"
	"fmt"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// CreateMember creates a team member, optionally attached to a team.
func (u *Usecase) CreateMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if member.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateMember(ctx, member)
}

// Member returns a team member by id.
func (u *Usecase) Member(ctx context.Context, memberID string) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if memberID == "" {
		return nil, fmt.Errorf("%w: member_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetMember(ctx, memberID)
}

// SetActiveMember toggles the member activity flag and returns the updated member.
func (u *Usecase) SetActiveMember(ctx context.Context, memberID string, isActive bool) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if memberID == "" {
		return nil, fmt.Errorf("%w: member_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetMemberActive(ctx, memberID, isActive)
}
