// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrMemberNotFound signals missing team member.
	ErrMemberNotFound = errors.New("team member not found")
	// ErrSprintNotFound signals missing sprint.
	ErrSprintNotFound = errors.New("sprint not found")
	// ErrAllocationNotFound signals missing capacity allocation.
	ErrAllocationNotFound = errors.New("allocation not found")
	// ErrSprintLocked signals a velocity mutation attempt on a completed sprint.
	ErrSprintLocked = errors.New("sprint completed")
)
