// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"fmt"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/dto"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
)

// FromDTOCreateSprint builds an entities.Sprint plus its initial allocations
// from the create request, parsing wire dates.
func FromDTOCreateSprint(src dto.CreateSprintRequest) (entities.Sprint, []entities.AllocationInput, error) {
	start, err := dto.ParseDate(src.StartDate)
	if err != nil {
		return entities.Sprint{}, nil, fmt.Errorf("%w: start_date must be %s", entities.ErrInvalidArgument, dto.DateLayout)
	}
	end, err := dto.ParseDate(src.EndDate)
	if err != nil {
		return entities.Sprint{}, nil, fmt.Errorf("%w: end_date must be %s", entities.ErrInvalidArgument, dto.DateLayout)
	}

	sprint := entities.Sprint{
		Name:               src.Name,
		StartDate:          start,
		EndDate:            end,
		CompletedVelocity:  src.CompletedVelocity,
		VelocityCommitment: src.VelocityCommitment,
		TeamID:             src.TeamID,
	}
	return sprint, FromDTOAllocationInputs(src.Allocations), nil
}

// FromDTOUpdateSprint builds a partial sprint patch, parsing any wire dates.
func FromDTOUpdateSprint(src dto.UpdateSprintRequest) (entities.SprintUpdate, error) {
	patch := entities.SprintUpdate{
		Name:               src.Name,
		TeamID:             src.TeamID,
		CompletedVelocity:  src.CompletedVelocity,
		VelocityCommitment: src.VelocityCommitment,
	}
	if src.StartDate != nil {
		start, err := dto.ParseDate(*src.StartDate)
		if err != nil {
			return entities.SprintUpdate{}, fmt.Errorf("%w: start_date must be %s", entities.ErrInvalidArgument, dto.DateLayout)
		}
		patch.StartDate = &start
	}
	if src.EndDate != nil {
		end, err := dto.ParseDate(*src.EndDate)
		if err != nil {
			return entities.SprintUpdate{}, fmt.Errorf("%w: end_date must be %s", entities.ErrInvalidArgument, dto.DateLayout)
		}
		patch.EndDate = &end
	}
	return patch, nil
}

// FromDTOAllocationInputs maps allocation inputs to domain inputs.
func FromDTOAllocationInputs(src []dto.AllocationInput) []entities.AllocationInput {
	res := make([]entities.AllocationInput, 0, len(src))
	for _, a := range src {
		res = append(res, entities.AllocationInput{MemberID: a.MemberID, Capacity: a.Capacity})
	}
	return res
}

// ToDTOSprint maps entities.Sprint to transport model.
func ToDTOSprint(s entities.Sprint) dto.Sprint {
	allocations := make([]dto.Allocation, 0, len(s.Allocations))
	for _, a := range s.Allocations {
		allocations = append(allocations, ToDTOAllocation(a))
	}

	return dto.Sprint{
		SprintID:           s.ID,
		Name:               s.Name,
		StartDate:          dto.FormatDate(s.StartDate),
		EndDate:            dto.FormatDate(s.EndDate),
		Capacity:           s.Capacity,
		ProjectedVelocity:  s.ProjectedVelocity,
		CompletedVelocity:  s.CompletedVelocity,
		VelocityCommitment: s.VelocityCommitment,
		TeamID:             s.TeamID,
		Allocations:        allocations,
	}
}

// ToDTOAllocation maps entities.Allocation to transport model.
func ToDTOAllocation(a entities.Allocation) dto.Allocation {
	return dto.Allocation{
		AllocationID: a.ID,
		SprintID:     a.SprintID,
		MemberID:     a.MemberID,
		Capacity:     a.Capacity,
	}
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(team entities.Team) dto.Team {
	members := make([]dto.TeamMember, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, ToDTOMember(m))
	}

	return dto.Team{
		TeamID:  team.ID,
		Name:    team.Name,
		Active:  team.Active,
		Members: members,
	}
}

// ToDTOMember maps entities.TeamMember to transport model.
func ToDTOMember(m entities.TeamMember) dto.TeamMember {
	return dto.TeamMember{
		MemberID: m.ID,
		Name:     m.Name,
		Skill:    m.Skill,
		IsActive: m.Active,
		TeamID:   m.TeamID,
	}
}

// ToDTOProjection maps a velocity projection to transport model.
func ToDTOProjection(p entities.VelocityProjection) dto.VelocityProjection {
	return dto.VelocityProjection{
		ProjectedVelocity:     p.ProjectedVelocity,
		AverageCompletionRate: p.AverageCompletionRate,
		SprintsAnalyzed:       p.SprintsAnalyzed,
	}
}
