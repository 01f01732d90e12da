package handlers_fiber

import (
	"net/http"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/dto"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostMember creates a team member.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	var body dto.CreateMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	member, err := h.uc.CreateMember(c.Context(), entities.TeamMember{
		Name:   body.Name,
		Skill:  body.Skill,
		Active: true,
		TeamID: body.TeamID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOMember(*member))
}

// GetMember returns a team member by id.
func (h *Handler) GetMember(c *fiber.Ctx) error {
	member, err := h.uc.Member(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMember(*member))
}

// PatchMemberActive toggles the member activity flag.
func (h *Handler) PatchMemberActive(c *fiber.Ctx) error {
	var body dto.SetMemberActiveRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	member, err := h.uc.SetActiveMember(c.Context(), c.Params("id"), body.IsActive)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMember(*member))
}
