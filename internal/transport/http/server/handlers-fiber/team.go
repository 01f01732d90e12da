package handlers_fiber

import (
	"net/http"
	"strings"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/dto"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body dto.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "name is required"))
	}

	team, err := h.uc.CreateTeam(c.Context(), entities.Team{Name: name})
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOTeam(*team))
}

// GetTeam returns a team with its members.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeam(*team))
}

// DeleteTeam soft-deletes a team.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.uc.DeactivateTeam(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
