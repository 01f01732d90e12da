package handlers_fiber

import (
	"net/http"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/dto"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PutAllocations replaces the full allocation set of a sprint.
func (h *Handler) PutAllocations(c *fiber.Ctx) error {
	var body dto.ReplaceAllocationsRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	sprint, err := h.uc.ReplaceAllocations(c.Context(), c.Params("id"), mapper.FromDTOAllocationInputs(body.Allocations))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSprint(*sprint))
}

// PutAllocation creates or overwrites a member's allocation on a sprint.
func (h *Handler) PutAllocation(c *fiber.Ctx) error {
	var body dto.UpsertAllocationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	allocation, err := h.uc.UpsertAllocation(c.Context(), c.Params("id"), c.Params("memberId"), body.Capacity)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOAllocation(*allocation))
}

// DeleteAllocation removes a member's allocation; absent allocations are a no-op.
func (h *Handler) DeleteAllocation(c *fiber.Ctx) error {
	if err := h.uc.RemoveAllocation(c.Context(), c.Params("id"), c.Params("memberId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
