package handlers_fiber

import (
	"net/http"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/dto"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostSprint creates a sprint with optional initial allocations.
func (h *Handler) PostSprint(c *fiber.Ctx) error {
	var body dto.CreateSprintRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	sprint, allocations, err := mapper.FromDTOCreateSprint(body)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.CreateSprint(c.Context(), sprint, allocations)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOSprint(*res))
}

// GetSprint returns a sprint with its allocations.
func (h *Handler) GetSprint(c *fiber.Ctx) error {
	sprint, err := h.uc.Sprint(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSprint(*sprint))
}

// PatchSprint applies a partial sprint update.
func (h *Handler) PatchSprint(c *fiber.Ctx) error {
	var body dto.UpdateSprintRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	patch, err := mapper.FromDTOUpdateSprint(body)
	if err != nil {
		return writeError(c, err)
	}

	sprint, err := h.uc.UpdateSprint(c.Context(), c.Params("id"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSprint(*sprint))
}

// DeleteSprint removes a sprint and its allocations.
func (h *Handler) DeleteSprint(c *fiber.Ctx) error {
	if err := h.uc.DeleteSprint(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostSprintVelocity recomputes the sprint's projected velocity.
func (h *Handler) PostSprintVelocity(c *fiber.Ctx) error {
	projection, err := h.uc.ProjectVelocity(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProjection(projection))
}

// GetSprintWorkingDays counts working days across the sprint's date range.
func (h *Handler) GetSprintWorkingDays(c *fiber.Ctx) error {
	days, err := h.uc.SprintWorkingDays(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.WorkingDaysResponse{WorkingDays: days})
}

// GetWorkingDays counts working days in an arbitrary inclusive date range.
func (h *Handler) GetWorkingDays(c *fiber.Ctx) error {
	start, err := dto.ParseDate(c.Query("start_date"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "start_date must be "+dto.DateLayout))
	}
	end, err := dto.ParseDate(c.Query("end_date"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "end_date must be "+dto.DateLayout))
	}

	days := h.uc.WorkingDays(start, end)
	return c.Status(http.StatusOK).JSON(dto.WorkingDaysResponse{WorkingDays: days})
}
