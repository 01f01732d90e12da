package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/dto"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrMemberNotFound),
		errors.Is(err, entities.ErrSprintNotFound),
		errors.Is(err, entities.ErrAllocationNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		code = dto.CodeTeamExists
		msg = "team name already exists"
	case errors.Is(err, entities.ErrSprintLocked):
		status = http.StatusConflict
		code = dto.CodeSprintLocked
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}
