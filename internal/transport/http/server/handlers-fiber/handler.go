// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the planning usecases over fiber routes.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts all API routes on the app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/teams", h.PostTeam)
	api.Get("/teams/:id", h.GetTeam)
	api.Delete("/teams/:id", h.DeleteTeam)

	api.Post("/members", h.PostMember)
	api.Get("/members/:id", h.GetMember)
	api.Patch("/members/:id/active", h.PatchMemberActive)

	api.Post("/sprints", h.PostSprint)
	api.Get("/sprints/:id", h.GetSprint)
	api.Patch("/sprints/:id", h.PatchSprint)
	api.Delete("/sprints/:id", h.DeleteSprint)
	api.Post("/sprints/:id/velocity", h.PostSprintVelocity)
	api.Get("/sprints/:id/working-days", h.GetSprintWorkingDays)

	api.Put("/sprints/:id/allocations", h.PutAllocations)
	api.Put("/sprints/:id/allocations/:memberId", h.PutAllocation)
	api.Delete("/sprints/:id/allocations/:memberId", h.DeleteAllocation)

	api.Get("/working-days", h.GetWorkingDays)
}
