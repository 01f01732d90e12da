package usecase

import (
	"context"
	"time"

	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/repository"
	"github.com/mmmshakeel/sprint-capacity-planner-sub000/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	MemberUsecaseInterface
	SprintUsecaseInterface
	CapacityUsecaseInterface
	VelocityUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
