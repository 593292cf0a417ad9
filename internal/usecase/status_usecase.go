package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// StatusUsecase records client heartbeats and reports store health
type StatusUsecase interface {
	CreateCheck(ctx context.Context, input *entity.StatusCheckInput) (*entity.StatusCheck, error)
	ListChecks(ctx context.Context) ([]*entity.StatusCheck, error)

	// Health pings the store. An unreachable store is reported, not returned as an error.
	Health(ctx context.Context) *entity.Health
}
