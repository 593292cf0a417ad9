package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

const healthPingTimeout = 5 * time.Second

type statusService struct {
	store  repository.DocumentStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewStatusService creates the status and health service
func NewStatusService(store repository.DocumentStore, logger *slog.Logger) usecase.StatusUsecase {
	return &statusService{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  entity.NewID,
	}
}

func (srv *statusService) CreateCheck(ctx context.Context, input *entity.StatusCheckInput) (*entity.StatusCheck, error) {
	check := entity.NewStatusCheck(srv.newID(), input, srv.now())

	doc, err := entity.ToDocument(check)
	if err != nil {
		return nil, fmt.Errorf("failed to encode status check: %w", err)
	}
	if err := srv.store.InsertOne(ctx, repository.CollectionStatusChecks, doc); err != nil {
		return nil, fmt.Errorf("failed to insert status check: %w", err)
	}

	return check, nil
}

func (srv *statusService) ListChecks(ctx context.Context) ([]*entity.StatusCheck, error) {
	docs, err := srv.store.Find(ctx, repository.CollectionStatusChecks, repository.All(), bulkListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}

	checks := make([]*entity.StatusCheck, 0, len(docs))
	for _, doc := range docs {
		var check entity.StatusCheck
		if err := doc.Decode(&check); err != nil {
			return nil, fmt.Errorf("failed to decode status check: %w", err)
		}
		checks = append(checks, &check)
	}

	return checks, nil
}

func (srv *statusService) Health(ctx context.Context) *entity.Health {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := srv.store.Ping(pingCtx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Store ping failed", slog.Any("error", err))

		return &entity.Health{
			Status:   entity.HealthStatusUnhealthy,
			Database: entity.DatabaseStateDisconnected,
		}
	}

	return &entity.Health{
		Status:   entity.HealthStatusHealthy,
		Database: entity.DatabaseStateConnected,
	}
}
