// Package persistence selects the document store backend.
package persistence

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mongostore "storefront/internal/infra/persistence/mongo"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for DocumentStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentStore creates the DocumentStore named by store.driver.
// Only the selected backend is connected.
func NewDocumentStore(params StoreParams) (repository.DocumentStore, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger

	var store repository.DocumentStore

	switch driver {
	case config.StoreDriverMongo:
		db, err := mongostore.New(mongostore.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		store = mongostore.NewDocumentStore(db)

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		store = postgres.NewDocumentStore(db)

	case config.StoreDriverMemory:
		logger.Warn("Using in-memory document store, data is lost on shutdown")
		store = memory.NewDocumentStore()

	default:
		return nil, errors.Errorf("unknown store driver: %s", driver)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Document store ready", slog.String("driver", driver))

			return nil
		},
	})

	return store, nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDocumentStore),
)
