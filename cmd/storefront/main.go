package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/router/handler"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/seed"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/telemetry"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			seed.NewEmbeddedSource,
		),
		persistence.Module,
		storage.Module,
		telemetry.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewHeroSlideService,
			impl.NewTestimonialService,
			impl.NewGiftBoxService,
			impl.NewBulkOrderService,
			impl.NewSiteSettingsService,
			impl.NewNewsletterService,
			impl.NewSubmissionExportService,
			impl.NewThemeService,
			impl.NewUploadService,
			impl.NewSeedService,
			impl.NewStatusService,
		),
		fx.Decorate(
			impl.WithBulkOrderEvents,
			impl.WithNewsletterEvents,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewHeroSlideHandler,
			handler.NewTestimonialHandler,
			handler.NewGiftBoxHandler,
			handler.NewSiteHandler,
			handler.NewUploadHandler,
			handler.NewBulkOrderHandler,
			handler.NewNewsletterHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
