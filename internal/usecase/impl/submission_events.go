package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// bulkOrderEvents publishes a submission event for every created bulk order
type bulkOrderEvents struct {
	usecase.BulkOrderUsecase

	publisher service.EventPublisher
	logger    *slog.Logger
}

// WithBulkOrderEvents decorates a BulkOrderUsecase so successful creations are published.
// Publishing failures are logged and never fail the order.
func WithBulkOrderEvents(inner usecase.BulkOrderUsecase, publisher service.EventPublisher, logger *slog.Logger) usecase.BulkOrderUsecase {
	return &bulkOrderEvents{
		BulkOrderUsecase: inner,
		publisher:        publisher,
		logger:           logger,
	}
}

func (d *bulkOrderEvents) Create(ctx context.Context, input *entity.BulkOrderInput) (*entity.BulkOrder, error) {
	order, err := d.BulkOrderUsecase.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	publishSubmission(ctx, d.publisher, d.logger, &service.SubmissionEvent{
		Kind:         service.SubmissionKindBulkOrder,
		SubmissionID: order.ID,
		CreatedAt:    order.CreatedAt,
		Payload:      order,
	})

	return order, nil
}

// newsletterEvents publishes a submission event for every new subscription
type newsletterEvents struct {
	usecase.NewsletterUsecase

	publisher service.EventPublisher
	logger    *slog.Logger
}

// WithNewsletterEvents decorates a NewsletterUsecase so new subscriptions are published.
// Repeat sign-ups of a known address publish nothing.
func WithNewsletterEvents(inner usecase.NewsletterUsecase, publisher service.EventPublisher, logger *slog.Logger) usecase.NewsletterUsecase {
	return &newsletterEvents{
		NewsletterUsecase: inner,
		publisher:         publisher,
		logger:            logger,
	}
}

func (d *newsletterEvents) Subscribe(ctx context.Context, input *entity.NewsletterInput) (*entity.SubscribeResult, error) {
	result, err := d.NewsletterUsecase.Subscribe(ctx, input)
	if err != nil {
		return nil, err
	}
	if result.Exists || result.Subscription == nil {
		return result, nil
	}

	publishSubmission(ctx, d.publisher, d.logger, &service.SubmissionEvent{
		Kind:         service.SubmissionKindNewsletter,
		SubmissionID: result.Subscription.ID,
		CreatedAt:    result.Subscription.CreatedAt,
		Payload:      result.Subscription,
	})

	return result, nil
}

func publishSubmission(ctx context.Context, publisher service.EventPublisher, fallback *slog.Logger, event *service.SubmissionEvent) {
	event.RequestID = deliverycontext.RequestIDFrom(ctx)

	if err := publisher.PublishSubmissionEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, fallback).Warn("Failed to publish submission event",
			slog.String("kind", event.Kind),
			slog.String("submission_id", event.SubmissionID),
			slog.Any("error", err),
		)
	}
}
