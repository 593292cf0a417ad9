package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

const (
	msgSubscribed        = "Successfully subscribed to newsletter"
	msgAlreadySubscribed = "Email already subscribed"
)

type newsletterService struct {
	store  repository.DocumentStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewNewsletterService creates the newsletter service
func NewNewsletterService(store repository.DocumentStore, logger *slog.Logger) usecase.NewsletterUsecase {
	return &newsletterService{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  entity.NewID,
	}
}

// Subscribe stores the trimmed address unless a subscription with the same email exists.
// The existence check and the insert are not atomic.
func (srv *newsletterService) Subscribe(ctx context.Context, input *entity.NewsletterInput) (*entity.SubscribeResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	_, err := srv.store.FindOne(ctx, repository.CollectionNewsletter, repository.Filter{"email": email})
	switch {
	case err == nil:
		return &entity.SubscribeResult{Message: msgAlreadySubscribed, Exists: true}, nil
	case !errors.Is(err, repository.ErrDocumentNotFound):
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	subscription := entity.NewNewsletterSubscription(srv.newID(), &entity.NewsletterInput{Email: email}, srv.now())

	doc, err := entity.ToDocument(subscription)
	if err != nil {
		return nil, fmt.Errorf("failed to encode subscription: %w", err)
	}
	if err := srv.store.InsertOne(ctx, repository.CollectionNewsletter, doc); err != nil {
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Newsletter subscription created",
		slog.String("id", subscription.ID),
	)

	return &entity.SubscribeResult{
		Message:      msgSubscribed,
		Exists:       false,
		Subscription: subscription,
	}, nil
}

func (srv *newsletterService) List(ctx context.Context) ([]*entity.NewsletterSubscription, error) {
	docs, err := srv.store.Find(ctx, repository.CollectionNewsletter, repository.All(), bulkListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subscriptions := make([]*entity.NewsletterSubscription, 0, len(docs))
	for _, doc := range docs {
		var subscription entity.NewsletterSubscription
		if err := doc.Decode(&subscription); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		subscriptions = append(subscriptions, &subscription)
	}

	return subscriptions, nil
}

func (srv *newsletterService) Delete(ctx context.Context, id string) error {
	deleted, err := srv.store.DeleteOne(ctx, repository.CollectionNewsletter, repository.ByID(id))
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if deleted == 0 {
		return domainerrors.ErrSubscriptionNotFound
	}

	return nil
}
