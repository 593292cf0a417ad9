package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NewsletterUsecase manages newsletter sign-ups
type NewsletterUsecase interface {
	// Subscribe adds the address unless it is already subscribed
	Subscribe(ctx context.Context, input *entity.NewsletterInput) (*entity.SubscribeResult, error)

	List(ctx context.Context) ([]*entity.NewsletterSubscription, error)

	Delete(ctx context.Context, id string) error
}
