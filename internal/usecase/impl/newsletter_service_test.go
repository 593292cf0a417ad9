package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterService_Subscribe_NewThenDuplicate(t *testing.T) {
	ctx := context.Background()
	service := NewNewsletterService(memory.NewDocumentStore(), discardLogger())

	first, err := service.Subscribe(ctx, &entity.NewsletterInput{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.False(t, first.Exists)
	assert.Equal(t, msgSubscribed, first.Message)
	require.NotNil(t, first.Subscription)
	assert.Equal(t, "ana@example.com", first.Subscription.Email)

	second, err := service.Subscribe(ctx, &entity.NewsletterInput{Email: "  ana@example.com "})
	require.NoError(t, err)
	assert.True(t, second.Exists)
	assert.Equal(t, msgAlreadySubscribed, second.Message)
	assert.Nil(t, second.Subscription)

	subscriptions, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subscriptions, 1)
}

func TestNewsletterService_Subscribe_BlankEmail(t *testing.T) {
	store := mockRepo.NewMockDocumentStore(t)

	for _, email := range []string{"", "   ", "\t\n"} {
		_, err := NewNewsletterService(store, discardLogger()).Subscribe(context.Background(), &entity.NewsletterInput{Email: email})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "email %q", email)
	}
}

func TestNewsletterService_Subscribe_LookupError(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockDocumentStore(t)
	storeErr := errors.New("unreachable")

	store.EXPECT().
		FindOne(ctx, repository.CollectionNewsletter, repository.Filter{"email": "ana@example.com"}).
		Return(nil, storeErr)

	_, err := NewNewsletterService(store, discardLogger()).Subscribe(ctx, &entity.NewsletterInput{Email: "ana@example.com"})
	assert.ErrorIs(t, err, storeErr)
}

func TestNewsletterService_Delete(t *testing.T) {
	ctx := context.Background()
	service := NewNewsletterService(memory.NewDocumentStore(), discardLogger())

	result, err := service.Subscribe(ctx, &entity.NewsletterInput{Email: "ana@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, result.Subscription.ID))
	assert.ErrorIs(t, service.Delete(ctx, result.Subscription.ID), domainerrors.ErrSubscriptionNotFound)
}
