package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/memory"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusService_Health(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    *entity.Health
	}{
		{
			name: "store reachable",
			want: &entity.Health{Status: entity.HealthStatusHealthy, Database: entity.DatabaseStateConnected},
		},
		{
			name:    "store unreachable",
			pingErr: errors.New("server selection timeout"),
			want:    &entity.Health{Status: entity.HealthStatusUnhealthy, Database: entity.DatabaseStateDisconnected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mockRepo.NewMockDocumentStore(t)
			store.EXPECT().Ping(mock.Anything).Return(tt.pingErr)

			got := NewStatusService(store, discardLogger()).Health(context.Background())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusService_CreateAndListChecks(t *testing.T) {
	ctx := context.Background()
	service := NewStatusService(memory.NewDocumentStore(), discardLogger()).(*statusService)
	service.now = func() time.Time { return fixedNow }
	service.newID = sequentialIDs("check-1", "check-2")

	_, err := service.CreateCheck(ctx, &entity.StatusCheckInput{ClientName: "storefront-web"})
	require.NoError(t, err)
	_, err = service.CreateCheck(ctx, &entity.StatusCheckInput{ClientName: "admin"})
	require.NoError(t, err)

	checks, err := service.ListChecks(ctx)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, &entity.StatusCheck{ID: "check-1", ClientName: "storefront-web", Timestamp: "2025-03-14T09:26:53Z"}, checks[0])
	assert.Equal(t, "check-2", checks[1].ID)
}
