package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, echo.MIMEApplicationJSON, r.Header.Get(echo.HeaderContentType))
		requestID = r.Header.Get(echo.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
	publisher.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }

	event := &service.SubmissionEvent{
		RequestID:    "req-7",
		Kind:         service.SubmissionKindNewsletter,
		SubmissionID: "sub-1",
		CreatedAt:    "2025-03-14T09:26:53Z",
		Payload:      map[string]string{"email": "ana@example.com"},
	}
	require.NoError(t, publisher.PublishSubmissionEvent(context.Background(), event))

	assert.Equal(t, "req-7", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "sub-1", received.Message.MessageID)
	assert.Equal(t, "2025-03-14T09:26:53Z", received.Message.PublishTime)
	assert.Equal(t, map[string]string{
		"kind":          "newsletter",
		"submission_id": "sub-1",
		"request_id":    "req-7",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "newsletter", decoded["kind"])
	assert.Equal(t, "sub-1", decoded["submission_id"])
	assert.Equal(t, map[string]any{"email": "ana@example.com"}, decoded["payload"])
}

func TestLocalHTTPPublisher_OmitsEmptyRequestID(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(echo.HeaderXRequestID))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishSubmissionEvent(context.Background(), &service.SubmissionEvent{
		Kind:         service.SubmissionKindBulkOrder,
		SubmissionID: "order-1",
	}))

	assert.NotContains(t, received.Message.Attributes, "request_id")
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishSubmissionEvent(context.Background(), &service.SubmissionEvent{
		Kind:         service.SubmissionKindBulkOrder,
		SubmissionID: "order-1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
