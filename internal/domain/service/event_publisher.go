package service

import "context"

// Submission kinds carried by SubmissionEvent.Kind
const (
	SubmissionKindBulkOrder  = "bulk_order"
	SubmissionKindNewsletter = "newsletter"
)

// SubmissionEvent announces a form submission accepted by the storefront
type SubmissionEvent struct {
	RequestID    string `json:"request_id,omitempty"`
	Kind         string `json:"kind"`
	SubmissionID string `json:"submission_id"`
	CreatedAt    string `json:"created_at"`
	Payload      any    `json:"payload"`
}

// EventPublisher hands submission events to a message topic for downstream follow-up
type EventPublisher interface {
	PublishSubmissionEvent(ctx context.Context, event *SubmissionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
