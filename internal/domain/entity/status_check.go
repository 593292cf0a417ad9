package entity

import "time"

// StatusCheck is a heartbeat record left by a client.
type StatusCheck struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}

type StatusCheckInput struct {
	ClientName string `json:"client_name" validate:"required"`
}

func NewStatusCheck(id string, in *StatusCheckInput, now time.Time) *StatusCheck {
	return &StatusCheck{
		ID:         id,
		ClientName: in.ClientName,
		Timestamp:  FormatTimestamp(now),
	}
}

// Health reports store reachability.
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

const (
	HealthStatusHealthy       = "healthy"
	HealthStatusUnhealthy     = "unhealthy"
	DatabaseStateConnected    = "connected"
	DatabaseStateDisconnected = "disconnected"
)

// Message is a plain acknowledgement body.
type Message struct {
	Message string `json:"message"`
}
