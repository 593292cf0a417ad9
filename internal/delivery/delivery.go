package delivery

import "context"

// Delivery is a transport that serves until the application stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
