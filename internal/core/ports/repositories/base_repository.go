package repositories

import "context"

// HealthChecker is implemented by stores that hold an external connection.
type HealthChecker interface {
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
