package repositories

import (
	"context"
)

// HealthChecker is implemented by every storage backend so /health can probe it.
type HealthChecker interface {
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}
