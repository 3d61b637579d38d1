package repositories

import (
	"context"
	"time"
)

// UserRepository stores the single shared credential gating the API.
type UserRepository interface {
	// GetPasswordHash returns the stored bcrypt hash, or apperrors.ErrNotFound when none was set.
	GetPasswordHash(ctx context.Context) (string, error)

	// SetPasswordHash stores hash, replacing any previous one.
	SetPasswordHash(ctx context.Context, hash string, updatedAt time.Time) error
}
