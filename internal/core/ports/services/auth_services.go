package services

import (
	"context"
	"time"
)

// AuthSvcFacade guards the API behind the single shared password.
type AuthSvcFacade interface {
	// Login compares password with the stored hash and issues an access token.
	Login(ctx context.Context, password string) (string, time.Time, error)

	// SetPassword stores a new hash of password.
	SetPassword(ctx context.Context, password string) error

	// EnsurePassword stores seed as the password when none is stored yet.
	EnsurePassword(ctx context.Context, seed string) error
}
