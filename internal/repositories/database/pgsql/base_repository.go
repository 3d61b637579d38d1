package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that a connection can be acquired and used.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "postgres unreachable", err)
	}
	return nil
}
