package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// GetPasswordHash reads the hash of the shared credential row.
func (r *PgxUserRepository) GetPasswordHash(ctx context.Context) (string, error) {
	var hash string
	err := r.Pool.QueryRow(ctx, `SELECT password_hash FROM users WHERE user_id = $1;`, models.SharedUserID).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Persistence("read password hash", err)
	}
	return hash, nil
}

// SetPasswordHash upserts the shared credential row.
func (r *PgxUserRepository) SetPasswordHash(ctx context.Context, hash string, updatedAt time.Time) error {
	query := `
		INSERT INTO users (user_id, password_hash, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, models.SharedUserID, hash, updatedAt); err != nil {
		return apperrors.Persistence("store password hash", err)
	}
	return nil
}
