package mongodb

import (
	"context"
	"net/http"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	clientsCollection  = "clients"
	expensesCollection = "expenses"
	usersCollection    = "users"
)

// BaseRepository holds the database handle shared by the collection repositories.
type BaseRepository struct {
	DB *mongo.Database
}

// Ping checks that the primary is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "mongodb unreachable", err)
	}
	return nil
}
