package mongodb

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// NewRepositoryProvider wires every MongoDB repository on the named database.
// Close disconnects the client.
func NewRepositoryProvider(client *mongo.Client, database string) portsrepo.RepositoryProvider {
	db := client.Database(database)
	return portsrepo.RepositoryProvider{
		ClientRepo:  newMongoClientRepository(db),
		ExpenseRepo: newMongoExpenseRepository(db),
		UserRepo:    newMongoUserRepository(db),
		Health:      &BaseRepository{DB: db},
		Close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				slog.Error("Failed to disconnect mongodb", slog.String("error", err.Error()))
			}
		},
	}
}
