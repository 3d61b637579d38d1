package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/camp_ledger_app/internal/platform/config"
	"github.com/SscSPs/camp_ledger_app/internal/repositories/database/mongodb"
	"github.com/SscSPs/camp_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/camp_ledger_app/internal/repositories/memory"
	"github.com/SscSPs/camp_ledger_app/pkg/database"
)

// NewProvider opens the backend selected by cfg.StorageBackend and returns its repositories.
// Callers must invoke provider.Close on shutdown.
func NewProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize postgres backend: %w", err)
		}
		logger.Info("Initialized postgres backend")
		return pgsql.NewRepositoryProvider(pool), nil

	case config.BackendMongoDB:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize mongodb backend: %w", err)
		}
		logger.Info("Initialized mongodb backend", slog.String("database", cfg.MongoDatabase))
		return mongodb.NewRepositoryProvider(client, cfg.MongoDatabase), nil

	case config.BackendMemory:
		logger.Warn("Using in-memory backend, data is lost on exit")
		return memory.NewRepositoryProvider(memory.NewStore()), nil

	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unsupported backend type: %s", cfg.StorageBackend)
	}
}
