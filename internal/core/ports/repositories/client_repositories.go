package repositories

import (
	"context"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindAllClients retrieves every stored client. An empty store returns an empty slice.
	FindAllClients(ctx context.Context) ([]domain.Client, error)

	// FindClientByID retrieves a specific client by its id.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// InsertClient persists a new client. ClientID must already be set.
	InsertClient(ctx context.Context, client domain.Client) error

	// UpdateClientByID overwrites the stored client and returns the number of matched records.
	UpdateClientByID(ctx context.Context, clientID string, client domain.Client) (int64, error)

	// DeleteClientByID removes a client and returns the number of deleted records.
	DeleteClientByID(ctx context.Context, clientID string) (int64, error)
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
