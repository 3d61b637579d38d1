package services

import (
	"context"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// ListClients retrieves every client.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// GetClient retrieves a specific client by its id.
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)

	// Invoice projects a client into its invoice.
	Invoice(ctx context.Context, clientID string) (*domain.InvoiceView, error)
}

// ClientWriterSvc defines whole-record write operations for client data
type ClientWriterSvc interface {
	// CreateClient stores a client from the direct API. Zero services are accepted.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// BookClient stores a client from the booking form. At least one service is required.
	BookClient(ctx context.Context, req dto.BookClientRequest) (*domain.Client, error)

	// ReplaceClient overwrites a stored client. Totals are recomputed.
	ReplaceClient(ctx context.Context, req dto.ReplaceClientRequest) (*domain.Client, error)

	// PatchClient edits individual fields of a stored client.
	PatchClient(ctx context.Context, clientID string, req dto.PatchClientRequest) (*domain.Client, error)

	// DeleteClient removes a client and returns the number of deleted records.
	DeleteClient(ctx context.Context, clientID string) (int64, error)
}

// ClientLedgerSvc defines per-service edits on a stored client
type ClientLedgerSvc interface {
	AddService(ctx context.Context, clientID string, req dto.ServiceInputRequest) (*domain.Client, error)
	UpdateService(ctx context.Context, clientID string, index int, req dto.ServiceInputRequest) (*domain.Client, error)
	RemoveService(ctx context.Context, clientID string, index int) (*domain.Client, error)
	// SettleService records the payment method of the remaining balance.
	SettleService(ctx context.Context, clientID string, index int, method string) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	ClientLedgerSvc
}
