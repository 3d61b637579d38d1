package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/SscSPs/camp_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `client_id, name, phone_number, responsable, services, payment_method,
	date_of_booking, total_price, remaining_total, created_at, updated_at`

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// scanClient reads one row selected with clientColumns. Services are stored as JSONB
// in their document shape.
func scanClient(row pgx.Row) (domain.Client, error) {
	var c domain.Client
	var stored []models.Service
	err := row.Scan(
		&c.ClientID,
		&c.Name,
		&c.PhoneNumber,
		&c.Responsable,
		&stored,
		&c.PaymentMethod,
		&c.DateOfBooking,
		&c.TotalPrice,
		&c.RemainingTotal,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Client{}, err
	}
	// pgx hands TIMESTAMPTZ back in the local zone; the other stores return UTC.
	c.DateOfBooking = c.DateOfBooking.UTC()
	c.Services = make([]domain.Service, len(stored))
	for i, s := range stored {
		svc, err := mapping.ToDomainService(s)
		if err != nil {
			return domain.Client{}, err
		}
		c.Services[i] = svc
	}
	return c, nil
}

func storedServices(services []domain.Service) []models.Service {
	out := make([]models.Service, len(services))
	for i, s := range services {
		out[i] = mapping.ToModelService(s)
	}
	return out
}

// FindAllClients retrieves all clients ordered by booking date.
func (r *PgxClientRepository) FindAllClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY date_of_booking DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Persistence("query clients", err)
	}
	defer rows.Close()

	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, apperrors.Persistence("scan clients", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// FindClientByID retrieves a client by its id.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	client, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Persistence("find client "+clientID, err)
	}
	return &client, nil
}

// InsertClient stores a new client row.
func (r *PgxClientRepository) InsertClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.Name,
		client.PhoneNumber,
		client.Responsable,
		storedServices(client.Services),
		client.PaymentMethod,
		client.DateOfBooking,
		client.TotalPrice,
		client.RemainingTotal,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		return apperrors.Persistence("insert client "+client.ClientID, err)
	}
	return nil
}

// UpdateClientByID overwrites every column except client_id and created_at.
func (r *PgxClientRepository) UpdateClientByID(ctx context.Context, clientID string, client domain.Client) (int64, error) {
	query := `
		UPDATE clients SET
			name = $2,
			phone_number = $3,
			responsable = $4,
			services = $5,
			payment_method = $6,
			date_of_booking = $7,
			total_price = $8,
			remaining_total = $9,
			updated_at = $10
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		clientID,
		client.Name,
		client.PhoneNumber,
		client.Responsable,
		storedServices(client.Services),
		client.PaymentMethod,
		client.DateOfBooking,
		client.TotalPrice,
		client.RemainingTotal,
		client.UpdatedAt,
	)
	if err != nil {
		return 0, apperrors.Persistence("update client "+clientID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteClientByID removes a client row.
func (r *PgxClientRepository) DeleteClientByID(ctx context.Context, clientID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return 0, apperrors.Persistence("delete client "+clientID, err)
	}
	return tag.RowsAffected(), nil
}
