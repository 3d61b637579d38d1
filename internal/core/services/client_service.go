package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
	"github.com/SscSPs/camp_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	newID      func() string
}

// ClientServiceOption is a functional option for configuring the client service
type ClientServiceOption func(*clientService)

// WithClientClock overrides the time source used for audit fields.
func WithClientClock(clock func() time.Time) ClientServiceOption {
	return func(s *clientService) {
		s.Clock = clock
	}
}

// WithClientIDGenerator overrides how new client ids are generated.
func WithClientIDGenerator(gen func() string) ClientServiceOption {
	return func(s *clientService) {
		s.newID = gen
	}
}

// NewClientService creates a new client service with the provided options
func NewClientService(repo portsrepo.ClientRepositoryFacade, options ...ClientServiceOption) portssvc.ClientSvcFacade {
	svc := &clientService{
		clientRepo: repo,
		newID:      uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.FindAllClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	s.LogDebug(ctx, "Clients listed", slog.Int("count", len(clients)))
	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID", slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) Invoice(ctx context.Context, clientID string) (*domain.InvoiceView, error) {
	client, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	view := accounting.ToInvoiceView(*client)
	return &view, nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client, err := accounting.BuildClient(req.ToFields(), dto.ToServices(req.Services), nil, accounting.BuildOptions{}, s.Now())
	if err != nil {
		return nil, err
	}
	return s.insert(ctx, client)
}

func (s *clientService) BookClient(ctx context.Context, req dto.BookClientRequest) (*domain.Client, error) {
	draft := accounting.NewBookingDraft().WithFields(req.ToFields())
	for i, in := range req.Services {
		next, err := draft.WithService(in.ToDomain())
		if err != nil {
			return nil, fmt.Errorf("service %d: %w", i, err)
		}
		draft = next
	}

	client, err := draft.Submit(s.Now())
	if err != nil {
		return nil, err
	}
	return s.insert(ctx, client)
}

func (s *clientService) ReplaceClient(ctx context.Context, req dto.ReplaceClientRequest) (*domain.Client, error) {
	existing, err := s.GetClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	client, err := accounting.BuildClient(req.ToFields(), dto.ToServices(req.Services), existing, accounting.BuildOptions{}, s.Now())
	if err != nil {
		return nil, err
	}
	return s.save(ctx, client)
}

func (s *clientService) PatchClient(ctx context.Context, clientID string, req dto.PatchClientRequest) (*domain.Client, error) {
	existing, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	client, err := accounting.ApplyPatch(*existing, req.ToPatch(), s.Now())
	if err != nil {
		return nil, err
	}
	return s.save(ctx, client)
}

func (s *clientService) AddService(ctx context.Context, clientID string, req dto.ServiceInputRequest) (*domain.Client, error) {
	return s.editServices(ctx, clientID, func(current []domain.Service) ([]domain.Service, error) {
		return accounting.AddOrModifyService(current, req.ToDomain(), nil)
	})
}

func (s *clientService) UpdateService(ctx context.Context, clientID string, index int, req dto.ServiceInputRequest) (*domain.Client, error) {
	return s.editServices(ctx, clientID, func(current []domain.Service) ([]domain.Service, error) {
		return accounting.AddOrModifyService(current, req.ToDomain(), &index)
	})
}

func (s *clientService) RemoveService(ctx context.Context, clientID string, index int) (*domain.Client, error) {
	return s.editServices(ctx, clientID, func(current []domain.Service) ([]domain.Service, error) {
		return accounting.RemoveService(current, index)
	})
}

func (s *clientService) SettleService(ctx context.Context, clientID string, index int, method string) (*domain.Client, error) {
	return s.editServices(ctx, clientID, func(current []domain.Service) ([]domain.Service, error) {
		return accounting.MarkSettledAt(current, index, method)
	})
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) (int64, error) {
	deleted, err := s.clientRepo.DeleteClientByID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return 0, err
	}
	s.LogInfo(ctx, "Client delete processed", slog.String("client_id", clientID), slog.Int64("deleted", deleted))
	return deleted, nil
}

// editServices loads a client, applies edit to its service list and saves the rebuilt client.
func (s *clientService) editServices(ctx context.Context, clientID string, edit func([]domain.Service) ([]domain.Service, error)) (*domain.Client, error) {
	existing, err := s.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	services, err := edit(existing.Services)
	if err != nil {
		return nil, err
	}
	client, err := accounting.BuildClient(existing.Fields(), services, existing, accounting.BuildOptions{}, s.Now())
	if err != nil {
		return nil, err
	}
	return s.save(ctx, client)
}

func (s *clientService) insert(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	client.ClientID = s.newID()
	if err := s.clientRepo.InsertClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, err
	}
	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID), slog.Int("services", len(client.Services)))
	return client, nil
}

func (s *clientService) save(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	matched, err := s.clientRepo.UpdateClientByID(ctx, client.ClientID, *client)
	if err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", client.ClientID))
		return nil, err
	}
	if matched == 0 {
		return nil, apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "Client updated", slog.String("client_id", client.ClientID))
	return client, nil
}
