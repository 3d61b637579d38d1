package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
)

// Store keeps every collection in process memory. It is used for tests and local runs
// without a database; contents are lost on exit.
type Store struct {
	mu           sync.RWMutex
	clients      map[string]domain.Client
	expenses     map[string]domain.Expense
	passwordHash string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		clients:  make(map[string]domain.Client),
		expenses: make(map[string]domain.Expense),
	}
}

var (
	_ portsrepo.ClientRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ExpenseRepositoryFacade = (*Store)(nil)
	_ portsrepo.UserRepository          = (*Store)(nil)
	_ portsrepo.HealthChecker           = (*Store)(nil)
)

// NewRepositoryProvider exposes a single Store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:  store,
		ExpenseRepo: store,
		UserRepo:    store,
		Health:      store,
		Close:       func() {},
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func cloneClient(c domain.Client) domain.Client {
	services := make([]domain.Service, len(c.Services))
	copy(services, c.Services)
	c.Services = services
	return c
}

func (s *Store) FindAllClients(ctx context.Context) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, cloneClient(c))
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].DateOfBooking.Equal(clients[j].DateOfBooking) {
			return clients[i].CreatedAt.After(clients[j].CreatedAt)
		}
		return clients[i].DateOfBooking.After(clients[j].DateOfBooking)
	})
	return clients, nil
}

func (s *Store) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[clientID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c = cloneClient(c)
	return &c, nil
}

func (s *Store) InsertClient(ctx context.Context, client domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.ClientID]; exists {
		return fmt.Errorf("%w: client %s", apperrors.ErrDuplicate, client.ClientID)
	}
	s.clients[client.ClientID] = cloneClient(client)
	return nil
}

func (s *Store) UpdateClientByID(ctx context.Context, clientID string, client domain.Client) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[clientID]; !exists {
		return 0, nil
	}
	client.ClientID = clientID
	s.clients[clientID] = cloneClient(client)
	return 1, nil
}

func (s *Store) DeleteClientByID(ctx context.Context, clientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[clientID]; !exists {
		return 0, nil
	}
	delete(s.clients, clientID)
	return 1, nil
}

func (s *Store) FindAllExpenses(ctx context.Context) ([]domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expenses := make([]domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		expenses = append(expenses, e)
	}
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
		}
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

func (s *Store) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.expenses[expenseID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (s *Store) InsertExpense(ctx context.Context, expense domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.expenses[expense.ExpenseID]; exists {
		return fmt.Errorf("%w: expense %s", apperrors.ErrDuplicate, expense.ExpenseID)
	}
	s.expenses[expense.ExpenseID] = expense
	return nil
}

func (s *Store) UpdateExpenseByID(ctx context.Context, expenseID string, expense domain.Expense) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.expenses[expenseID]; !exists {
		return 0, nil
	}
	expense.ExpenseID = expenseID
	s.expenses[expenseID] = expense
	return 1, nil
}

func (s *Store) DeleteExpenseByID(ctx context.Context, expenseID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.expenses[expenseID]; !exists {
		return 0, nil
	}
	delete(s.expenses, expenseID)
	return 1, nil
}

func (s *Store) GetPasswordHash(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.passwordHash == "" {
		return "", apperrors.ErrNotFound
	}
	return s.passwordHash, nil
}

func (s *Store) SetPasswordHash(ctx context.Context, hash string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.passwordHash = hash
	return nil
}
