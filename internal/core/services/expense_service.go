package services

import (
	"context"
	"errors"
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

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock overrides the time source used for audit fields.
func WithExpenseClock(clock func() time.Time) ExpenseServiceOption {
	return func(s *expenseService) {
		s.Clock = clock
	}
}

func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{expenseRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindAllExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	expense, err := accounting.ValidateExpense(req.ToFields(), nil, s.Now())
	if err != nil {
		return nil, err
	}
	expense.ExpenseID = uuid.NewString()

	if err := s.expenseRepo.InsertExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}
	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID))
	return expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	existing, err := s.GetExpense(ctx, req.ExpenseID)
	if err != nil {
		return nil, err
	}
	expense, err := accounting.ValidateExpense(req.ToFields(), existing, s.Now())
	if err != nil {
		return nil, err
	}

	matched, err := s.expenseRepo.UpdateExpenseByID(ctx, expense.ExpenseID, *expense)
	if err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}
	if matched == 0 {
		return nil, apperrors.ErrNotFound
	}
	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expense.ExpenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) (int64, error) {
	deleted, err := s.expenseRepo.DeleteExpenseByID(ctx, expenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return 0, err
	}
	return deleted, nil
}
