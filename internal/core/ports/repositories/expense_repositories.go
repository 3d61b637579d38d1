package repositories

import (
	"context"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	FindAllExpenses(ctx context.Context) ([]domain.Expense, error)
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	InsertExpense(ctx context.Context, expense domain.Expense) error
	// UpdateExpenseByID returns the number of matched records.
	UpdateExpenseByID(ctx context.Context, expenseID string, expense domain.Expense) (int64, error)
	// DeleteExpenseByID returns the number of deleted records.
	DeleteExpenseByID(ctx context.Context, expenseID string) (int64, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
