package services

import (
	"context"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	// DeleteExpense returns the number of deleted records.
	DeleteExpense(ctx context.Context, expenseID string) (int64, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
