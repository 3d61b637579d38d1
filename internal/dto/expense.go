package dto

import (
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Name          string          `json:"name" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	Responsable   string          `json:"responsable" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,paymentmethod"`
}

// UpdateExpenseRequest replaces a stored expense identified by _id.
type UpdateExpenseRequest struct {
	ExpenseID string `json:"_id" binding:"required"`
	CreateExpenseRequest
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Responsable   string          `json:"responsable"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToFields converts the request to its domain shape.
func (r CreateExpenseRequest) ToFields() domain.ExpenseFields {
	return domain.ExpenseFields{
		Name:          r.Name,
		Price:         r.Price,
		Responsable:   r.Responsable,
		Date:          r.Date,
		PaymentMethod: r.PaymentMethod,
	}
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Name:          e.Name,
		Price:         e.Price,
		Responsable:   e.Responsable,
		Date:          e.Date,
		PaymentMethod: e.PaymentMethod,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
