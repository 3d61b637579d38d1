package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateExpense checks the expense form and returns the record to persist.
// When original is given its id and CreatedAt are kept.
func ValidateExpense(fields domain.ExpenseFields, original *domain.Expense, now time.Time) (*domain.Expense, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if fields.Price.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invalid amount", apperrors.ErrValidation)
	}
	if strings.TrimSpace(fields.Responsable) == "" {
		return nil, fmt.Errorf("%w: responsable is required", apperrors.ErrValidation)
	}
	if fields.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if !domain.IsKnownPaymentMethod(fields.PaymentMethod) {
		return nil, fmt.Errorf("%w: payment method is required", apperrors.ErrValidation)
	}

	expense := &domain.Expense{
		Name:          strings.TrimSpace(fields.Name),
		Price:         fields.Price,
		Responsable:   strings.TrimSpace(fields.Responsable),
		Date:          fields.Date,
		PaymentMethod: fields.PaymentMethod,
	}
	if original != nil {
		expense.ExpenseID = original.ExpenseID
		expense.CreatedAt = original.CreatedAt
	}
	expense.Touch(now)
	return expense, nil
}
