package mapping

import (
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/SscSPs/camp_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		Name:          d.Name,
		Price:         d.Price.InexactFloat64(),
		Responsable:   d.Responsable,
		Date:          FormatTime(d.Date),
		PaymentMethod: d.PaymentMethod,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) (domain.Expense, error) {
	date, err := ParseTime(m.Date)
	if err != nil {
		return domain.Expense{}, err
	}
	audit, err := ToDomainAuditFields(m.AuditFields)
	if err != nil {
		return domain.Expense{}, err
	}
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		Name:          m.Name,
		Price:         decimal.NewFromFloat(m.Price),
		Responsable:   m.Responsable,
		Date:          date,
		PaymentMethod: m.PaymentMethod,
		AuditFields:   audit,
	}, nil
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) ([]domain.Expense, error) {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		d, err := ToDomainExpense(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
