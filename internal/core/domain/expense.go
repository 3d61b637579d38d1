package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a standalone operational cost. It is only related to clients through the monthly summary.
type Expense struct {
	ExpenseID     string          `json:"_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Responsable   string          `json:"responsable"`
	Date          time.Time       `json:"date"`
	PaymentMethod string          `json:"paymentMethod"`
	AuditFields
}

// ExpenseFields are the raw expense form values.
type ExpenseFields struct {
	Name          string
	Price         decimal.Decimal
	Responsable   string
	Date          time.Time
	PaymentMethod string
}
