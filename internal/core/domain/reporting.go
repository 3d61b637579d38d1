package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyData is one calendar-month bucket of the summary.
type MonthlyData struct {
	Month         string          `json:"month"` // e.g. "mars 2024"
	Year          int             `json:"year"`
	MonthNumber   int             `json:"monthNumber"`
	TotalServices decimal.Decimal `json:"totalServices"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Benefits      decimal.Decimal `json:"benefits"` // TotalServices - TotalExpenses, may be negative
}

// SummaryReport is the monthly summary of one year plus the years that can be selected.
type SummaryReport struct {
	Year           int             `json:"year"`
	AvailableYears []int           `json:"availableYears"`
	Months         []MonthlyData   `json:"months"`
	TotalServices  decimal.Decimal `json:"totalServices"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	Benefits       decimal.Decimal `json:"benefits"`
}
