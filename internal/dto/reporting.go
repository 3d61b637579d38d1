package dto

import (
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyDataResponse is one month of the summary.
type MonthlyDataResponse struct {
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	MonthNumber   int             `json:"monthNumber"`
	TotalServices decimal.Decimal `json:"totalServices"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Benefits      decimal.Decimal `json:"benefits"`
}

// MonthlySummaryResponse represents the monthly summary report response
type MonthlySummaryResponse struct {
	Year           int                   `json:"year"`
	AvailableYears []int                 `json:"availableYears"`
	Months         []MonthlyDataResponse `json:"months"`
	Summary        struct {
		TotalServices decimal.Decimal `json:"totalServices"`
		TotalExpenses decimal.Decimal `json:"totalExpenses"`
		Benefits      decimal.Decimal `json:"benefits"`
	} `json:"summary"`
}

// ToMonthlySummaryResponse converts a domain summary to a DTO response
func ToMonthlySummaryResponse(report *domain.SummaryReport) MonthlySummaryResponse {
	response := MonthlySummaryResponse{
		Year:           report.Year,
		AvailableYears: report.AvailableYears,
		Months:         make([]MonthlyDataResponse, len(report.Months)),
	}
	if response.AvailableYears == nil {
		response.AvailableYears = []int{}
	}
	for i, m := range report.Months {
		response.Months[i] = MonthlyDataResponse(m)
	}
	response.Summary.TotalServices = report.TotalServices
	response.Summary.TotalExpenses = report.TotalExpenses
	response.Summary.Benefits = report.Benefits
	return response
}
