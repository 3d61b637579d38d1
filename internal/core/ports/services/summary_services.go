package services

import (
	"context"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
)

// SummaryService defines operations for generating the monthly summary
type SummaryService interface {
	// MonthlySummary buckets revenue and expenses of one year by month.
	// A nil year selects the current year when it has data, else the most recent one.
	MonthlySummary(ctx context.Context, year *int) (*domain.SummaryReport, error)
}
