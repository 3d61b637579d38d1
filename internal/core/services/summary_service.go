package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/camp_ledger_app/internal/apperrors"
	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/camp_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/camp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/camp_ledger_app/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

type summaryService struct {
	BaseService
	clientRepo  portsrepo.ClientReader
	expenseRepo portsrepo.ExpenseReader
}

func NewSummaryService(clientRepo portsrepo.ClientReader, expenseRepo portsrepo.ExpenseReader) portssvc.SummaryService {
	return &summaryService{
		clientRepo:  clientRepo,
		expenseRepo: expenseRepo,
	}
}

var _ portssvc.SummaryService = (*summaryService)(nil)

// MonthlySummary loads both collections concurrently; the first failure cancels the other load.
func (s *summaryService) MonthlySummary(ctx context.Context, year *int) (*domain.SummaryReport, error) {
	selected := 0
	if year != nil {
		if *year < 1970 || *year > 9999 {
			return nil, fmt.Errorf("%w: invalid year %d", apperrors.ErrValidation, *year)
		}
		selected = *year
	}

	var clients []domain.Client
	var expenses []domain.Expense

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.clientRepo.FindAllClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.FindAllExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load data for monthly summary")
		return nil, err
	}

	report := accounting.Summarize(clients, expenses, selected, s.Now())
	s.LogDebug(ctx, "Monthly summary computed",
		slog.Int("year", report.Year),
		slog.Int("months", len(report.Months)))
	return &report, nil
}
