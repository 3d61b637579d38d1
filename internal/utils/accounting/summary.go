package accounting

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/camp_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthLabel renders a bucket label such as "mars 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", frenchMonths[month-1], year)
}

// SummarizeByMonth buckets clients by booking month and expenses by expense month for one year.
// A month appears as soon as either side has an entry; the missing side is zero.
// Buckets are returned in calendar order. Months and years are taken in UTC.
func SummarizeByMonth(clients []domain.Client, expenses []domain.Expense, year int) []domain.MonthlyData {
	buckets := make(map[time.Month]*domain.MonthlyData)
	bucket := func(m time.Month) *domain.MonthlyData {
		b, ok := buckets[m]
		if !ok {
			b = &domain.MonthlyData{
				Month:         MonthLabel(year, m),
				Year:          year,
				MonthNumber:   int(m),
				TotalServices: decimal.Zero,
				TotalExpenses: decimal.Zero,
				Benefits:      decimal.Zero,
			}
			buckets[m] = b
		}
		return b
	}

	for _, c := range clients {
		booked := c.DateOfBooking.UTC()
		if booked.Year() != year {
			continue
		}
		b := bucket(booked.Month())
		b.TotalServices = b.TotalServices.Add(c.TotalPrice)
	}
	for _, e := range expenses {
		spent := e.Date.UTC()
		if spent.Year() != year {
			continue
		}
		b := bucket(spent.Month())
		b.TotalExpenses = b.TotalExpenses.Add(e.Price)
	}

	months := make([]domain.MonthlyData, 0, len(buckets))
	for _, b := range buckets {
		b.Benefits = b.TotalServices.Sub(b.TotalExpenses)
		months = append(months, *b)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].MonthNumber < months[j].MonthNumber })
	return months
}

// AvailableYears lists the distinct years present across both collections, most recent first.
func AvailableYears(clients []domain.Client, expenses []domain.Expense) []int {
	seen := make(map[int]struct{})
	for _, c := range clients {
		if !c.DateOfBooking.IsZero() {
			seen[c.DateOfBooking.UTC().Year()] = struct{}{}
		}
	}
	for _, e := range expenses {
		if !e.Date.IsZero() {
			seen[e.Date.UTC().Year()] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// DefaultYear picks the current year when data exists for it, otherwise the most recent year.
// With no data at all the current year is returned.
func DefaultYear(years []int, now time.Time) int {
	current := now.Year()
	if len(years) == 0 {
		return current
	}
	latest := years[0]
	for _, y := range years {
		if y == current {
			return current
		}
		if y > latest {
			latest = y
		}
	}
	return latest
}

// Summarize builds the full report. A zero year selects DefaultYear.
func Summarize(clients []domain.Client, expenses []domain.Expense, year int, now time.Time) domain.SummaryReport {
	years := AvailableYears(clients, expenses)
	if year == 0 {
		year = DefaultYear(years, now)
	}
	months := SummarizeByMonth(clients, expenses, year)

	report := domain.SummaryReport{
		Year:           year,
		AvailableYears: years,
		Months:         months,
		TotalServices:  decimal.Zero,
		TotalExpenses:  decimal.Zero,
	}
	for _, m := range months {
		report.TotalServices = report.TotalServices.Add(m.TotalServices)
		report.TotalExpenses = report.TotalExpenses.Add(m.TotalExpenses)
	}
	report.Benefits = report.TotalServices.Sub(report.TotalExpenses)
	return report
}
