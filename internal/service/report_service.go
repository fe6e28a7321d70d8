package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/report"
	"github.com/Purvi1411/expense-tracker/internal/storage"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

// ReportService feeds owner-scoped transactions to the report aggregations.
type ReportService struct {
	storage *storage.Storage
	now     Clock
}

func NewReportService(store *storage.Storage, clock Clock) *ReportService {
	return &ReportService{storage: store, now: clockOrDefault(clock)}
}

// MonthlySummary returns income and expense totals per calendar month, oldest first.
func (s *ReportService) MonthlySummary(ctx context.Context, ownerID uuid.UUID) ([]report.MonthlyTotal, error) {
	entries, err := s.entries(ctx, filter.ForOwner(ownerID))
	if err != nil {
		return nil, err
	}
	return report.MonthlySummary(entries, s.now().Location()), nil
}

// CategoryBreakdown totals the transactions matching params per category.
// Without an explicit kind only expenses are counted.
func (s *ReportService) CategoryBreakdown(ctx context.Context, ownerID uuid.UUID, params filter.Params) ([]report.CategoryTotal, error) {
	if params.Kind == "" {
		params.Kind = filter.KindExpense
	}
	query, err := filter.Build(ownerID, params, s.now())
	if err != nil {
		return nil, filterError("build breakdown query", err)
	}

	entries, err := s.entries(ctx, query)
	if err != nil {
		return nil, err
	}
	return report.CategoryBreakdown(entries), nil
}

// ExpenseTrends returns expense totals for the current week, month and year.
func (s *ReportService) ExpenseTrends(ctx context.Context, ownerID uuid.UUID) (report.Trends, error) {
	now := s.now()
	query, err := filter.Build(ownerID, filter.Params{Kind: filter.KindExpense}, now)
	if err != nil {
		return report.Trends{}, filterError("build trends query", err)
	}

	entries, err := s.entries(ctx, query)
	if err != nil {
		return report.Trends{}, err
	}
	return report.ExpenseTrends(entries, now), nil
}

func (s *ReportService) entries(ctx context.Context, query filter.TransactionQuery) ([]report.Entry, error) {
	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("reportQueryMs")
	}
	rows, err := s.storage.Transactions.List(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, internal("list transactions for report", err)
	}
	return entriesFromRows(rows), nil
}

func entriesFromRows(rows []*sqlconfig.Transaction) []report.Entry {
	entries := make([]report.Entry, len(rows))
	for i, row := range rows {
		entries[i] = report.Entry{
			Amount:     row.Amount,
			Kind:       row.Kind,
			Category:   row.Category,
			OccurredAt: row.OccurredAt,
			CreatedAt:  row.CreatedAt,
		}
	}
	return entries
}
