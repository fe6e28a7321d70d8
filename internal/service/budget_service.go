package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Purvi1411/expense-tracker/internal/events"
	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/period"
	"github.com/Purvi1411/expense-tracker/internal/storage"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

// Budget is a category cap for one period. Month is zero-based.
type Budget struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Month     int
	Year      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BudgetStatus compares a category's budget with what was spent this period.
type BudgetStatus struct {
	Category    string
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Remaining   decimal.Decimal
	PercentUsed decimal.Decimal
}

type BudgetService struct {
	storage  *storage.Storage
	notifier Notifier
	now      Clock
}

func NewBudgetService(store *storage.Storage, notifier Notifier, clock Clock) *BudgetService {
	return &BudgetService{storage: store, notifier: notifier, now: clockOrDefault(clock)}
}

// SetBudget creates or overwrites the owner's budget for category in the
// current period. The amount is never rejected: missing, malformed or
// negative values are stored as 0.
func (s *BudgetService) SetBudget(ctx context.Context, ownerID uuid.UUID, category string, amount *string) (Budget, error) {
	normalized, reason := normalizeCategory(category)
	if reason != "" {
		v := &ValidationError{}
		v.add("category", reason)
		return Budget{}, v
	}

	row, err := s.storage.Budgets.Upsert(ctx, &sqlconfig.BudgetUpsert{
		OwnerID:  ownerID,
		Category: normalized,
		Amount:   coerceBudgetAmount(amount),
		Period:   period.Of(s.now()),
	})
	if err != nil {
		return Budget{}, internal("upsert budget", err)
	}

	notify(ctx, s.notifier, events.New(events.BudgetSet, ownerID, row.ID))
	return budgetFromRow(row), nil
}

// ListBudgets returns the owner's budgets for the current period only.
func (s *BudgetService) ListBudgets(ctx context.Context, ownerID uuid.UUID) ([]Budget, error) {
	rows, err := s.storage.Budgets.ListForPeriod(ctx, ownerID, period.Of(s.now()))
	if err != nil {
		return nil, internal("list budgets", err)
	}

	result := make([]Budget, len(rows))
	for i, row := range rows {
		result[i] = budgetFromRow(row)
	}
	return result, nil
}

// BudgetStatus reports, for every category with a budget or an expense in the
// current period, how much of the budget has been used. Categories without a
// budget count as a budget of 0.
func (s *BudgetService) BudgetStatus(ctx context.Context, ownerID uuid.UUID) ([]BudgetStatus, error) {
	now := s.now()

	budgets, err := s.storage.Budgets.ListForPeriod(ctx, ownerID, period.Of(now))
	if err != nil {
		return nil, internal("list budgets", err)
	}

	query, err := filter.Build(ownerID, filter.Params{
		Kind:           filter.KindExpense,
		PeriodShortcut: filter.ShortcutCurrent,
	}, now)
	if err != nil {
		return nil, filterError("build expense query", err)
	}
	expenses, err := s.storage.Transactions.List(ctx, query)
	if err != nil {
		return nil, internal("list expenses", err)
	}

	byCategory := make(map[string]*BudgetStatus)
	entry := func(category string) *BudgetStatus {
		status, ok := byCategory[category]
		if !ok {
			status = &BudgetStatus{Category: category, Budget: decimal.Zero, Spent: decimal.Zero}
			byCategory[category] = status
		}
		return status
	}
	for _, budget := range budgets {
		entry(budget.Category).Budget = budget.Amount
	}
	for _, expense := range expenses {
		status := entry(expense.Category)
		status.Spent = status.Spent.Add(expense.Amount)
	}

	hundred := decimal.NewFromInt(100)
	result := make([]BudgetStatus, 0, len(byCategory))
	for _, status := range byCategory {
		status.Remaining = status.Budget.Sub(status.Spent)
		status.PercentUsed = decimal.Zero
		if status.Budget.IsPositive() {
			status.PercentUsed = status.Spent.Div(status.Budget).Mul(hundred).Round(1)
		}
		result = append(result, *status)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}

func budgetFromRow(row *sqlconfig.Budget) Budget {
	return Budget{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Category:  row.Category,
		Amount:    row.Amount,
		Month:     row.Month,
		Year:      row.Year,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
