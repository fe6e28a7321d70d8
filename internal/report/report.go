// Package report aggregates a single owner's transactions into the series and
// breakdowns the dashboard charts consume.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Purvi1411/expense-tracker/internal/period"
)

const kindIncome = "income"

// Entry is one transaction as seen by the aggregations.
type Entry struct {
	Amount     decimal.Decimal
	Kind       string
	Category   string
	OccurredAt time.Time
	CreatedAt  time.Time
}

// When returns the instant used for bucketing: OccurredAt, or CreatedAt when
// OccurredAt was never recorded.
func (e Entry) When() time.Time {
	if e.OccurredAt.IsZero() {
		return e.CreatedAt
	}
	return e.OccurredAt
}

func (e Entry) isIncome() bool {
	return strings.EqualFold(strings.TrimSpace(e.Kind), kindIncome)
}

// MonthlyTotal is one bucket of the monthly summary. Month is zero-based.
type MonthlyTotal struct {
	Year         int
	Month        int
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// MonthlySummary buckets entries by calendar month in loc and returns one row
// per non-empty bucket, oldest first. Anything that is not income counts as expense.
func MonthlySummary(entries []Entry, loc *time.Location) []MonthlyTotal {
	buckets := make(map[period.Period]*MonthlyTotal)
	for _, e := range entries {
		key := period.Of(e.When().In(loc))
		bucket, ok := buckets[key]
		if !ok {
			bucket = &MonthlyTotal{
				Year:         key.Year,
				Month:        key.Month,
				TotalIncome:  decimal.Zero,
				TotalExpense: decimal.Zero,
			}
			buckets[key] = bucket
		}
		if e.isIncome() {
			bucket.TotalIncome = bucket.TotalIncome.Add(e.Amount)
		} else {
			bucket.TotalExpense = bucket.TotalExpense.Add(e.Amount)
		}
	}

	result := make([]MonthlyTotal, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return period.Period{Month: result[i].Month, Year: result[i].Year}.
			Before(period.Period{Month: result[j].Month, Year: result[j].Year})
	})
	return result
}

// CategoryTotal is the sum and count of entries sharing a category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// CategoryBreakdown groups entries by category, largest total first and ties by name.
// Entries without a category are reported as "Uncategorized".
func CategoryBreakdown(entries []Entry) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = "Uncategorized"
		}
		total, ok := totals[category]
		if !ok {
			total = &CategoryTotal{Category: category, Total: decimal.Zero}
			totals[category] = total
		}
		total.Total = total.Total.Add(e.Amount)
		total.Count++
	}

	result := make([]CategoryTotal, 0, len(totals))
	for _, total := range totals {
		result = append(result, *total)
	}
	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Total.Cmp(result[j].Total); cmp != 0 {
			return cmp > 0
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// Trends holds expense totals since the start of the current week, month and year.
type Trends struct {
	Week  decimal.Decimal
	Month decimal.Decimal
	Year  decimal.Decimal
}

// ExpenseTrends sums expense entries dated on or after each period start, relative to now.
// Weeks start on Sunday.
func ExpenseTrends(entries []Entry, now time.Time) Trends {
	weekStart := period.StartOfWeek(now)
	monthStart, _ := period.MonthBounds(now)
	yearStart := period.StartOfYear(now)

	trends := Trends{Week: decimal.Zero, Month: decimal.Zero, Year: decimal.Zero}
	for _, e := range entries {
		if e.isIncome() {
			continue
		}
		when := e.When()
		if !when.Before(weekStart) {
			trends.Week = trends.Week.Add(e.Amount)
		}
		if !when.Before(monthStart) {
			trends.Month = trends.Month.Add(e.Amount)
		}
		if !when.Before(yearStart) {
			trends.Year = trends.Year.Add(e.Amount)
		}
	}
	return trends
}
