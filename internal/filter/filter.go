// Package filter turns the optional list parameters a client may send into a
// single owner-scoped transaction query.
package filter

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/period"
)

const (
	// All disables the kind or category constraint.
	All = "all"
	// ShortcutCurrent scopes the query to the current calendar month.
	ShortcutCurrent = "current"

	KindIncome  = "income"
	KindExpense = "expense"
)

// Params are the raw, optional filter values as received from a client.
type Params struct {
	Search         string
	Kind           string
	Category       string
	StartDate      string
	EndDate        string
	PeriodShortcut string
}

// InvalidFilterError reports a filter parameter that could not be interpreted.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid %s filter %q", e.Field, e.Value)
}

// Record is the subset of a stored transaction a query is evaluated against.
type Record struct {
	OwnerID     uuid.UUID
	Description string
	Kind        string
	Category    string
	OccurredAt  time.Time
}

// TransactionQuery is an immutable, owner-scoped predicate over transactions.
// Results are always ordered by occurredAt descending, ties in insertion order.
type TransactionQuery struct {
	ownerID  uuid.UUID
	search   string
	kind     string
	category string
	from     time.Time
	to       time.Time
	hasFrom  bool
	hasTo    bool
}

// ForOwner returns a query matching every transaction of ownerID.
func ForOwner(ownerID uuid.UUID) TransactionQuery {
	return TransactionQuery{ownerID: ownerID}
}

// Build composes the query for ownerID from params. now supplies both the
// current month for the "current" shortcut and the location dates are read in.
// A shortcut other than "current" is ignored and the date range applies.
func Build(ownerID uuid.UUID, params Params, now time.Time) (TransactionQuery, error) {
	q := ForOwner(ownerID)

	if !utf8.ValidString(params.Search) {
		return TransactionQuery{}, &InvalidFilterError{Field: "search", Value: params.Search}
	}
	if strings.TrimSpace(params.Search) != "" {
		q.search = params.Search
	}

	kind := strings.ToLower(strings.TrimSpace(params.Kind))
	switch kind {
	case "", All:
	case KindIncome, KindExpense:
		q.kind = kind
	default:
		return TransactionQuery{}, &InvalidFilterError{Field: "kind", Value: params.Kind}
	}

	category := strings.TrimSpace(params.Category)
	if category != "" && !strings.EqualFold(category, All) {
		q.category = category
	}

	if strings.TrimSpace(params.PeriodShortcut) == ShortcutCurrent {
		q.from, q.to = period.MonthBounds(now)
		q.hasFrom, q.hasTo = true, true
		return q, nil
	}

	if params.StartDate != "" {
		day, err := period.ParseDate(params.StartDate, now.Location())
		if err != nil {
			return TransactionQuery{}, &InvalidFilterError{Field: "startDate", Value: params.StartDate}
		}
		q.from, q.hasFrom = period.StartOfDay(day), true
	}
	if params.EndDate != "" {
		day, err := period.ParseDate(params.EndDate, now.Location())
		if err != nil {
			return TransactionQuery{}, &InvalidFilterError{Field: "endDate", Value: params.EndDate}
		}
		q.to, q.hasTo = period.EndOfDay(day), true
	}

	return q, nil
}

// WithKind returns a copy of q constrained to kind.
func (q TransactionQuery) WithKind(kind string) TransactionQuery {
	q.kind = kind
	return q
}

func (q TransactionQuery) OwnerID() uuid.UUID { return q.ownerID }
func (q TransactionQuery) Search() string     { return q.search }
func (q TransactionQuery) Kind() string       { return q.kind }
func (q TransactionQuery) Category() string   { return q.category }

// From returns the inclusive lower bound on occurredAt, if any.
func (q TransactionQuery) From() (time.Time, bool) { return q.from, q.hasFrom }

// To returns the inclusive upper bound on occurredAt, if any.
func (q TransactionQuery) To() (time.Time, bool) { return q.to, q.hasTo }

// Matches evaluates the predicate against r.
func (q TransactionQuery) Matches(r Record) bool {
	if r.OwnerID != q.ownerID {
		return false
	}
	if q.search != "" && !strings.Contains(strings.ToLower(r.Description), strings.ToLower(q.search)) {
		return false
	}
	if q.kind != "" && r.Kind != q.kind {
		return false
	}
	if q.category != "" && r.Category != q.category {
		return false
	}
	if q.hasFrom && r.OccurredAt.Before(q.from) {
		return false
	}
	if q.hasTo && r.OccurredAt.After(q.to) {
		return false
	}
	return true
}
