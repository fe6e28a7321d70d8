package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/period"
)

const (
	maxCategoryLength = 64
	amountPlaces      = 2

	// Exponent bounds keep inputs like "1e999999999" away from big-int rescaling.
	minAmountExponent = -64
	maxAmountExponent = 12
)

// maxAmount is the largest value a NUMERIC(14, 2) column holds.
var maxAmount = decimal.New(99999999999999, -amountPlaces)

// validatedFields is TransactionFields after parsing; nil still means "not sent".
type validatedFields struct {
	description *string
	amount      *decimal.Decimal
	kind        *string
	category    *string
	occurredAt  *time.Time
}

// validateTransactionFields parses and checks every present field. With
// requireAll set, description, amount, kind and category must be present.
func validateTransactionFields(in TransactionFields, requireAll bool, loc *time.Location) (validatedFields, error) {
	var out validatedFields
	v := &ValidationError{}

	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			v.add("description", "must not be empty")
		} else {
			out.description = &description
		}
	} else if requireAll {
		v.add("description", "is required")
	}

	if in.Amount != nil {
		amount, reason := parsePositiveAmount(*in.Amount)
		if reason != "" {
			v.add("amount", reason)
		} else {
			out.amount = &amount
		}
	} else if requireAll {
		v.add("amount", "is required")
	}

	if in.Kind != nil {
		kind := strings.ToLower(strings.TrimSpace(*in.Kind))
		if kind != filter.KindIncome && kind != filter.KindExpense {
			v.add("kind", "must be income or expense")
		} else {
			out.kind = &kind
		}
	} else if requireAll {
		v.add("kind", "is required")
	}

	if in.Category != nil {
		category, reason := normalizeCategory(*in.Category)
		if reason != "" {
			v.add("category", reason)
		} else {
			out.category = &category
		}
	} else if requireAll {
		v.add("category", "is required")
	}

	if in.OccurredAt != nil && strings.TrimSpace(*in.OccurredAt) != "" {
		occurredAt, err := period.ParseDate(*in.OccurredAt, loc)
		if err != nil {
			v.add("occurredAt", "must be YYYY-MM-DD or an RFC 3339 timestamp")
		} else {
			out.occurredAt = &occurredAt
		}
	}

	return out, v.orNil()
}

// parseAmount reads raw and rounds it to cents. tooLarge is set when the
// value cannot be stored.
func parseAmount(raw string) (amount decimal.Decimal, ok, tooLarge bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || amount.Exponent() < minAmountExponent {
		return decimal.Zero, false, false
	}
	if amount.IsZero() {
		return decimal.Zero, true, false
	}
	if amount.Exponent() > maxAmountExponent {
		return decimal.Zero, true, true
	}
	amount = amount.Round(amountPlaces)
	if amount.Abs().GreaterThan(maxAmount) {
		return decimal.Zero, true, true
	}
	return amount, true, false
}

func parsePositiveAmount(raw string) (decimal.Decimal, string) {
	amount, ok, tooLarge := parseAmount(raw)
	switch {
	case !ok:
		return decimal.Zero, "must be a number"
	case tooLarge:
		return decimal.Zero, "is too large"
	case !amount.IsPositive():
		return decimal.Zero, "must be greater than 0"
	}
	return amount, ""
}

// coerceBudgetAmount never fails: missing, malformed, negative or oversized
// input becomes 0.
func coerceBudgetAmount(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	amount, ok, tooLarge := parseAmount(*raw)
	if !ok || tooLarge || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

func normalizeCategory(raw string) (string, string) {
	category := strings.TrimSpace(raw)
	if category == "" {
		return "", "must not be empty"
	}
	if utf8.RuneCountInString(category) > maxCategoryLength {
		return "", "must be at most 64 characters"
	}
	return category, ""
}
