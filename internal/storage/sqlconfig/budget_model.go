package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Purvi1411/expense-tracker/internal/period"
)

// Budget is the spending cap for one category in one period. Month is zero-based.
type Budget struct {
	ID        uuid.UUID       `db:"id"`
	OwnerID   uuid.UUID       `db:"owner_id"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	Month     int             `db:"month"`
	Year      int             `db:"year"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Period returns the budget's (month, year) key.
func (b *Budget) Period() period.Period {
	return period.Period{Month: b.Month, Year: b.Year}
}

// BudgetUpsert is the input for setting a budget; the row is keyed by
// (OwnerID, Category, Period).
type BudgetUpsert struct {
	OwnerID  uuid.UUID
	Category string
	Amount   decimal.Decimal
	Period   period.Period
}

// IBudgetTable defines the interface for budget storage operations.
type IBudgetTable interface {
	// Upsert atomically inserts the budget or overwrites the amount of the existing row.
	Upsert(ctx context.Context, upsert *BudgetUpsert) (*Budget, error)
	ListForPeriod(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*Budget, error)
}
