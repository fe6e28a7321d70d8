package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Purvi1411/expense-tracker/internal/filter"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Seq         int64           `db:"seq"`
	OwnerID     uuid.UUID       `db:"owner_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Kind        string          `db:"kind"`
	Category    string          `db:"category"`
	OccurredAt  time.Time       `db:"occurred_at"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// Record returns the fields a filter.TransactionQuery is evaluated against.
func (t *Transaction) Record() filter.Record {
	return filter.Record{
		OwnerID:     t.OwnerID,
		Description: t.Description,
		Kind:        t.Kind,
		Category:    t.Category,
		OccurredAt:  t.OccurredAt,
	}
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerID     uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        string
	Category    string
	OccurredAt  time.Time
}

// TransactionUpdate is a partial patch. Nil fields are left untouched.
type TransactionUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Kind        *string
	Category    *string
	OccurredAt  *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// Every method is scoped to a single owner; Update and Delete return ErrNotFound
// when the id is unknown or owned by someone else.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, query filter.TransactionQuery) ([]*Transaction, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
