package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        string
	Category    string
	OccurredAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionFields carries client input before validation. Nil means the
// field was not sent; Amount and OccurredAt are still in their text form.
type TransactionFields struct {
	Description *string
	Amount      *string
	Kind        *string
	Category    *string
	OccurredAt  *string
}

func transactionFromRow(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Description: row.Description,
		Amount:      row.Amount,
		Kind:        row.Kind,
		Category:    row.Category,
		OccurredAt:  row.OccurredAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
