package transaction

import (
	"time"

	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string             `json:"id" doc:"Transaction UUID"`
	OwnerID     string             `json:"ownerId" doc:"Owner UUID"`
	Description string             `json:"description"`
	Amount      handlerutil.Amount `json:"amount" doc:"Positive amount; the kind gives the direction"`
	Kind        string             `json:"kind" enum:"income,expense"`
	Category    string             `json:"category"`
	OccurredAt  time.Time          `json:"occurredAt"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// TransactionBody is the request body for create and update. Every field is
// optional at the schema level; create requires all but occurredAt.
type TransactionBody struct {
	Description *string                `json:"description,omitempty" doc:"What the money was for"`
	Amount      handlerutil.FlexAmount `json:"amount,omitempty" doc:"Greater than 0, as a number or numeric string"`
	Kind        *string                `json:"kind,omitempty" doc:"income or expense"`
	Category    *string                `json:"category,omitempty" doc:"Free-text category, see GET /categories"`
	OccurredAt  *string                `json:"occurredAt,omitempty" doc:"YYYY-MM-DD or RFC 3339; defaults to now on create"`
}

func (b TransactionBody) fields() service.TransactionFields {
	return service.TransactionFields{
		Description: b.Description,
		Amount:      b.Amount.Text(),
		Kind:        b.Kind,
		Category:    b.Category,
		OccurredAt:  b.OccurredAt,
	}
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		OwnerID:     tx.OwnerID.String(),
		Description: tx.Description,
		Amount:      handlerutil.NewAmount(tx.Amount),
		Kind:        tx.Kind,
		Category:    tx.Category,
		OccurredAt:  tx.OccurredAt,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
