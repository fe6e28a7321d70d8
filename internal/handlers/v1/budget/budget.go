package budget

import (
	"time"

	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID        string             `json:"id" doc:"Budget UUID"`
	OwnerID   string             `json:"ownerId" doc:"Owner UUID"`
	Category  string             `json:"category"`
	Amount    handlerutil.Amount `json:"amount" doc:"Spending cap, 0 or more"`
	Month     int                `json:"month" minimum:"0" maximum:"11" doc:"Zero-based month"`
	Year      int                `json:"year"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func fromService(b service.Budget) Budget {
	return Budget{
		ID:        b.ID.String(),
		OwnerID:   b.OwnerID.String(),
		Category:  b.Category,
		Amount:    handlerutil.NewAmount(b.Amount),
		Month:     b.Month,
		Year:      b.Year,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
