package reports

import (
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
)

// MonthlyTotal is one month of the monthly summary. Month is zero-based.
type MonthlyTotal struct {
	Year         int                `json:"year"`
	Month        int                `json:"month" minimum:"0" maximum:"11"`
	TotalIncome  handlerutil.Amount `json:"totalIncome"`
	TotalExpense handlerutil.Amount `json:"totalExpense"`
}

type CategoryTotal struct {
	Category string             `json:"category"`
	Total    handlerutil.Amount `json:"total"`
	Count    int                `json:"count" doc:"Number of transactions in the category"`
}

// Trends holds expense totals since the start of the current week, month and year.
type Trends struct {
	Week  handlerutil.Amount `json:"week" doc:"Since Sunday 00:00"`
	Month handlerutil.Amount `json:"month"`
	Year  handlerutil.Amount `json:"year"`
}
