package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

type Status struct {
	Category    string             `json:"category"`
	Budget      handlerutil.Amount `json:"budget" doc:"0 when no budget is set"`
	Spent       handlerutil.Amount `json:"spent" doc:"Expenses this month"`
	Remaining   handlerutil.Amount `json:"remaining" doc:"Negative when over budget"`
	PercentUsed handlerutil.Amount `json:"percentUsed" doc:"Spent as a percentage of the budget, 0 without a budget"`
}

type BudgetStatusOutput struct {
	Body []Status
}

type budgetStatusReader interface {
	BudgetStatus(ctx context.Context, ownerID uuid.UUID) ([]service.BudgetStatus, error)
}

// BudgetStatusHandler handles GET /budgets/status.
type BudgetStatusHandler struct {
	BudgetService budgetStatusReader
}

func NewBudgetStatusHandler(svc budgetStatusReader) *BudgetStatusHandler {
	return &BudgetStatusHandler{BudgetService: svc}
}

func (h *BudgetStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-status",
		Method:      http.MethodGet,
		Path:        "/budgets/status",
		Summary:     "Budget status",
		Description: "Compares this month's budgets with this month's expenses per category.",
		Tags:        []string{"Budgets"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *BudgetStatusHandler) handle(ctx context.Context, _ *struct{}) (*BudgetStatusOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := h.BudgetService.BudgetStatus(ctx, ownerID)
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	out := &BudgetStatusOutput{Body: make([]Status, len(statuses))}
	for i, s := range statuses {
		out.Body[i] = Status{
			Category:    s.Category,
			Budget:      handlerutil.NewAmount(s.Budget),
			Spent:       handlerutil.NewAmount(s.Spent),
			Remaining:   handlerutil.NewAmount(s.Remaining),
			PercentUsed: handlerutil.NewAmount(s.PercentUsed),
		}
	}
	return out, nil
}
