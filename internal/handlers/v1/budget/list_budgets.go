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

type ListBudgetsOutput struct {
	Body []Budget
}

type budgetLister interface {
	ListBudgets(ctx context.Context, ownerID uuid.UUID) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/budgets",
		Summary:     "List budgets",
		Description: "Returns the caller's budgets for the current month. Categories without a row have no budget.",
		Tags:        []string{"Budgets"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, _ *struct{}) (*ListBudgetsOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	budgets, err := h.BudgetService.ListBudgets(ctx, ownerID)
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	out := &ListBudgetsOutput{Body: make([]Budget, len(budgets))}
	for i, b := range budgets {
		out.Body[i] = fromService(b)
	}
	return out, nil
}
