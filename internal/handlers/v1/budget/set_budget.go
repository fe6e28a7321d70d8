package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

// SetBudgetBody is the request body for setting a budget.
type SetBudgetBody struct {
	Category string                 `json:"category,omitempty" doc:"Category the cap applies to"`
	Amount   handlerutil.FlexAmount `json:"amount,omitempty" doc:"Cap for this month; missing, invalid or negative values are stored as 0"`
}

type SetBudgetInput struct {
	Body SetBudgetBody
}

type SetBudgetOutput struct {
	Body Budget
}

type budgetSetter interface {
	SetBudget(ctx context.Context, ownerID uuid.UUID, category string, amount *string) (service.Budget, error)
}

// SetBudgetHandler handles POST /budgets.
type SetBudgetHandler struct {
	BudgetService budgetSetter
}

func NewSetBudgetHandler(svc budgetSetter) *SetBudgetHandler {
	return &SetBudgetHandler{BudgetService: svc}
}

func (h *SetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "set-budget",
		Method:        http.MethodPost,
		Path:          "/budgets",
		Summary:       "Set budget",
		Description:   "Creates or overwrites the caller's budget for a category in the current month.",
		Tags:          []string{"Budgets"},
		Security:      auth.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SetBudgetHandler) handle(ctx context.Context, input *SetBudgetInput) (*SetBudgetOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.SetBudget(ctx, ownerID, input.Body.Category, input.Body.Amount.Text())
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("budgetID", budget.ID.String())
	}
	return &SetBudgetOutput{Body: fromService(budget)}, nil
}
