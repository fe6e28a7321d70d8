package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/report"
)

type ExpenseTrendsOutput struct {
	Body Trends
}

type trendReader interface {
	ExpenseTrends(ctx context.Context, ownerID uuid.UUID) (report.Trends, error)
}

// ExpenseTrendsHandler handles GET /reports/expense-trends.
type ExpenseTrendsHandler struct {
	ReportService trendReader
}

func NewExpenseTrendsHandler(svc trendReader) *ExpenseTrendsHandler {
	return &ExpenseTrendsHandler{ReportService: svc}
}

func (h *ExpenseTrendsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expense-trends",
		Method:      http.MethodGet,
		Path:        "/reports/expense-trends",
		Summary:     "Expense trends",
		Tags:        []string{"Reports"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ExpenseTrendsHandler) handle(ctx context.Context, _ *struct{}) (*ExpenseTrendsOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	trends, err := h.ReportService.ExpenseTrends(ctx, ownerID)
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	return &ExpenseTrendsOutput{Body: Trends{
		Week:  handlerutil.NewAmount(trends.Week),
		Month: handlerutil.NewAmount(trends.Month),
		Year:  handlerutil.NewAmount(trends.Year),
	}}, nil
}
