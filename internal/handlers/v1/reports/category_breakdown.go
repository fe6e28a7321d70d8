package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/report"
)

type CategoryBreakdownInput struct {
	handlerutil.FilterQuery
}

type CategoryBreakdownOutput struct {
	Body []CategoryTotal
}

type categoryBreakdowner interface {
	CategoryBreakdown(ctx context.Context, ownerID uuid.UUID, params filter.Params) ([]report.CategoryTotal, error)
}

// CategoryBreakdownHandler handles GET /reports/category-breakdown.
type CategoryBreakdownHandler struct {
	ReportService categoryBreakdowner
}

func NewCategoryBreakdownHandler(svc categoryBreakdowner) *CategoryBreakdownHandler {
	return &CategoryBreakdownHandler{ReportService: svc}
}

func (h *CategoryBreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-breakdown",
		Method:      http.MethodGet,
		Path:        "/reports/category-breakdown",
		Summary:     "Category breakdown",
		Description: "Totals per category for the transactions matching the filters. Without kind only expenses are counted.",
		Tags:        []string{"Reports"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *CategoryBreakdownHandler) handle(ctx context.Context, input *CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := h.ReportService.CategoryBreakdown(ctx, ownerID, input.Params())
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	out := &CategoryBreakdownOutput{Body: make([]CategoryTotal, len(totals))}
	for i, t := range totals {
		out.Body[i] = CategoryTotal{
			Category: t.Category,
			Total:    handlerutil.NewAmount(t.Total),
			Count:    t.Count,
		}
	}
	return out, nil
}
