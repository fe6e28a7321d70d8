package reports

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/report"
)

type MonthlySummaryOutput struct {
	Body []MonthlyTotal
}

type monthlySummarizer interface {
	MonthlySummary(ctx context.Context, ownerID uuid.UUID) ([]report.MonthlyTotal, error)
}

// MonthlySummaryHandler handles GET /reports/monthly-summary.
type MonthlySummaryHandler struct {
	ReportService monthlySummarizer
}

func NewMonthlySummaryHandler(svc monthlySummarizer) *MonthlySummaryHandler {
	return &MonthlySummaryHandler{ReportService: svc}
}

func (h *MonthlySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodGet,
		Path:        "/reports/monthly-summary",
		Summary:     "Monthly summary",
		Description: "Income and expense totals per calendar month, oldest first. Months without transactions are omitted.",
		Tags:        []string{"Reports"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *MonthlySummaryHandler) handle(ctx context.Context, _ *struct{}) (*MonthlySummaryOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := h.ReportService.MonthlySummary(ctx, ownerID)
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("monthCount", len(totals))
	}

	out := &MonthlySummaryOutput{Body: make([]MonthlyTotal, len(totals))}
	for i, t := range totals {
		out.Body[i] = MonthlyTotal{
			Year:         t.Year,
			Month:        t.Month,
			TotalIncome:  handlerutil.NewAmount(t.TotalIncome),
			TotalExpense: handlerutil.NewAmount(t.TotalExpense),
		}
	}
	return out, nil
}
