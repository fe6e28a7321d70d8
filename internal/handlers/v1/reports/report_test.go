package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/report"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) MonthlySummary(ctx context.Context, ownerID uuid.UUID) ([]report.MonthlyTotal, error) {
	args := m.Called(ctx, ownerID)
	totals, _ := args.Get(0).([]report.MonthlyTotal)
	return totals, args.Error(1)
}

func (m *mockReportService) CategoryBreakdown(ctx context.Context, ownerID uuid.UUID, params filter.Params) ([]report.CategoryTotal, error) {
	args := m.Called(ctx, ownerID, params)
	totals, _ := args.Get(0).([]report.CategoryTotal)
	return totals, args.Error(1)
}

func (m *mockReportService) ExpenseTrends(ctx context.Context, ownerID uuid.UUID) (report.Trends, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(report.Trends), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockReportService, owner uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithOwner(ctx.Context(), owner)))
	})
	NewMonthlySummaryHandler(svc).Register(api)
	NewCategoryBreakdownHandler(svc).Register(api)
	NewExpenseTrendsHandler(svc).Register(api)
	return api
}

func TestHTTP_MonthlySummary(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockReportService)
	svc.On("MonthlySummary", mock.Anything, owner).Return([]report.MonthlyTotal{
		{Year: 2024, Month: 0, TotalIncome: decimal.NewFromInt(100), TotalExpense: decimal.NewFromInt(40)},
		{Year: 2024, Month: 1, TotalIncome: decimal.Zero, TotalExpense: decimal.NewFromInt(10)},
	}, nil)

	resp := newTestAPI(t, svc, owner).Get("/reports/monthly-summary")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[
		{"year":2024,"month":0,"totalIncome":100,"totalExpense":40},
		{"year":2024,"month":1,"totalIncome":0,"totalExpense":10}
	]`, resp.Body.String())
}

func TestHTTP_MonthlySummary_Empty(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockReportService)
	svc.On("MonthlySummary", mock.Anything, owner).Return([]report.MonthlyTotal{}, nil)

	resp := newTestAPI(t, svc, owner).Get("/reports/monthly-summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestHTTP_CategoryBreakdown(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockReportService)
	svc.On("CategoryBreakdown", mock.Anything, owner, filter.Params{PeriodShortcut: "current"}).Return([]report.CategoryTotal{
		{Category: "Food", Total: decimal.RequireFromString("12.5"), Count: 2},
	}, nil)

	resp := newTestAPI(t, svc, owner).Get("/reports/category-breakdown?periodShortcut=current")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"category":"Food","total":12.5,"count":2}]`, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_CategoryBreakdown_InvalidFilter(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockReportService)
	svc.On("CategoryBreakdown", mock.Anything, owner, mock.Anything).
		Return(nil, &service.ValidationError{Fields: map[string]string{"kind": `invalid value "refund"`}})

	resp := newTestAPI(t, svc, owner).Get("/reports/category-breakdown?kind=refund")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ExpenseTrends(t *testing.T) {
	owner := uuid.Must(uuid.NewV4())
	svc := new(mockReportService)
	svc.On("ExpenseTrends", mock.Anything, owner).Return(report.Trends{
		Week:  decimal.NewFromInt(1),
		Month: decimal.NewFromInt(3),
		Year:  decimal.NewFromInt(7),
	}, nil)

	resp := newTestAPI(t, svc, owner).Get("/reports/expense-trends")

	require.Equal(t, http.StatusOK, resp.Code)
	var body Trends
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Year.Decimal().Equal(decimal.NewFromInt(7)))
	assert.True(t, body.Week.Decimal().Equal(decimal.NewFromInt(1)))
}
