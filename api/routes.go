package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/budget"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/category"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/reports"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/status"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/transaction"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/user"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
	"github.com/Purvi1411/expense-tracker/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    int
	Service *service.Service
	Tokens  *auth.TokenIssuer
	Storage *storage.Storage
}

// Handler builds the huma API on a ServeMux. Middleware is installed before any
// operation is registered so every operation gets it.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Expense Tracker API", "1.0.0"))
	auth.AddSecurityScheme(api)

	api.UseMiddleware(logging.Middleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.Tokens))

	statusHandler := status.NewHandler(nil)
	if r.Storage != nil && r.Storage.DB != nil {
		statusHandler = status.NewHandler(r.Storage.DB)
	}
	statusHandler.Register(api)

	user.NewRegisterHandler(r.Service.Auth).Register(api)
	user.NewLoginHandler(r.Service.Auth).Register(api)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)

	budget.NewListBudgetsHandler(r.Service.Budget).Register(api)
	budget.NewSetBudgetHandler(r.Service.Budget).Register(api)
	budget.NewBudgetStatusHandler(r.Service.Budget).Register(api)

	reports.NewMonthlySummaryHandler(r.Service.Report).Register(api)
	reports.NewCategoryBreakdownHandler(r.Service.Report).Register(api)
	reports.NewExpenseTrendsHandler(r.Service.Report).Register(api)

	category.NewHandler(service.SuggestedCategories).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + strconv.Itoa(r.Port),
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
