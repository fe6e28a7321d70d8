package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	handlerutil.FilterQuery
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

type transactionLister interface {
	ListTransactions(ctx context.Context, ownerID uuid.UUID, params filter.Params) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions matching the filters, newest first.",
		Tags:        []string{"Transactions"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := h.TransactionService.ListTransactions(ctx, ownerID, input.Params())
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	out := &ListTransactionsOutput{Body: make([]Transaction, len(transactions))}
	for i, tx := range transactions {
		out.Body[i] = fromService(tx)
	}
	return out, nil
}
