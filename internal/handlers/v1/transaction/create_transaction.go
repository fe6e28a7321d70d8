package transaction

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

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body TransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, fields service.TransactionFields) (service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		Summary:       "Create transaction",
		Description:   "Records an income or expense for the caller.",
		Tags:          []string{"Transactions"},
		Security:      auth.BearerSecurity,
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.CreateTransaction(ctx, ownerID, input.Body.fields())
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", tx.ID.String())
	}
	return &CreateTransactionOutput{Body: fromService(tx)}, nil
}
