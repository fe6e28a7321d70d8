package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
)

type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction UUID"`
}

type DeleteTransactionOutput struct {
	Body struct {
		Message string `json:"message" example:"Transaction deleted"`
	}
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete transaction",
		Tags:        []string{"Transactions"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlerutil.PathID(ctx, input.ID, "transaction")
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, ownerID, id); err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}

	out := &DeleteTransactionOutput{}
	out.Body.Message = "Transaction deleted"
	return out, nil
}
