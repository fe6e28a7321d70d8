package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/auth"
	"github.com/Purvi1411/expense-tracker/internal/handlers/v1/handlerutil"
	"github.com/Purvi1411/expense-tracker/internal/service"
)

type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, fields service.TransactionFields) (service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Changes only the fields sent. Unknown ids and other users' ids both return 404.",
		Tags:        []string{"Transactions"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	ownerID, err := handlerutil.Owner(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlerutil.PathID(ctx, input.ID, "transaction")
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.UpdateTransaction(ctx, ownerID, id, input.Body.fields())
	if err != nil {
		return nil, handlerutil.ServiceError(ctx, err)
	}
	return &UpdateTransactionOutput{Body: fromService(tx)}, nil
}
