package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/events"
	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/logging"
	"github.com/Purvi1411/expense-tracker/internal/storage"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	notifier Notifier
	now      Clock
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, notifier Notifier, clock Clock) *TransactionService {
	return &TransactionService{storage: store, notifier: notifier, now: clockOrDefault(clock)}
}

// CreateTransaction validates fields and stores a transaction owned by ownerID.
// occurredAt defaults to the current time.
func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID uuid.UUID, fields TransactionFields) (Transaction, error) {
	now := s.now()
	valid, err := validateTransactionFields(fields, true, now.Location())
	if err != nil {
		return Transaction{}, err
	}

	occurredAt := now
	if valid.occurredAt != nil {
		occurredAt = *valid.occurredAt
	}

	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		OwnerID:     ownerID,
		Description: *valid.description,
		Amount:      *valid.amount,
		Kind:        *valid.kind,
		Category:    *valid.category,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return Transaction{}, internal("insert transaction", err)
	}

	notify(ctx, s.notifier, events.New(events.TransactionCreated, ownerID, row.ID))
	return transactionFromRow(row), nil
}

// ListTransactions returns the owner's transactions matching params, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID, params filter.Params) ([]Transaction, error) {
	query, err := filter.Build(ownerID, params, s.now())
	if err != nil {
		return nil, filterError("build transaction query", err)
	}

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("listTransactionsQueryMs")
	}
	rows, err := s.storage.Transactions.List(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, internal("list transactions", err)
	}

	result := make([]Transaction, len(rows))
	for i, row := range rows {
		result[i] = transactionFromRow(row)
	}
	return result, nil
}

// UpdateTransaction applies the present fields. A transaction that does not
// exist and one owned by someone else both yield NotFoundError.
func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID, id uuid.UUID, fields TransactionFields) (Transaction, error) {
	valid, err := validateTransactionFields(fields, false, s.now().Location())
	if err != nil {
		return Transaction{}, err
	}

	row, err := s.storage.Transactions.Update(ctx, ownerID, id, &sqlconfig.TransactionUpdate{
		Description: valid.description,
		Amount:      valid.amount,
		Kind:        valid.kind,
		Category:    valid.category,
		OccurredAt:  valid.occurredAt,
	})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return Transaction{}, &NotFoundError{Resource: "transaction"}
	}
	if err != nil {
		return Transaction{}, internal("update transaction", err)
	}

	notify(ctx, s.notifier, events.New(events.TransactionUpdated, ownerID, row.ID))
	return transactionFromRow(row), nil
}

// DeleteTransaction follows the same not-found rule as UpdateTransaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.storage.Transactions.Delete(ctx, ownerID, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return &NotFoundError{Resource: "transaction"}
	}
	if err != nil {
		return internal("delete transaction", err)
	}

	notify(ctx, s.notifier, events.New(events.TransactionDeleted, ownerID, id))
	return nil
}
