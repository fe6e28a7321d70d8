// Package memory is an in-process storage backend with the same contracts as
// the Postgres tables. It backs local runs and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/period"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

var (
	_ sqlconfig.ITransactionTable = (*TransactionsTable)(nil)
	_ sqlconfig.IBudgetTable      = (*BudgetsTable)(nil)
	_ sqlconfig.IUserTable        = (*UsersTable)(nil)
)

// TransactionsTable keeps rows in insertion order.
type TransactionsTable struct {
	mu   sync.Mutex
	seq  int64
	rows []*sqlconfig.Transaction
}

func NewTransactionsTable() *TransactionsTable {
	return &TransactionsTable{}
}

func (t *TransactionsTable) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	row := &sqlconfig.Transaction{
		ID:          id,
		Seq:         t.seq,
		OwnerID:     create.OwnerID,
		Description: create.Description,
		Amount:      create.Amount,
		Kind:        create.Kind,
		Category:    create.Category,
		OccurredAt:  create.OccurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.rows = append(t.rows, row)
	copied := *row
	return &copied, nil
}

func (t *TransactionsTable) List(_ context.Context, query filter.TransactionQuery) ([]*sqlconfig.Transaction, error) {
	t.mu.Lock()
	result := make([]*sqlconfig.Transaction, 0)
	for _, row := range t.rows {
		if query.Matches(row.Record()) {
			copied := *row
			result = append(result, &copied)
		}
	}
	t.mu.Unlock()

	// rows are already in seq order, so a stable sort keeps insertion order on ties
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].OccurredAt.After(result[j].OccurredAt)
	})
	return result, nil
}

func (t *TransactionsTable) Update(_ context.Context, ownerID, id uuid.UUID, update *sqlconfig.TransactionUpdate) (*sqlconfig.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row := t.find(ownerID, id)
	if row == nil {
		return nil, sqlconfig.ErrNotFound
	}
	if update.Description != nil {
		row.Description = *update.Description
	}
	if update.Amount != nil {
		row.Amount = *update.Amount
	}
	if update.Kind != nil {
		row.Kind = *update.Kind
	}
	if update.Category != nil {
		row.Category = *update.Category
	}
	if update.OccurredAt != nil {
		row.OccurredAt = *update.OccurredAt
	}
	row.UpdatedAt = time.Now()

	copied := *row
	return &copied, nil
}

func (t *TransactionsTable) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, row := range t.rows {
		if row.ID == id && row.OwnerID == ownerID {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return sqlconfig.ErrNotFound
}

func (t *TransactionsTable) find(ownerID, id uuid.UUID) *sqlconfig.Transaction {
	for _, row := range t.rows {
		if row.ID == id && row.OwnerID == ownerID {
			return row
		}
	}
	return nil
}

type budgetKey struct {
	ownerID  uuid.UUID
	category string
	period   period.Period
}

// BudgetsTable enforces one row per (owner, category, period).
type BudgetsTable struct {
	mu   sync.Mutex
	rows map[budgetKey]*sqlconfig.Budget
}

func NewBudgetsTable() *BudgetsTable {
	return &BudgetsTable{rows: make(map[budgetKey]*sqlconfig.Budget)}
}

func (t *BudgetsTable) Upsert(_ context.Context, upsert *sqlconfig.BudgetUpsert) (*sqlconfig.Budget, error) {
	key := budgetKey{ownerID: upsert.OwnerID, category: upsert.Category, period: upsert.Period}
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[key]
	if ok {
		row.Amount = upsert.Amount
		row.UpdatedAt = now
	} else {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		row = &sqlconfig.Budget{
			ID:        id,
			OwnerID:   upsert.OwnerID,
			Category:  upsert.Category,
			Amount:    upsert.Amount,
			Month:     upsert.Period.Month,
			Year:      upsert.Period.Year,
			CreatedAt: now,
			UpdatedAt: now,
		}
		t.rows[key] = row
	}

	copied := *row
	return &copied, nil
}

func (t *BudgetsTable) ListForPeriod(_ context.Context, ownerID uuid.UUID, p period.Period) ([]*sqlconfig.Budget, error) {
	t.mu.Lock()
	result := make([]*sqlconfig.Budget, 0)
	for key, row := range t.rows {
		if key.ownerID == ownerID && key.period == p {
			copied := *row
			result = append(result, &copied)
		}
	}
	t.mu.Unlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// UsersTable is keyed by normalised email.
type UsersTable struct {
	mu      sync.Mutex
	byEmail map[string]*sqlconfig.User
}

func NewUsersTable() *UsersTable {
	return &UsersTable{byEmail: make(map[string]*sqlconfig.User)}
}

func (t *UsersTable) Insert(_ context.Context, email, passwordHash string) (*sqlconfig.User, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byEmail[email]; exists {
		return nil, sqlconfig.ErrUniqueViolation
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &sqlconfig.User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	t.byEmail[email] = user

	copied := *user
	return &copied, nil
}

func (t *UsersTable) FindByEmail(_ context.Context, email string) (*sqlconfig.User, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	user, ok := t.byEmail[email]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	copied := *user
	return &copied, nil
}
