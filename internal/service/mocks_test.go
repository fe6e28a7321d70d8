package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/Purvi1411/expense-tracker/internal/events"
	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/period"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*sqlconfig.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, query filter.TransactionQuery) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *sqlconfig.TransactionUpdate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, ownerID, id, update)
	row, _ := args.Get(0).(*sqlconfig.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) Upsert(ctx context.Context, upsert *sqlconfig.BudgetUpsert) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, upsert)
	row, _ := args.Get(0).(*sqlconfig.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) ListForPeriod(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*sqlconfig.Budget, error) {
	args := m.Called(ctx, ownerID, p)
	rows, _ := args.Get(0).([]*sqlconfig.Budget)
	return rows, args.Error(1)
}

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) Insert(ctx context.Context, email, passwordHash string) (*sqlconfig.User, error) {
	args := m.Called(ctx, email, passwordHash)
	user, _ := args.Get(0).(*sqlconfig.User)
	return user, args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*sqlconfig.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*sqlconfig.User)
	return user, args.Error(1)
}

// recordingNotifier keeps every event it is handed.
type recordingNotifier struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingNotifier) Notify(_ context.Context, event events.Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return true
}

func (r *recordingNotifier) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.Type, len(r.events))
	for i, event := range r.events {
		types[i] = event.Type
	}
	return types
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T {
	return &v
}

func newOwner() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
