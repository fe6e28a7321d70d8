package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Purvi1411/expense-tracker/internal/filter"
	"github.com/Purvi1411/expense-tracker/internal/period"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

func insert(t *testing.T, table *TransactionsTable, owner uuid.UUID, description string, occurredAt time.Time) *sqlconfig.Transaction {
	t.Helper()
	row, err := table.Insert(context.Background(), &sqlconfig.TransactionCreate{
		OwnerID:     owner,
		Description: description,
		Amount:      decimal.NewFromInt(1),
		Kind:        filter.KindExpense,
		Category:    "Food",
		OccurredAt:  occurredAt,
	})
	require.NoError(t, err)
	return row
}

func TestTransactionsTable_ListOrdersNewestFirstWithStableTies(t *testing.T) {
	table := NewTransactionsTable()
	owner := uuid.Must(uuid.NewV4())
	day := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)

	insert(t, table, owner, "first tie", day)
	insert(t, table, owner, "older", day.Add(-time.Hour))
	insert(t, table, owner, "second tie", day)
	insert(t, table, owner, "newest", day.Add(time.Hour))

	rows, err := table.List(context.Background(), filter.ForOwner(owner))
	require.NoError(t, err)

	descriptions := make([]string, len(rows))
	for i, row := range rows {
		descriptions[i] = row.Description
	}
	assert.Equal(t, []string{"newest", "first tie", "second tie", "older"}, descriptions)
}

func TestTransactionsTable_ListIsOwnerScoped(t *testing.T) {
	table := NewTransactionsTable()
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())
	now := time.Now()

	insert(t, table, alice, "alice lunch", now)
	insert(t, table, bob, "bob lunch", now)

	rows, err := table.List(context.Background(), filter.ForOwner(alice))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, alice, rows[0].OwnerID)
}

func TestTransactionsTable_ListReturnsCopies(t *testing.T) {
	table := NewTransactionsTable()
	owner := uuid.Must(uuid.NewV4())
	insert(t, table, owner, "coffee", time.Now())

	rows, err := table.List(context.Background(), filter.ForOwner(owner))
	require.NoError(t, err)
	rows[0].Description = "mutated"

	rows, err = table.List(context.Background(), filter.ForOwner(owner))
	require.NoError(t, err)
	assert.Equal(t, "coffee", rows[0].Description)
}

func TestTransactionsTable_UpdateAndDeleteRequireOwner(t *testing.T) {
	table := NewTransactionsTable()
	owner := uuid.Must(uuid.NewV4())
	stranger := uuid.Must(uuid.NewV4())
	row := insert(t, table, owner, "coffee", time.Now())

	description := "tea"
	_, err := table.Update(context.Background(), stranger, row.ID, &sqlconfig.TransactionUpdate{Description: &description})
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	assert.ErrorIs(t, table.Delete(context.Background(), stranger, row.ID), sqlconfig.ErrNotFound)

	updated, err := table.Update(context.Background(), owner, row.ID, &sqlconfig.TransactionUpdate{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "tea", updated.Description)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(1)))

	require.NoError(t, table.Delete(context.Background(), owner, row.ID))
	assert.ErrorIs(t, table.Delete(context.Background(), owner, row.ID), sqlconfig.ErrNotFound)
}

func TestBudgetsTable_UpsertIsIdempotent(t *testing.T) {
	table := NewBudgetsTable()
	owner := uuid.Must(uuid.NewV4())
	current := period.Period{Month: 2, Year: 2024}
	upsert := &sqlconfig.BudgetUpsert{OwnerID: owner, Category: "Food", Amount: decimal.NewFromInt(300), Period: current}

	first, err := table.Upsert(context.Background(), upsert)
	require.NoError(t, err)
	second, err := table.Upsert(context.Background(), upsert)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	rows, err := table.ListForPeriod(context.Background(), owner, current)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(300)))
}

func TestBudgetsTable_ConcurrentUpsertsLeaveOneRow(t *testing.T) {
	table := NewBudgetsTable()
	owner := uuid.Must(uuid.NewV4())
	current := period.Period{Month: 7, Year: 2025}

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			_, err := table.Upsert(context.Background(), &sqlconfig.BudgetUpsert{
				OwnerID:  owner,
				Category: "Food",
				Amount:   decimal.NewFromInt(amount),
				Period:   current,
			})
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	rows, err := table.ListForPeriod(context.Background(), owner, current)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.GreaterThanOrEqual(decimal.NewFromInt(1)))
}

func TestBudgetsTable_ListForPeriodScopesPeriodAndOwner(t *testing.T) {
	table := NewBudgetsTable()
	owner := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())
	march := period.Period{Month: 2, Year: 2024}
	april := period.Period{Month: 3, Year: 2024}

	for _, u := range []*sqlconfig.BudgetUpsert{
		{OwnerID: owner, Category: "Rent", Amount: decimal.NewFromInt(900), Period: march},
		{OwnerID: owner, Category: "Food", Amount: decimal.NewFromInt(200), Period: march},
		{OwnerID: owner, Category: "Food", Amount: decimal.NewFromInt(250), Period: april},
		{OwnerID: other, Category: "Food", Amount: decimal.NewFromInt(100), Period: march},
	} {
		_, err := table.Upsert(context.Background(), u)
		require.NoError(t, err)
	}

	rows, err := table.ListForPeriod(context.Background(), owner, march)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Food", rows[0].Category)
	assert.Equal(t, "Rent", rows[1].Category)
}

func TestUsersTable(t *testing.T) {
	table := NewUsersTable()

	created, err := table.Insert(context.Background(), "a@example.com", "hash")
	require.NoError(t, err)

	_, err = table.Insert(context.Background(), "a@example.com", "other")
	assert.ErrorIs(t, err, sqlconfig.ErrUniqueViolation)

	found, err := table.FindByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = table.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}
