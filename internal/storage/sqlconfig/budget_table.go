package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/Purvi1411/expense-tracker/internal/period"
)

const budgetsTableName = "budgets"

var budgetColumns = []string{
	"id", "owner_id", "category", "amount", "month", "year", "created_at", "updated_at",
}

var _ IBudgetTable = (*BudgetsTable)(nil)

type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(db *sql.DB) *BudgetsTable {
	return &BudgetsTable{exec: bob.NewDB(db)}
}

// Upsert relies on the (owner_id, category, month, year) unique constraint so
// concurrent writers resolve to a single row; the last committed amount wins.
func (t *BudgetsTable) Upsert(ctx context.Context, upsert *BudgetUpsert) (*Budget, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	query := psql.RawQuery(`
		INSERT INTO budgets (id, owner_id, category, amount, month, year)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, category, month, year)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()
		RETURNING id, owner_id, category, amount, month, year, created_at, updated_at`,
		id,
		upsert.OwnerID,
		upsert.Category,
		upsert.Amount,
		upsert.Period.Month,
		upsert.Period.Year,
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, fmt.Errorf("upsert budget: %w", translateError(err))
	}
	return row, nil
}

// ListForPeriod returns the owner's budgets for p ordered by category.
func (t *BudgetsTable) ListForPeriod(ctx context.Context, ownerID uuid.UUID, p period.Period) ([]*Budget, error) {
	query := psql.Select(
		sm.Columns(columnsAsAny(budgetColumns)...),
		sm.From(budgetsTableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(p.Month))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(p.Year))),
		sm.OrderBy(psql.Quote("category")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", translateError(err))
	}
	return rows, nil
}
