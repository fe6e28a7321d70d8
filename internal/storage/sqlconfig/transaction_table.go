package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/Purvi1411/expense-tracker/internal/filter"
)

const transactionsTableName = "transactions"

var transactionColumns = []string{
	"id", "seq", "owner_id", "description", "amount", "kind", "category",
	"occurred_at", "created_at", "updated_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	query := psql.Insert(
		im.Into(transactionsTableName, "id", "owner_id", "description", "amount", "kind", "category", "occurred_at"),
		im.Values(psql.Arg(
			id,
			create.OwnerID,
			create.Description,
			create.Amount,
			create.Kind,
			create.Category,
			create.OccurredAt,
		)),
		im.Returning(columnsAsAny(transactionColumns)...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// List returns the owner's transactions matching query, newest first.
func (t *TransactionsTable) List(ctx context.Context, query filter.TransactionQuery) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columnsAsAny(transactionColumns)...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(query.OwnerID()))),
	}
	if search := query.Search(); search != "" {
		queryMods = append(queryMods, sm.Where(psql.Raw("description ILIKE ?", "%"+escapeLike(search)+"%")))
	}
	if kind := query.Kind(); kind != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(kind))))
	}
	if category := query.Category(); category != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(category))))
	}
	if from, ok := query.From(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("occurred_at").GTE(psql.Arg(from))))
	}
	if to, ok := query.To(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("occurred_at").LTE(psql.Arg(to))))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("occurred_at")).Desc(),
		sm.OrderBy(psql.Quote("seq")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", translateError(err))
	}
	return rows, nil
}

// Update applies the non-nil fields of update to the owner's transaction.
func (t *TransactionsTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	query := psql.RawQuery(`
		UPDATE transactions SET
			description = COALESCE(?, description),
			amount      = COALESCE(?, amount),
			kind        = COALESCE(?, kind),
			category    = COALESCE(?, category),
			occurred_at = COALESCE(?, occurred_at),
			updated_at  = now()
		WHERE id = ? AND owner_id = ?
		RETURNING `+strings.Join(transactionColumns, ", "),
		update.Description,
		update.Amount,
		update.Kind,
		update.Category,
		update.OccurredAt,
		id,
		ownerID,
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Delete removes the owner's transaction.
func (t *TransactionsTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func columnsAsAny(columns []string) []any {
	result := make([]any, len(columns))
	for i, column := range columns {
		result[i] = column
	}
	return result
}
