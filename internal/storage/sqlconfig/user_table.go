package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const usersTableName = "users"

var userColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

var _ IUserTable = (*UsersTable)(nil)

type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(db *sql.DB) *UsersTable {
	return &UsersTable{exec: bob.NewDB(db)}
}

// Insert creates a user.
func (t *UsersTable) Insert(ctx context.Context, email, passwordHash string) (*User, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	query := psql.Insert(
		im.Into(usersTableName, "id", "email", "password_hash"),
		im.Values(psql.Arg(id, email, passwordHash)),
		im.Returning(columnsAsAny(userColumns)...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// FindByEmail returns ErrNotFound when no user has the email.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := psql.Select(
		sm.Columns(columnsAsAny(userColumns)...),
		sm.From(usersTableName),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}
