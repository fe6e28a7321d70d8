package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/Purvi1411/expense-tracker/internal/config"
	"github.com/Purvi1411/expense-tracker/internal/storage/memory"
	"github.com/Purvi1411/expense-tracker/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
	Users        sqlconfig.IUserTable
}

// NewStorage opens the backend selected by env.DataBackend.
func NewStorage(env *config.Config) (*Storage, error) {
	if env.DataBackend == config.BackendMemory {
		return NewMemoryStorage(), nil
	}

	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return NewPostgresStorage(db), nil
}

// NewPostgresStorage wires the bob-backed tables to db.
func NewPostgresStorage(db *sql.DB) *Storage {
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
		Budgets:      sqlconfig.NewBudgetsTable(db),
		Users:        sqlconfig.NewUsersTable(db),
	}
}

// NewMemoryStorage returns an empty in-process store.
func NewMemoryStorage() *Storage {
	return &Storage{
		Transactions: memory.NewTransactionsTable(),
		Budgets:      memory.NewBudgetsTable(),
		Users:        memory.NewUsersTable(),
	}
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
