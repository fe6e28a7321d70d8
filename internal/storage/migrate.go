package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationResult reports the schema version before and after a run.
type MigrationResult struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// RunMigrations applies every pending migration to the database at dsn.
// It opens its own connection because closing the migrate instance closes the pool.
func RunMigrations(dsn string) (MigrationResult, error) {
	var result MigrationResult

	migrateDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return result, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := postgres.WithInstance(migrateDB, &postgres.Config{})
	if err != nil {
		migrateDB.Close()
		return result, fmt.Errorf("create postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		driver.Close()
		return result, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		driver.Close()
		return result, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	result.PreMigrationVersion, err = currentVersion(m)
	if err != nil {
		return result, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("run migrations: %w", err)
	}

	result.PostMigrationVersion, err = currentVersion(m)
	return result, err
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migration version %d is dirty", version)
	}
	return version, nil
}
