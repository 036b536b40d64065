// Package migrate applies the embedded local store schema with golang-migrate.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/openmf/fieldops/config"
)

//go:embed sql/sqlite/*.sql sql/postgres/*.sql
var migrationsFS embed.FS

// Status describes the schema version of a store.
type Status struct {
	Version uint
	Dirty   bool
}

// Run applies all pending up migrations for driver. It is safe to call multiple times.
func Run(ctx context.Context, db *sql.DB, driver config.StoreDriver) error {
	logger := slog.Default().With("component", "migrations", "driver", string(driver))

	m, closeSource, err := newMigrator(db, driver)
	if err != nil {
		return err
	}
	defer closeSource()

	stop := context.AfterFunc(ctx, func() { m.GracefulStop <- true })
	defer stop()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.DebugContext(ctx, "schema up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.InfoContext(ctx, "migrations applied", "version", version, "dirty", dirty)
	return nil
}

// Down rolls back every applied migration.
func Down(ctx context.Context, db *sql.DB, driver config.StoreDriver) error {
	m, closeSource, err := newMigrator(db, driver)
	if err != nil {
		return err
	}
	defer closeSource()

	stop := context.AfterFunc(ctx, func() { m.GracefulStop <- true })
	defer stop()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migrations: %w", err)
	}
	return nil
}

// Version reports the current schema version. A store that has never been
// migrated reports version 0.
func Version(db *sql.DB, driver config.StoreDriver) (Status, error) {
	m, closeSource, err := newMigrator(db, driver)
	if err != nil {
		return Status{}, err
	}
	defer closeSource()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("read schema version: %w", err)
	}
	return Status{Version: version, Dirty: dirty}, nil
}

// newMigrator builds a migrator over db. The caller closes only the source:
// closing the migrator would close db as well.
func newMigrator(db *sql.DB, driver config.StoreDriver) (*migrate.Migrate, func(), error) {
	var (
		dbDriver database.Driver
		dir      string
		err      error
	)
	switch driver {
	case config.StoreDriverPostgres:
		dir = "sql/postgres"
		dbDriver, err = pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	case config.StoreDriverSQLite:
		dir = "sql/sqlite"
		dbDriver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("init %s migration driver: %w", driver, err)
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, string(driver), dbDriver)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, func() { _ = src.Close() }, nil
}
