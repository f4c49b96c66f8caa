package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file" // nolint:revive

	"tfhive/internal/core"
)

// migrationsSource points at the packaged DDL for the cache tables.
const migrationsSource = "file://internal/persistence/migrations"

type Migrator struct {
	Logger *slog.Logger
	DB     core.DB

	migrator *migrate.Migrate
}

func (m *Migrator) Init(_ context.Context) error {
	m.Logger = m.Logger.With("component", "persistence.Migrator")

	db, err := m.DB.DB()
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m.migrator, err = migrate.NewWithDatabaseInstance(migrationsSource, "postgres", driver)
	return err
}

// Up applies every pending migration. A dirty version left by an interrupted
// run is forced clean first.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.fix(ctx); err != nil {
		return err
	}

	m.Logger.Info("Applying schema migrations")

	if err := m.migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	m.Logger.Info("Schema is up to date")
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.fix(ctx); err != nil {
		return err
	}

	m.Logger.Info("Rolling back last schema migration")

	if err := m.migrator.Steps(-1); err != nil {
		return err
	}

	m.Logger.Info("Rollback completed")
	return nil
}

func (m *Migrator) Migrate(_ context.Context, version uint) error {
	m.Logger.Info("Migrating schema to version", "version", version)

	if err := m.migrator.Migrate(version); err != nil {
		return err
	}

	m.Logger.Info("Schema migration completed")
	return nil
}

// fix clears a dirty flag by re-forcing the recorded version.
func (m *Migrator) fix(_ context.Context) error {
	version, dirty, err := m.migrator.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		return err
	}
	if !dirty {
		return nil
	}

	m.Logger.Info("Schema version is dirty, re-forcing", "version", version)

	return m.migrator.Force(int(version)) // nolint:gosec
}
