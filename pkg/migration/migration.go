package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Runner applies SQL migrations from a directory against a postgres database.
type Runner struct {
	databaseURL    string
	migrationsPath string
	logger         *slog.Logger
}

// NewRunner creates a migration runner. A nil logger falls back to JSON on stdout.
func NewRunner(databaseURL, migrationsPath string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &Runner{
		databaseURL:    databaseURL,
		migrationsPath: migrationsPath,
		logger:         logger,
	}
}

// Up applies every pending migration.
func (r *Runner) Up() error {
	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("schema already up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	r.logger.Info("migrations applied")
	return nil
}

// Down rolls back the most recent migration.
func (r *Runner) Down() error {
	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("nothing to roll back")
			return nil
		}
		return fmt.Errorf("rollback migration: %w", err)
	}

	r.logger.Info("rolled back one migration")
	return nil
}

// Force overwrites the recorded schema version. Only for repairing a dirty state.
func (r *Runner) Force(version int) error {
	m, err := r.open()
	if err != nil {
		return err
	}
	defer m.Close()

	r.logger.Warn("forcing schema version", "version", version)
	if err := m.Force(version); err != nil {
		return fmt.Errorf("force version: %w", err)
	}
	return nil
}

// Version reports the current schema version and whether it is dirty.
func (r *Runner) Version() (uint, bool, error) {
	m, err := r.open()
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, nil
}

func (r *Runner) open() (*migrate.Migrate, error) {
	db, err := sql.Open("postgres", r.databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect for migration: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

// AutoMigrate brings the schema up to date on startup. It refuses to run
// when the database is dirty so a half-applied migration is never stacked on.
func AutoMigrate(databaseURL, migrationsPath string, logger *slog.Logger) error {
	runner := NewRunner(databaseURL, migrationsPath, logger)

	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("schema dirty at version %d, repair it before starting", version)
	}

	if err := runner.Up(); err != nil {
		return err
	}

	current, _, err := runner.Version()
	if err != nil {
		return err
	}
	runner.logger.Info("schema ready", "version", current)
	return nil
}
