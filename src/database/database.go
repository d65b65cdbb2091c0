package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	stdlog "log"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/username/fintrack/src/logger"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is the single shared handle injected into every service.
var DB *sql.DB

func InitDB(databasePath string) {
	db, err := Open(databasePath)
	if err != nil {
		logger.L.Error("failed to initialize database", "path", databasePath, "error", err)
		stdlog.Fatalf("failed to initialize database at %s: %v", databasePath, err)
	}
	DB = db
}

// Open opens the SQLite database at databasePath and applies pending migrations.
// ":memory:" gives a private in-memory database, which tests rely on.
func Open(databasePath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(databasePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", databasePath, err)
	}

	// One connection: statements serialize in the driver, and an in-memory
	// database survives for the lifetime of the handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database at %s: %w", databasePath, err)
	}

	logger.L.Info("Checking database migrations", "databasePath", databasePath)
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	logger.L.Info("Database tables ensured/created.")
	return db, nil
}

// Migrate applies every embedded migration that has not run yet.
func Migrate(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	// m.Close is not called: it would close the shared handle.

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.L.Info("Database schema up to date", "version", version, "dirty", dirty)
	return nil
}

func dsn(databasePath string) string {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if strings.Contains(databasePath, "?") {
		return databasePath + "&" + pragmas
	}
	return databasePath + "?" + pragmas
}
