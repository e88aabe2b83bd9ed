package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/toneflow/internal/client/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQL drivers registered by this package.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

var dialects = map[string]string{
	DriverSQLite:   "sqlite3",
	DriverPostgres: "postgres",
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations using the goose dialect
// that matches driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", driver)
	}
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Open connects with driver and dsn, migrates the schema and returns a
// store owning the connection pool.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// one connection keeps :memory: databases shared and avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	if err := RunMigrations(ctx, db.DB, driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLStore(db), nil
}
