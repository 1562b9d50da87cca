package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"libraryapi/db"
)

func dialect(driver string) (goose.Dialect, error) {
	switch driver {
	case "pgx", "postgres":
		return goose.DialectPostgres, nil
	case "sqlite3":
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// NewMigrationProvider returns a goose provider over the embedded migrations
// of the given driver.
func NewMigrationProvider(sqlDB *sql.DB, driver string) (*goose.Provider, error) {
	d, err := dialect(driver)
	if err != nil {
		return nil, err
	}
	fsys, err := db.Migrations(driver)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(d, sqlDB, fsys)
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, sqlDB *sql.DB, driver string) ([]*goose.MigrationResult, error) {
	p, err := NewMigrationProvider(sqlDB, driver)
	if err != nil {
		return nil, err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return results, nil
}
