// Package db embeds the SQL migrations, one directory per driver.
package db

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var migrations embed.FS

// Migrations returns the migration files for the given driver ("pgx" or "sqlite3").
func Migrations(driver string) (fs.FS, error) {
	dir, err := Dir(driver)
	if err != nil {
		return nil, err
	}
	return fs.Sub(migrations, dir)
}

// Dir returns the migrations directory, relative to this package, for driver.
func Dir(driver string) (string, error) {
	switch driver {
	case "pgx", "postgres":
		return "migrations/postgres", nil
	case "sqlite3":
		return "migrations/sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}
