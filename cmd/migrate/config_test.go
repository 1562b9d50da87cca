package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsDir(t *testing.T) {
	got, err := migrationsDir("db", "pgx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("db", "migrations", "postgres"), got)

	got, err = migrationsDir("/custom", "sqlite3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom", "migrations", "sqlite3"), got)

	_, err = migrationsDir("db", "mysql")
	assert.Error(t, err)
}

func TestCreateCmd_WritesSQLMigration(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "migrations", "sqlite3"), 0o755))

	app := newTestApp()
	err := app.Run([]string{"migrate", "create", "--driver", "sqlite3", "--dir", root, "add_isbn_index"})
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "migrations", "sqlite3"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_add_isbn_index.sql"), entries[0].Name())

	b, err := os.ReadFile(filepath.Join(root, "migrations", "sqlite3", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(b), "-- +goose Up")
}

func TestCreateCmd_RequiresName(t *testing.T) {
	app := newTestApp()
	err := app.Run([]string{"migrate", "create", "--dir", t.TempDir()})
	assert.Error(t, err)
}

func TestCollectMigrations_ParsesEveryDialect(t *testing.T) {
	for _, driver := range []string{"pgx", "sqlite3"} {
		dir, err := migrationsDir(repoRoot(t, "db"), driver)
		require.NoError(t, err)

		_, err = goose.CollectMigrations(dir, 0, goose.MaxVersion)
		assert.NoError(t, err, driver)
	}
}
