package database_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"libraryapi/internal/config"
	"libraryapi/internal/platform/database"
)

func setupPostgres(t *testing.T) *database.Executor {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping integration test: TEST_DB_DSN not set")
	}

	cfg := config.Database{Driver: "pgx", DSN: dsn, MaxOpenConns: 4, MaxIdleConns: 2, QueryTimeout: 5 * time.Second}
	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, err = database.Migrate(context.Background(), db.DB, cfg.Driver)
	require.NoError(t, err)
	return database.NewExecutor(db, cfg.QueryTimeout, zaptest.NewLogger(t))
}

func TestIntegration_PostgresRoundTrip(t *testing.T) {
	ex := setupPostgres(t)
	ctx := context.Background()
	nom := "auteur-" + uuid.NewString()

	res, err := ex.Insert(ctx, `INSERT INTO auteurs (nom) VALUES ($1) RETURNING id`, nom)
	require.NoError(t, err)
	assert.Positive(t, res.LastInsertID)
	t.Cleanup(func() {
		_, _ = ex.Exec(context.Background(), `DELETE FROM auteurs WHERE nom = $1`, nom)
	})

	rows, err := database.Select[authorRow](ctx, ex, `SELECT id, nom FROM auteurs WHERE nom = $1`, nom)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, res.LastInsertID, rows[0].ID)

	_, err = ex.Insert(ctx, `INSERT INTO auteurs (nom) VALUES ($1) RETURNING id`, nom)
	assert.Error(t, err, "names are unique")

	del, err := ex.Exec(ctx, `DELETE FROM auteurs WHERE nom = $1`, nom)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.RowsAffected)
}
