package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"libraryapi/internal/config"
	"libraryapi/internal/platform/database"
)

// OpenSQLite opens a fresh sqlite database in a temp dir with foreign keys
// enabled and every migration applied.
func OpenSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	cfg := config.Database{
		Driver:       "sqlite3",
		DSN:          "file:" + filepath.Join(t.TempDir(), "library.db") + "?_foreign_keys=on&_busy_timeout=5000",
		MaxOpenConns: 4,
		MaxIdleConns: 4,
		QueryTimeout: 5 * time.Second,
	}
	db, err := database.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = database.Migrate(context.Background(), db.DB, cfg.Driver)
	require.NoError(t, err)
	return db
}

// NewExecutor returns an executor over a migrated sqlite database.
func NewExecutor(t testing.TB) (*database.Executor, *sqlx.DB) {
	t.Helper()
	db := OpenSQLite(t)
	return database.NewExecutor(db, 5*time.Second, zaptest.NewLogger(t)), db
}

// NewRequest creates a new HTTP request for testing. Inputs travel in the
// path and the query string, so requests carry no body.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target)
}

// Decode unmarshals the recorded body into T.
func Decode[T any](t testing.TB, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// Do serves one request through h and returns the recorder.
func Do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, NewRequest(method, target))
	return w
}
