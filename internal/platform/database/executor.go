package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Result describes the outcome of a write.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Executor runs one parameterized statement per call. Every call acquires its
// own connection from the pool and hands it back before returning, whatever
// the outcome. Arguments are always bound as $1..$n placeholders.
type Executor struct {
	db      *sqlx.DB
	timeout time.Duration
	log     *zap.Logger
}

func NewExecutor(db *sqlx.DB, timeout time.Duration, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{db: db, timeout: timeout, log: log}
}

// Ping reports whether the store is reachable.
func (e *Executor) Ping(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

func (e *Executor) scope(ctx context.Context, kind string, fn func(ctx context.Context, conn *sqlx.Conn) error) (err error) {
	start := time.Now()
	defer func() {
		queryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		if err != nil {
			queryErrors.WithLabelValues(kind).Inc()
		}
	}()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	conn, err := e.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(ctx, conn)
}

// Select runs a read and materializes each row into T, matching columns to
// T's `db` tags. Row order is the order returned by the store. An empty
// result yields an empty, non-nil slice.
func Select[T any](ctx context.Context, e *Executor, query string, args ...any) ([]T, error) {
	out := []T{}
	err := e.scope(ctx, kindSelect, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &out, query, args...)
	})
	if err != nil {
		e.log.Debug("select failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("select: %w", err)
	}
	return out, nil
}

// Exec runs a write in its own transaction and commits it.
func (e *Executor) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	var res Result
	err := e.scope(ctx, kindExec, func(ctx context.Context, conn *sqlx.Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		r, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if res.RowsAffected, err = r.RowsAffected(); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		e.log.Debug("exec failed", zap.String("query", query), zap.Error(err))
		return Result{}, fmt.Errorf("exec: %w", err)
	}
	return res, nil
}

// Insert runs an INSERT ending in "RETURNING id", commits it and returns the
// generated identifier.
func (e *Executor) Insert(ctx context.Context, query string, args ...any) (Result, error) {
	var res Result
	err := e.scope(ctx, kindInsert, func(ctx context.Context, conn *sqlx.Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := tx.GetContext(ctx, &res.LastInsertID, query, args...); err != nil {
			return err
		}
		res.RowsAffected = 1
		return tx.Commit()
	})
	if err != nil {
		e.log.Debug("insert failed", zap.String("query", query), zap.Error(err))
		return Result{}, fmt.Errorf("insert: %w", err)
	}
	return res, nil
}
