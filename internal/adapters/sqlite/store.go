// Package sqlite implements the todo persistence port on an embedded SQLite
// database using the pure-Go modernc.org/sqlite driver. The store owns the
// connection pool, the schema, and per-operation transaction scoping, and it
// reports its health to the readiness endpoint.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/metric"
	_ "modernc.org/sqlite"

	"github.com/anubhav-dev/todo-api/internal/platform/config"
	"github.com/anubhav-dev/todo-api/internal/platform/telemetry"
	"github.com/anubhav-dev/todo-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS todos (
	todo_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	content   TEXT    NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0
);
`

// Store is a SQLite-backed implementation of [ports.TodoStore].
// Every operation runs in its own transaction so a failure never leaves a
// partially applied write, and the connection is always returned to the pool.
type Store struct {
	db      *sql.DB
	metrics *telemetry.Metrics
}

// Open opens (creating if necessary) the SQLite database at cfg.Path and
// verifies the connection. Parent directories are created as needed. The
// metrics parameter may be nil, in which case query metrics are not recorded.
//
// The connection enables WAL journaling and a busy timeout so concurrent
// requests queue on the write lock instead of failing immediately.
func Open(cfg config.StorageConfig, metrics *telemetry.Metrics) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(ON)",
		cfg.Path, cfg.BusyTimeout.Milliseconds(),
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Store{db: db, metrics: metrics}, nil
}

// EnsureSchema creates the todos table if it does not already exist.
// Idempotent; existing rows are never touched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name identifies this component in readiness check results.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck verifies the database connection is usable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// withTx runs fn inside a transaction. The transaction commits if fn returns
// nil and rolls back otherwise. Rollback after a successful commit is a no-op,
// so the deferred call guarantees the connection is released on every path.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// record emits query duration and count metrics for a completed operation.
func (s *Store) record(ctx context.Context, operation string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StorageQueryDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StorageQueryTotal.Add(ctx, 1, attrs)
}
