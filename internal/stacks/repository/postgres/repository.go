// Package postgres stores the indexer entities in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/clock"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const maxReconnectBackoff = 8

// Repository is the PostgreSQL storage backend.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository opens and pings a connection pool.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, model.NewStorageError("ping", err)
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// Connect retries NewRepository until it succeeds or ctx is done. The delay
// starts at interval and doubles up to maxReconnectBackoff intervals. A
// missing dsn fails immediately.
func Connect(ctx context.Context, logger *zap.Logger, dsn string, metrics Metrics, interval time.Duration) (*Repository, error) {
	backoff := clock.Backoff{Initial: interval, Max: maxReconnectBackoff * interval}
	for attempt := 1; ; attempt++ {
		repo, err := NewRepository(ctx, dsn, metrics)
		if err == nil {
			return repo, nil
		}
		if !model.IsStorageError(err) {
			return nil, err
		}

		delay := backoff.Next()
		logger.Warn("postgres not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := clock.Sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
	}
}

// DB exposes the pool for migrations.
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

// BeginWrite opens a read-write transaction.
func (r *Repository) BeginWrite(ctx context.Context) (repository.WriteSession, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, model.NewStorageError("begin write", err)
	}
	return &session{tx: tx, metrics: r.metrics}, nil
}

// BeginRead opens a read-only repeatable read transaction so that related
// reads observe one snapshot.
func (r *Repository) BeginRead(ctx context.Context) (repository.ReadSession, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, model.NewStorageError("begin read", err)
	}
	return &session{tx: tx, metrics: r.metrics}, nil
}

type session struct {
	tx      *sql.Tx
	metrics Metrics
}

func (s *session) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return model.NewStorageError("commit", err)
	}
	return nil
}

func (s *session) Rollback() error {
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return model.NewStorageError("rollback", err)
	}
	return nil
}

func (s *session) observe(operation string, err error, started time.Time) {
	s.metrics.Observe(operation, err, started)
}

func (s *session) query(ctx context.Context, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := s.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, model.NewStorageError("query", err)
	}
	return rows, nil
}

func (s *session) exec(ctx context.Context, b sq.Sqlizer) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}
	res, err := s.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, model.NewStorageError("exec", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, model.NewStorageError("rows affected", err)
	}
	return int(n), nil
}

// queryRow runs b and scans the first row into dest. It reports false when
// there is no row.
func (s *session) queryRow(ctx context.Context, b sq.Sqlizer, dest ...any) (bool, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}
	err = s.tx.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, model.NewStorageError("query row", err)
	}
	return true, nil
}
