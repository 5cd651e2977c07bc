// Package clickhouse is an append-only mirror of the canonical chain used
// for analytics. It is never read by the indexer itself.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// CanonicalState records the canonical flag of a block at a point in time.
// The latest state per block wins.
type CanonicalState struct {
	IndexBlockHash string
	BlockHeight    uint64
	Canonical      bool
	ObservedAt     time.Time
}

// Reorg records one fork switch.
type Reorg struct {
	IndexBlockHash string
	BlockHeight    uint64
	Depth          uint32
	Restored       []string
	Orphaned       []string
	ObservedAt     time.Time
}

// BlockRecord is a mirrored block with the time it was observed.
type BlockRecord struct {
	Block      model.Block
	ObservedAt time.Time
}

type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Ping checks the connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// Close closes the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}
