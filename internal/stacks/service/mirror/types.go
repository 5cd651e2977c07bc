package mirror

import (
	"context"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository/clickhouse"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlocks(ctx context.Context, blocks []clickhouse.BlockRecord) error
		InsertCanonicalStates(ctx context.Context, states []clickhouse.CanonicalState) error
		InsertReorgs(ctx context.Context, reorgs []clickhouse.Reorg) error
		CanonicalTip(ctx context.Context) (uint64, bool, error)
	}

	Metrics interface {
		ObserveFlush(size int, err error)
	}
)
