package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// InsertReorgs appends fork switch records.
func (r *Repository) InsertReorgs(ctx context.Context, reorgs []Reorg) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_reorgs", err, start)
	}()

	if len(reorgs) == 0 {
		return nil
	}

	const query = `
INSERT INTO stacks_reorgs (
	index_block_hash,
	block_height,
	depth,
	restored,
	orphaned,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare reorgs batch: %w", err)
	}

	for _, rg := range reorgs {
		if err = batch.Append(
			rg.IndexBlockHash,
			rg.BlockHeight,
			rg.Depth,
			nonNil(rg.Restored),
			nonNil(rg.Orphaned),
			rg.ObservedAt,
		); err != nil {
			return fmt.Errorf("append reorg: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert reorgs: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
