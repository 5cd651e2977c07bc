package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// InsertBlocks stores mirrored block rows.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []BlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO stacks_blocks (
	index_block_hash,
	block_hash,
	block_height,
	parent_index_block_hash,
	burn_block_time,
	burn_block_hash,
	burn_block_height,
	miner_txid,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, rec := range blocks {
		b := rec.Block
		if err = batch.Append(
			b.IndexBlockHash,
			b.BlockHash,
			b.BlockHeight,
			b.ParentIndexBlockHash,
			time.Unix(b.BurnBlockTime, 0).UTC(),
			b.BurnBlockHash,
			b.BurnBlockHeight,
			b.MinerTxID,
			rec.ObservedAt,
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
