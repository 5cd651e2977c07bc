package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// InsertCanonicalStates appends canonical flag changes.
func (r *Repository) InsertCanonicalStates(ctx context.Context, states []CanonicalState) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_canonical_states", err, start)
	}()

	if len(states) == 0 {
		return nil
	}

	const query = `
INSERT INTO stacks_block_canonical (
	index_block_hash,
	block_height,
	canonical,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare canonical states batch: %w", err)
	}

	for _, st := range states {
		var canonical uint8
		if st.Canonical {
			canonical = 1
		}
		if err = batch.Append(st.IndexBlockHash, st.BlockHeight, canonical, st.ObservedAt); err != nil {
			return fmt.Errorf("append canonical state: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert canonical states: %w", err)
	}
	return nil
}
