package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// insertBatchSize bounds the rows of one multi-row insert.
const insertBatchSize = 500

func chunks[T any](items []T, size int) [][]T {
	var out [][]T
	for len(items) > size {
		out = append(out, items[:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}

// InsertTxs stores mined transactions, skipping known (tx_id, block) pairs.
func (s *session) InsertTxs(ctx context.Context, txs []model.Tx) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_txs", err, start)
	}()

	for _, chunk := range chunks(txs, insertBatchSize) {
		b := psql.Insert("txs").Columns(txColumns...)
		for _, tx := range chunk {
			b = b.Values(txValues(tx)...)
		}
		if _, err = s.exec(ctx, b.Suffix("ON CONFLICT (tx_id, index_block_hash) DO NOTHING")); err != nil {
			return fmt.Errorf("insert txs: %w", err)
		}
	}
	return nil
}

// InsertMempoolTxs stores unseen mempool transactions and returns the ids
// written.
func (s *session) InsertMempoolTxs(ctx context.Context, txs []model.MempoolTx) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_mempool_txs", err, start)
	}()

	var inserted []string
	for _, chunk := range chunks(txs, insertBatchSize) {
		b := psql.Insert("mempool_txs").Columns(mempoolTxColumns...)
		for _, tx := range chunk {
			b = b.Values(mempoolTxValues(tx)...)
		}
		rows, queryErr := s.query(ctx, b.Suffix("ON CONFLICT (tx_id) DO NOTHING RETURNING tx_id"))
		if queryErr != nil {
			err = queryErr
			return nil, fmt.Errorf("insert mempool txs: %w", err)
		}
		ids, scanErr := scanStrings(rows)
		if scanErr != nil {
			err = scanErr
			return nil, fmt.Errorf("scan inserted mempool txs: %w", err)
		}
		inserted = append(inserted, ids...)
	}
	return inserted, nil
}
