package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// CanonicalTxIDs returns the ids among txIDs with a canonical mined row.
func (s *session) CanonicalTxIDs(ctx context.Context, txIDs []string) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("canonical_tx_ids", err, start)
	}()

	if len(txIDs) == 0 {
		return nil, nil
	}

	rows, err := s.query(ctx,
		psql.Select("DISTINCT tx_id").
			From("txs").
			Where("tx_id = ANY(?)", pq.Array(txIDs)).
			Where(sq.Eq{"canonical": true}).
			OrderBy("tx_id"),
	)
	if err != nil {
		return nil, fmt.Errorf("query canonical tx ids: %w", err)
	}
	defer rows.Close()

	ids, err := scanStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("scan canonical tx ids: %w", err)
	}
	return ids, nil
}

// PruneMempoolTxs marks pending mempool txs as mined.
func (s *session) PruneMempoolTxs(ctx context.Context, txIDs []string) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("prune_mempool_txs", err, start)
	}()

	n, err := s.setPruned(ctx, txIDs, true)
	if err != nil {
		return 0, fmt.Errorf("prune mempool txs: %w", err)
	}
	return n, nil
}

// RestoreMempoolTxs returns pruned mempool txs to pending.
func (s *session) RestoreMempoolTxs(ctx context.Context, txIDs []string) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("restore_mempool_txs", err, start)
	}()

	n, err := s.setPruned(ctx, txIDs, false)
	if err != nil {
		return 0, fmt.Errorf("restore mempool txs: %w", err)
	}
	return n, nil
}

func (s *session) setPruned(ctx context.Context, txIDs []string, pruned bool) (int, error) {
	if len(txIDs) == 0 {
		return 0, nil
	}
	return s.exec(ctx,
		psql.Update("mempool_txs").
			Set("pruned", pruned).
			Where("tx_id = ANY(?)", pq.Array(txIDs)).
			Where(sq.NotEq{"pruned": pruned}),
	)
}
