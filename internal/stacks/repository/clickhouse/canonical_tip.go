package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// CanonicalTip returns the height of the highest block whose latest state
// is canonical.
func (r *Repository) CanonicalTip(ctx context.Context) (height uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("canonical_tip", err, start)
	}()

	const query = `
SELECT toUInt64(max(block_height)) AS height, count() AS cnt
FROM stacks_block_canonical FINAL
WHERE canonical = 1`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query canonical tip: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, false, nil
	}

	var cnt uint64
	if err = rows.Scan(&height, &cnt); err != nil {
		return 0, false, fmt.Errorf("scan canonical tip: %w", err)
	}
	if cnt == 0 {
		return 0, false, nil
	}
	return height, true, nil
}

// CanonicalCount returns how many blocks are canonical at height.
func (r *Repository) CanonicalCount(ctx context.Context, height uint64) (count uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("canonical_count", err, start)
	}()

	const query = `
SELECT count()
FROM stacks_block_canonical FINAL
WHERE block_height = ? AND canonical = 1`

	rows, err := r.conn.Query(ctx, query, height)
	if err != nil {
		return 0, fmt.Errorf("query canonical count: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, nil
	}
	if err = rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan canonical count: %w", err)
	}
	return count, nil
}
