package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// ChainTip returns the highest canonical block.
func (s *session) ChainTip(ctx context.Context) (model.BlockRef, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("chain_tip", err, start)
	}()

	var ref model.BlockRef
	found, err := s.queryRow(ctx,
		psql.Select("index_block_hash", "parent_index_block_hash", "block_height", "canonical").
			From("blocks").
			Where(sq.Eq{"canonical": true}).
			OrderBy("block_height DESC").
			Limit(1),
		&ref.IndexBlockHash, &ref.ParentIndexBlockHash, &ref.BlockHeight, &ref.Canonical,
	)
	if err != nil {
		return model.BlockRef{}, false, fmt.Errorf("query chain tip: %w", err)
	}
	return ref, found, nil
}

func (s *session) queryBlockRefs(ctx context.Context, b sq.Sqlizer) ([]model.BlockRef, error) {
	rows, err := s.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []model.BlockRef
	for rows.Next() {
		var ref model.BlockRef
		if err := rows.Scan(&ref.IndexBlockHash, &ref.ParentIndexBlockHash, &ref.BlockHeight, &ref.Canonical); err != nil {
			return nil, fmt.Errorf("scan block ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block refs: %w", err)
	}
	return refs, nil
}

const blockRefReturning = "RETURNING index_block_hash, parent_index_block_hash, block_height, canonical"

// BlocksAt returns the block rows with the given height and index block hash.
func (s *session) BlocksAt(ctx context.Context, height uint64, indexBlockHash string) ([]model.BlockRef, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("blocks_at", err, start)
	}()

	refs, err := s.queryBlockRefs(ctx,
		psql.Select("index_block_hash", "parent_index_block_hash", "block_height", "canonical").
			From("blocks").
			Where(sq.Eq{"block_height": int64(height), "index_block_hash": indexBlockHash}),
	)
	if err != nil {
		return nil, fmt.Errorf("query blocks at height %d: %w", height, err)
	}
	return refs, nil
}

// RestoreBlock flips a non-canonical block to canonical.
func (s *session) RestoreBlock(ctx context.Context, indexBlockHash string) ([]model.BlockRef, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("restore_block", err, start)
	}()

	refs, err := s.queryBlockRefs(ctx,
		psql.Update("blocks").
			Set("canonical", true).
			Where(sq.Eq{"index_block_hash": indexBlockHash, "canonical": false}).
			Suffix(blockRefReturning),
	)
	if err != nil {
		return nil, fmt.Errorf("restore block %s: %w", indexBlockHash, err)
	}
	return refs, nil
}

// OrphanBlocksAtHeight flips every other canonical block at height to
// non-canonical.
func (s *session) OrphanBlocksAtHeight(ctx context.Context, height uint64, keepIndexBlockHash string) ([]model.BlockRef, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("orphan_blocks_at_height", err, start)
	}()

	refs, err := s.queryBlockRefs(ctx,
		psql.Update("blocks").
			Set("canonical", false).
			Where(sq.Eq{"block_height": int64(height), "canonical": true}).
			Where(sq.NotEq{"index_block_hash": keepIndexBlockHash}).
			Suffix(blockRefReturning),
	)
	if err != nil {
		return nil, fmt.Errorf("orphan blocks at height %d: %w", height, err)
	}
	return refs, nil
}
