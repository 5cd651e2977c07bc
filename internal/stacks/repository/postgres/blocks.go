package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

func (s *session) queryBlock(ctx context.Context, b sq.SelectBuilder) (model.Block, bool, error) {
	var block model.Block
	found, err := s.queryRow(ctx, b.Limit(1), blockDest(&block)...)
	if err != nil || !found {
		return model.Block{}, false, err
	}
	return block, true, nil
}

// CurrentBlock returns the canonical tip.
func (s *session) CurrentBlock(ctx context.Context) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("current_block", err, start)
	}()

	block, found, err := s.queryBlock(ctx,
		psql.Select(blockColumns...).
			From("blocks").
			Where(sq.Eq{"canonical": true}).
			OrderBy("block_height DESC"),
	)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("query current block: %w", err)
	}
	return block, found, nil
}

// BlockByHeight returns the canonical block at height.
func (s *session) BlockByHeight(ctx context.Context, height uint64) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("block_by_height", err, start)
	}()

	block, found, err := s.queryBlock(ctx,
		psql.Select(blockColumns...).
			From("blocks").
			Where(sq.Eq{"canonical": true, "block_height": int64(height)}),
	)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("query block at height %d: %w", height, err)
	}
	return block, found, nil
}

// BlockByHash matches either the block hash or the index block hash and
// prefers the canonical row.
func (s *session) BlockByHash(ctx context.Context, hash string) (model.Block, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("block_by_hash", err, start)
	}()

	block, found, err := s.queryBlock(ctx,
		psql.Select(blockColumns...).
			From("blocks").
			Where(sq.Or{sq.Eq{"block_hash": hash}, sq.Eq{"index_block_hash": hash}}).
			OrderBy("canonical DESC", "block_height DESC"),
	)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("query block %s: %w", hash, err)
	}
	return block, found, nil
}

// BlockList returns a page of canonical blocks, newest first, and the total.
func (s *session) BlockList(ctx context.Context, page model.Page) ([]model.Block, int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("block_list", err, start)
	}()

	var total int
	if _, err = s.queryRow(ctx,
		psql.Select("COUNT(*)").From("blocks").Where(sq.Eq{"canonical": true}),
		&total,
	); err != nil {
		return nil, 0, fmt.Errorf("count blocks: %w", err)
	}

	rows, err := s.query(ctx, paged(
		psql.Select(blockColumns...).
			From("blocks").
			Where(sq.Eq{"canonical": true}).
			OrderBy("block_height DESC"),
		page,
	))
	if err != nil {
		return nil, 0, fmt.Errorf("query blocks: %w", err)
	}
	defer rows.Close()

	var blocks []model.Block
	for rows.Next() {
		var block model.Block
		if err = rows.Scan(blockDest(&block)...); err != nil {
			return nil, 0, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, block)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate blocks: %w", err)
	}
	return blocks, total, nil
}

// BlockTxIDs lists the tx ids of a block in block order.
func (s *session) BlockTxIDs(ctx context.Context, indexBlockHash string) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("block_tx_ids", err, start)
	}()

	rows, err := s.query(ctx,
		psql.Select("tx_id").
			From("txs").
			Where(sq.Eq{"index_block_hash": indexBlockHash}).
			OrderBy("tx_index"),
	)
	if err != nil {
		return nil, fmt.Errorf("query block txs: %w", err)
	}
	ids, err := scanStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("scan block txs: %w", err)
	}
	return ids, nil
}
