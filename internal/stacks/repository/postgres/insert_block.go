package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// InsertBlock stores the block unless its index block hash is known. It
// reports whether a row was written.
func (s *session) InsertBlock(ctx context.Context, block model.Block) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_block", err, start)
	}()

	n, err := s.exec(ctx,
		psql.Insert("blocks").
			Columns(blockColumns...).
			Values(blockValues(block)...).
			Suffix("ON CONFLICT (index_block_hash) DO NOTHING"),
	)
	if err != nil {
		return false, fmt.Errorf("insert block %s: %w", block.IndexBlockHash, err)
	}
	return n == 1, nil
}

// InsertMinerRewards stores the rewards matured by a block.
func (s *session) InsertMinerRewards(ctx context.Context, rewards []model.MinerReward) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_miner_rewards", err, start)
	}()

	if len(rewards) == 0 {
		return nil
	}

	b := psql.Insert("miner_rewards").Columns(
		"block_hash",
		"index_block_hash",
		"from_index_block_hash",
		"mature_block_height",
		"canonical",
		"recipient",
		"coinbase_amount",
		"tx_fees_anchored_shared",
		"tx_fees_anchored_exclusive",
		"tx_fees_streamed_confirmed",
	)
	for _, r := range rewards {
		b = b.Values(
			r.BlockHash,
			r.IndexBlockHash,
			r.FromIndexBlockHash,
			int64(r.MatureBlockHeight),
			r.Canonical,
			r.Recipient,
			r.CoinbaseAmount,
			r.TxFeesAnchoredShared,
			r.TxFeesAnchoredExclusive,
			r.TxFeesStreamedConfirmed,
		)
	}
	if _, err = s.exec(ctx, b); err != nil {
		return fmt.Errorf("insert miner rewards: %w", err)
	}
	return nil
}

// InsertSmartContracts stores deployed contracts.
func (s *session) InsertSmartContracts(ctx context.Context, contracts []model.SmartContract) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_smart_contracts", err, start)
	}()

	if len(contracts) == 0 {
		return nil
	}

	b := psql.Insert("smart_contracts").Columns(
		"tx_id",
		"canonical",
		"contract_id",
		"block_height",
		"index_block_hash",
		"source_code",
		"abi",
	)
	for _, c := range contracts {
		b = b.Values(c.TxID, c.Canonical, c.ContractID, int64(c.BlockHeight), c.IndexBlockHash, c.SourceCode, c.ABI)
	}
	if _, err = s.exec(ctx, b); err != nil {
		return fmt.Errorf("insert smart contracts: %w", err)
	}
	return nil
}
