package chain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"go.uber.org/zap"
)

// ApplyBurnchainRewards replaces the rewards of a burn block. Rewards
// already recorded for the same burn block hash, or at or above its height,
// belong to a burn chain fork and are marked non-canonical first.
func (e *Engine) ApplyBurnchainRewards(
	ctx context.Context,
	tx WriteTx,
	burnBlockHash string,
	burnBlockHeight uint64,
	rewards []model.BurnchainReward,
) (int, error) {
	invalidated, err := tx.InvalidateBurnchainRewards(ctx, burnBlockHash, burnBlockHeight)
	if err != nil {
		return 0, fmt.Errorf("invalidate burnchain rewards: %w", err)
	}
	if invalidated > 0 {
		e.logger.Warn("invalidated burnchain rewards after burn chain fork",
			zap.String("burn_block_hash", burnBlockHash),
			zap.Uint64("burn_block_height", burnBlockHeight),
			zap.Int("invalidated", invalidated),
		)
	}

	if len(rewards) == 0 {
		return invalidated, nil
	}
	for i := range rewards {
		rewards[i].BurnBlockHash = burnBlockHash
		rewards[i].BurnBlockHeight = burnBlockHeight
		rewards[i].RewardIndex = uint32(i)
		rewards[i].Canonical = true
	}
	if err := tx.InsertBurnchainRewards(ctx, rewards); err != nil {
		return 0, fmt.Errorf("insert burnchain rewards: %w", err)
	}
	return invalidated, nil
}

// ApplyMempoolTxs stores unseen mempool transactions and returns the ids
// actually inserted. Transactions already mined canonically are stored
// pruned.
func (e *Engine) ApplyMempoolTxs(ctx context.Context, tx WriteTx, txs []model.MempoolTx) ([]string, error) {
	if len(txs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(txs))
	for _, mtx := range txs {
		ids = append(ids, mtx.TxID)
	}
	mined, err := tx.CanonicalTxIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get canonical tx ids: %w", err)
	}
	minedSet := make(map[string]struct{}, len(mined))
	for _, id := range mined {
		minedSet[id] = struct{}{}
	}
	for i := range txs {
		_, ok := minedSet[txs[i].TxID]
		txs[i].Pruned = ok
	}

	inserted, err := tx.InsertMempoolTxs(ctx, txs)
	if err != nil {
		return nil, fmt.Errorf("insert mempool txs: %w", err)
	}
	if skipped := len(txs) - len(inserted); skipped > 0 {
		e.logger.Debug("skipped known mempool txs", zap.Int("skipped", skipped), zap.Int("inserted", len(inserted)))
	}
	return inserted, nil
}
