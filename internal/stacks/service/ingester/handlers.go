package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/normalizer"
	"go.uber.org/zap"
)

// SubmitBlock queues a /new_block message and waits for it to be handled.
func (q *Queue) SubmitBlock(ctx context.Context, msg *decoder.BlockMessage) error {
	return q.submit(ctx, kindBlock, func(ctx context.Context) error {
		return q.handleBlock(ctx, msg)
	})
}

// SubmitBurnBlock queues a /new_burn_block message and waits for it to be
// handled.
func (q *Queue) SubmitBurnBlock(ctx context.Context, msg *decoder.BurnBlockMessage) error {
	return q.submit(ctx, kindBurnBlock, func(ctx context.Context) error {
		return q.handleBurnBlock(ctx, msg)
	})
}

// SubmitMempoolBatch queues hex encoded raw transactions and waits for them
// to be handled.
func (q *Queue) SubmitMempoolBatch(ctx context.Context, rawTxs []string) error {
	return q.submit(ctx, kindMempool, func(ctx context.Context) error {
		return q.handleMempool(ctx, rawTxs)
	})
}

func (q *Queue) handleBlock(ctx context.Context, msg *decoder.BlockMessage) error {
	parsed, err := q.decoder.DecodeBlock(msg)
	if err != nil {
		return fmt.Errorf("decode block: %w", err)
	}
	update, err := q.normalizer.Normalize(parsed)
	if err != nil {
		return fmt.Errorf("normalize block %s: %w", parsed.Block.IndexBlockHash, err)
	}

	res, err := q.store.Update(ctx, &update)
	if err != nil {
		return err
	}

	q.logger.Info("received block",
		zap.String("index_block_hash", update.Block.IndexBlockHash),
		zap.Uint64("block_height", update.Block.BlockHeight),
		zap.Int("txs", len(update.Txs)),
		zap.Int("events", update.EventCount()),
		zap.Bool("inserted", res.Inserted),
		zap.Bool("canonical", res.Canonical),
	)
	if !res.Inserted {
		return nil
	}
	q.normalizer.PostProcess(ctx, parsed, &update)
	return nil
}

func (q *Queue) handleBurnBlock(ctx context.Context, msg *decoder.BurnBlockMessage) error {
	parsed, err := q.decoder.DecodeBurnBlock(msg)
	if err != nil {
		return fmt.Errorf("decode burn block: %w", err)
	}

	if q.verifier != nil {
		if err := q.verifier.VerifyBurnBlock(ctx, parsed); err != nil {
			q.logger.Warn("burn block verification failed",
				zap.String("burn_block_hash", parsed.BurnBlockHash),
				zap.Uint64("burn_block_height", parsed.BurnBlockHeight),
				zap.Error(err),
			)
		}
	}

	rewards := make([]model.BurnchainReward, 0, len(parsed.Rewards))
	for _, r := range parsed.Rewards {
		rewards = append(rewards, model.BurnchainReward{
			BurnAmount:      parsed.BurnAmount,
			RewardRecipient: r.Recipient,
			RewardAmount:    r.Amount,
		})
	}

	invalidated, err := q.store.UpdateBurnchainRewards(ctx, parsed.BurnBlockHash, parsed.BurnBlockHeight, rewards)
	if err != nil {
		return err
	}
	q.logger.Info("received burn block",
		zap.String("burn_block_hash", parsed.BurnBlockHash),
		zap.Uint64("burn_block_height", parsed.BurnBlockHeight),
		zap.Int("rewards", len(rewards)),
		zap.Int("invalidated", invalidated),
	)
	return nil
}

func (q *Queue) handleMempool(ctx context.Context, rawTxs []string) error {
	parsed, err := q.decoder.DecodeMempoolTxs(rawTxs, q.now().Unix())
	if err != nil {
		return fmt.Errorf("decode mempool txs: %w", err)
	}

	txs := make([]model.MempoolTx, 0, len(parsed))
	for _, ptx := range parsed {
		tx, err := normalizer.MempoolTx(ptx)
		if err != nil {
			return err
		}
		txs = append(txs, tx)
	}
	inserted, err := q.store.UpdateMempoolTxs(ctx, txs)
	if err != nil {
		return err
	}
	if dup := len(txs) - len(inserted); dup > 0 {
		q.logger.Debug("skipped known mempool txs", zap.Int("count", dup))
	}
	q.logger.Info("received mempool txs", zap.Int("received", len(txs)), zap.Int("inserted", len(inserted)))
	return nil
}
