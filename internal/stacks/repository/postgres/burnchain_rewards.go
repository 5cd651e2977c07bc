package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

// InvalidateBurnchainRewards marks canonical rewards of the same burn block
// hash, or at or above its height, as non-canonical.
func (s *session) InvalidateBurnchainRewards(ctx context.Context, burnBlockHash string, burnBlockHeight uint64) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("invalidate_burnchain_rewards", err, start)
	}()

	n, err := s.exec(ctx,
		psql.Update("burnchain_rewards").
			Set("canonical", false).
			Where(sq.Eq{"canonical": true}).
			Where(sq.Or{
				sq.Eq{"burn_block_hash": burnBlockHash},
				sq.GtOrEq{"burn_block_height": int64(burnBlockHeight)},
			}),
	)
	if err != nil {
		return 0, fmt.Errorf("invalidate burnchain rewards: %w", err)
	}
	return n, nil
}

// InsertBurnchainRewards stores the rewards of one burn block.
func (s *session) InsertBurnchainRewards(ctx context.Context, rewards []model.BurnchainReward) error {
	start := time.Now()
	var err error
	defer func() {
		s.observe("insert_burnchain_rewards", err, start)
	}()

	if len(rewards) == 0 {
		return nil
	}

	b := psql.Insert("burnchain_rewards").Columns(
		"canonical",
		"burn_block_hash",
		"burn_block_height",
		"burn_amount",
		"reward_recipient",
		"reward_amount",
		"reward_index",
	)
	for _, r := range rewards {
		b = b.Values(r.Canonical, r.BurnBlockHash, int64(r.BurnBlockHeight), r.BurnAmount, r.RewardRecipient, r.RewardAmount, int32(r.RewardIndex))
	}
	if _, err = s.exec(ctx, b); err != nil {
		return fmt.Errorf("insert burnchain rewards: %w", err)
	}
	return nil
}

// BurnchainRewards lists canonical rewards, newest first. An empty
// recipient lists every recipient.
func (s *session) BurnchainRewards(ctx context.Context, recipient string, page model.Page) ([]model.BurnchainReward, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("burnchain_rewards", err, start)
	}()

	b := psql.Select(
		"canonical",
		"burn_block_hash",
		"burn_block_height",
		"burn_amount",
		"reward_recipient",
		"reward_amount",
		"reward_index",
	).
		From("burnchain_rewards").
		Where(sq.Eq{"canonical": true}).
		OrderBy("burn_block_height DESC", "reward_index DESC")
	if recipient != "" {
		b = b.Where(sq.Eq{"reward_recipient": recipient})
	}

	rows, err := s.query(ctx, paged(b, page))
	if err != nil {
		return nil, fmt.Errorf("query burnchain rewards: %w", err)
	}
	defer rows.Close()

	var rewards []model.BurnchainReward
	for rows.Next() {
		var r model.BurnchainReward
		if err = rows.Scan(&r.Canonical, &r.BurnBlockHash, &r.BurnBlockHeight, &r.BurnAmount, &r.RewardRecipient, &r.RewardAmount, &r.RewardIndex); err != nil {
			return nil, fmt.Errorf("scan burnchain reward: %w", err)
		}
		rewards = append(rewards, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate burnchain rewards: %w", err)
	}
	return rewards, nil
}

// BurnchainRewardTotal sums the canonical rewards paid to recipient.
func (s *session) BurnchainRewardTotal(ctx context.Context, recipient string) (decimal.Decimal, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("burnchain_reward_total", err, start)
	}()

	var total decimal.Decimal
	if _, err = s.queryRow(ctx,
		psql.Select("COALESCE(SUM(reward_amount), 0)").
			From("burnchain_rewards").
			Where(sq.Eq{"canonical": true, "reward_recipient": recipient}),
		&total,
	); err != nil {
		return decimal.Zero, fmt.Errorf("query burnchain reward total: %w", err)
	}
	return total, nil
}
