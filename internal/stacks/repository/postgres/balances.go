package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/pkg/safe"
	"github.com/shopspring/decimal"
)

func creditSum(column, address string) sq.Sqlizer {
	return sq.Expr("COALESCE(SUM("+column+") FILTER (WHERE recipient = ?), 0)", address)
}

func debitSum(column, address string) sq.Sqlizer {
	return sq.Expr("COALESCE(SUM("+column+") FILTER (WHERE sender = ?), 0)", address)
}

// StxTotals sums the canonical STX credited to and debited from an address up
// to height.
func (s *session) StxTotals(ctx context.Context, address string, height uint64) (model.AssetTotals, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("stx_totals", err, start)
	}()

	totals := model.AssetTotals{AssetIdentifier: "stx"}
	_, err = s.queryRow(ctx,
		psql.Select().
			Column(creditSum("amount", address)).
			Column(debitSum("amount", address)).
			From("stx_events").
			Where(sq.Eq{"canonical": true}).
			Where(sq.LtOrEq{"block_height": int64(height)}).
			Where(senderOrRecipient(address)),
		&totals.Credit, &totals.Debit,
	)
	if err != nil {
		return model.AssetTotals{}, fmt.Errorf("sum stx of %s: %w", address, err)
	}
	return totals, nil
}

// FeesPaid sums the fees of canonical transactions sent by the address up to
// height. Sponsored fees are charged to the sender as well.
func (s *session) FeesPaid(ctx context.Context, address string, height uint64) (decimal.Decimal, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("fees_paid", err, start)
	}()

	total := decimal.Zero
	_, err = s.queryRow(ctx,
		psql.Select("COALESCE(SUM(fee_rate), 0)").
			From("txs").
			Where(sq.Eq{"canonical": true}).
			Where(sq.LtOrEq{"block_height": int64(height)}).
			Where(sq.Eq{"sender_address": address}),
		&total,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum fees of %s: %w", address, err)
	}
	return total, nil
}

// MinerRewardsMatured sums the canonical miner rewards of an address that
// matured at or below height.
func (s *session) MinerRewardsMatured(ctx context.Context, address string, height uint64) (decimal.Decimal, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("miner_rewards_matured", err, start)
	}()

	total := decimal.Zero
	_, err = s.queryRow(ctx,
		psql.Select("COALESCE(SUM(coinbase_amount + tx_fees_anchored_shared + tx_fees_anchored_exclusive + tx_fees_streamed_confirmed), 0)").
			From("miner_rewards").
			Where(sq.Eq{"canonical": true, "recipient": address}).
			Where(sq.LtOrEq{"mature_block_height": int64(height)}),
		&total,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum miner rewards of %s: %w", address, err)
	}
	return total, nil
}

// ActiveStxLocks returns the canonical lock events of an address recorded up
// to height whose unlock height is above burnBlockHeight.
func (s *session) ActiveStxLocks(ctx context.Context, address string, height uint64, burnBlockHeight uint64) ([]model.ActiveLock, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("active_stx_locks", err, start)
	}()

	columns := make([]string, 0, len(stxLockEventSource.columns)+1)
	for _, c := range stxLockEventSource.columns {
		columns = append(columns, "e."+c)
	}
	columns = append(columns, "b.burn_block_height")

	rows, err := s.query(ctx,
		psql.Select(columns...).
			From("stx_lock_events e").
			Join("blocks b ON b.index_block_hash = e.index_block_hash").
			Where(sq.Eq{"e.canonical": true, "e.locked_address": address}).
			Where(sq.LtOrEq{"e.block_height": int64(height)}).
			Where(sq.Gt{"e.unlock_height": int64(burnBlockHeight)}),
	)
	if err != nil {
		return nil, fmt.Errorf("query locks of %s: %w", address, err)
	}
	defer rows.Close()

	var locks []model.ActiveLock
	for rows.Next() {
		var (
			lock      model.ActiveLock
			base      eventBaseScan
			unlock    int64
			burnBlock int64
		)
		dest := append(base.dest(&lock.Event.EventBase), &lock.Event.LockedAmount, &unlock, &lock.Event.LockedAddress, &burnBlock)
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan lock: %w", err)
		}
		base.apply(&lock.Event.EventBase)
		if lock.Event.UnlockHeight, err = safe.Uint64(unlock); err != nil {
			return nil, fmt.Errorf("lock unlock height: %w", err)
		}
		if lock.BurnBlockHeight, err = safe.Uint64(burnBlock); err != nil {
			return nil, fmt.Errorf("lock burn block height: %w", err)
		}
		locks = append(locks, lock)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locks: %w", err)
	}
	return locks, nil
}

func (s *session) assetTotals(ctx context.Context, b sq.SelectBuilder) ([]model.AssetTotals, error) {
	rows, err := s.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AssetTotals
	for rows.Next() {
		var t model.AssetTotals
		if err := rows.Scan(&t.AssetIdentifier, &t.Credit, &t.Debit); err != nil {
			return nil, fmt.Errorf("scan asset totals: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset totals: %w", err)
	}
	return out, nil
}

// FtTotals sums canonical fungible token credits and debits of an address per
// asset.
func (s *session) FtTotals(ctx context.Context, address string) ([]model.AssetTotals, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("ft_totals", err, start)
	}()

	totals, err := s.assetTotals(ctx,
		psql.Select("asset_identifier").
			Column(creditSum("amount", address)).
			Column(debitSum("amount", address)).
			From("ft_events").
			Where(sq.Eq{"canonical": true}).
			Where(senderOrRecipient(address)).
			GroupBy("asset_identifier").
			OrderBy("asset_identifier"),
	)
	if err != nil {
		return nil, fmt.Errorf("sum ft of %s: %w", address, err)
	}
	return totals, nil
}

// NftTotals counts canonical non-fungible tokens received and sent by an
// address per asset class.
func (s *session) NftTotals(ctx context.Context, address string) ([]model.AssetTotals, error) {
	start := time.Now()
	var err error
	defer func() {
		s.observe("nft_totals", err, start)
	}()

	totals, err := s.assetTotals(ctx,
		psql.Select("asset_identifier").
			Column(sq.Expr("COUNT(*) FILTER (WHERE recipient = ?)", address)).
			Column(sq.Expr("COUNT(*) FILTER (WHERE sender = ?)", address)).
			From("nft_events").
			Where(sq.Eq{"canonical": true}).
			Where(senderOrRecipient(address)).
			GroupBy("asset_identifier").
			OrderBy("asset_identifier"),
	)
	if err != nil {
		return nil, fmt.Errorf("count nft of %s: %w", address, err)
	}
	return totals, nil
}
