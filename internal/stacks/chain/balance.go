package chain

import (
	"context"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// StxBalanceAt aggregates the canonical STX history of address up to and
// including block. All reads go through r so they share one snapshot.
func StxBalanceAt(ctx context.Context, r ReadTx, address string, block model.Block) (model.StxBalance, error) {
	totals, err := r.StxTotals(ctx, address, block.BlockHeight)
	if err != nil {
		return model.StxBalance{}, fmt.Errorf("get stx totals: %w", err)
	}
	fees, err := r.FeesPaid(ctx, address, block.BlockHeight)
	if err != nil {
		return model.StxBalance{}, fmt.Errorf("get fees paid: %w", err)
	}
	rewards, err := r.MinerRewardsMatured(ctx, address, block.BlockHeight)
	if err != nil {
		return model.StxBalance{}, fmt.Errorf("get miner rewards: %w", err)
	}
	locks, err := r.ActiveStxLocks(ctx, address, block.BlockHeight, block.BurnBlockHeight)
	if err != nil {
		return model.StxBalance{}, fmt.Errorf("get stx locks: %w", err)
	}
	if len(locks) > 1 {
		return model.StxBalance{}, model.NewChainConsistencyError(block.IndexBlockHash, block.BlockHeight,
			"found %d active stx locks for %s", len(locks), address)
	}

	balance := model.StxBalance{
		Balance:                   totals.Credit.Sub(totals.Debit).Sub(fees).Add(rewards),
		TotalSent:                 totals.Debit,
		TotalReceived:             totals.Credit,
		TotalFeesSent:             fees,
		TotalMinerRewardsReceived: rewards,
	}
	if len(locks) == 1 {
		lock := locks[0]
		balance.Lock = &model.StxLock{
			LockTxID:            lock.Event.TxID,
			LockedAmount:        lock.Event.LockedAmount,
			UnlockHeight:        lock.Event.UnlockHeight,
			BurnchainLockHeight: lock.BurnBlockHeight,
		}
	}
	return balance, nil
}

// FungibleBalances returns the canonical token balances of address sorted
// by asset identifier.
func FungibleBalances(ctx context.Context, r ReadTx, address string) ([]model.FtBalance, error) {
	totals, err := r.FtTotals(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get ft totals: %w", err)
	}
	sortTotals(totals)

	out := make([]model.FtBalance, 0, len(totals))
	for _, t := range totals {
		out = append(out, model.FtBalance{
			AssetIdentifier: t.AssetIdentifier,
			Balance:         t.Credit.Sub(t.Debit),
			TotalSent:       t.Debit,
			TotalReceived:   t.Credit,
		})
	}
	return out, nil
}

// NonFungibleCounts returns how many tokens of each NFT class address holds,
// sorted by asset identifier.
func NonFungibleCounts(ctx context.Context, r ReadTx, address string) ([]model.NftCount, error) {
	totals, err := r.NftTotals(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get nft totals: %w", err)
	}
	sortTotals(totals)

	out := make([]model.NftCount, 0, len(totals))
	for _, t := range totals {
		out = append(out, model.NftCount{
			AssetIdentifier: t.AssetIdentifier,
			Count:           t.Credit.Sub(t.Debit),
			TotalSent:       t.Debit,
			TotalReceived:   t.Credit,
		})
	}
	return out, nil
}

func sortTotals(totals []model.AssetTotals) {
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].AssetIdentifier < totals[j].AssetIdentifier
	})
}
