package model

import "github.com/shopspring/decimal"

// MinerReward is paid to a miner once the rewarded block matures.
type MinerReward struct {
	BlockHash               string
	IndexBlockHash          string
	FromIndexBlockHash      string
	MatureBlockHeight       uint64
	Recipient               string
	CoinbaseAmount          decimal.Decimal
	TxFeesAnchoredShared    decimal.Decimal
	TxFeesAnchoredExclusive decimal.Decimal
	TxFeesStreamedConfirmed decimal.Decimal
	Canonical               bool
}

// Total returns the sum of the coinbase and all fee shares.
func (r MinerReward) Total() decimal.Decimal {
	return r.CoinbaseAmount.
		Add(r.TxFeesAnchoredShared).
		Add(r.TxFeesAnchoredExclusive).
		Add(r.TxFeesStreamedConfirmed)
}

// BurnchainReward is a burn-chain payout to a reward recipient.
type BurnchainReward struct {
	BurnBlockHash   string
	BurnBlockHeight uint64
	BurnAmount      decimal.Decimal
	RewardRecipient string
	RewardAmount    decimal.Decimal
	RewardIndex     uint32
	Canonical       bool
}
