package model

import "github.com/shopspring/decimal"

// StxLock describes the active lock on an address.
type StxLock struct {
	LockTxID            string
	LockedAmount        decimal.Decimal
	UnlockHeight        uint64
	BurnchainLockHeight uint64
}

// StxBalance is the STX balance breakdown of an address at a block.
type StxBalance struct {
	Balance                   decimal.Decimal
	TotalSent                 decimal.Decimal
	TotalReceived             decimal.Decimal
	TotalFeesSent             decimal.Decimal
	TotalMinerRewardsReceived decimal.Decimal
	Lock                      *StxLock
}

// AssetTotals are the canonical credits and debits of one asset.
type AssetTotals struct {
	AssetIdentifier string
	Credit          decimal.Decimal
	Debit           decimal.Decimal
}

// FtBalance is a fungible token balance.
type FtBalance struct {
	AssetIdentifier string
	Balance         decimal.Decimal
	TotalSent       decimal.Decimal
	TotalReceived   decimal.Decimal
}

// NftCount is the number of tokens of one NFT class held.
type NftCount struct {
	AssetIdentifier string
	Count           decimal.Decimal
	TotalSent       decimal.Decimal
	TotalReceived   decimal.Decimal
}
