package decoder

import (
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/codec"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

// EventType is the node's name for an event payload.
type EventType string

var (
	EventContract    EventType = "contract_event"
	EventStxTransfer EventType = "stx_transfer_event"
	EventStxMint     EventType = "stx_mint_event"
	EventStxBurn     EventType = "stx_burn_event"
	EventStxLock     EventType = "stx_lock_event"
	EventFtTransfer  EventType = "ft_transfer_event"
	EventFtMint      EventType = "ft_mint_event"
	EventFtBurn      EventType = "ft_burn_event"
	EventNftTransfer EventType = "nft_transfer_event"
	EventNftMint     EventType = "nft_mint_event"
	EventNftBurn     EventType = "nft_burn_event"
)

// ParsedBlock is a decoded /new_block message.
type ParsedBlock struct {
	Block        model.Block
	Txs          []ParsedTx
	Events       []ParsedEvent
	MinerRewards []ParsedMinerReward
}

// Tx returns the parsed transaction with the given id.
func (b *ParsedBlock) Tx(txID string) (*ParsedTx, bool) {
	for i := range b.Txs {
		if b.Txs[i].TxID == txID {
			return &b.Txs[i], true
		}
	}
	return nil, false
}

// ParsedTx is a mined transaction with its decoded payload.
type ParsedTx struct {
	TxID           string
	TxIndex        uint32
	Status         model.TxStatus
	RawResult      string
	Raw            []byte
	Decoded        *codec.Transaction
	SenderAddress  string
	SponsorAddress string
	ContractABI    string
}

// FunctionName returns the called function of a contract-call transaction.
func (t *ParsedTx) FunctionName() string {
	if t.Decoded == nil || t.Decoded.Payload.ContractCall == nil {
		return ""
	}
	return t.Decoded.Payload.ContractCall.FunctionName
}

// ParsedEvent is a decoded node event.
type ParsedEvent struct {
	TxID       string
	EventIndex uint32
	Type       EventType

	AssetEventType  model.AssetEventType
	AssetIdentifier string
	Sender          string
	Recipient       string
	Amount          decimal.Decimal
	Value           []byte

	LockedAmount  decimal.Decimal
	UnlockHeight  uint64
	LockedAddress string

	ContractIdentifier string
	Topic              string
}

// ParsedMinerReward is a matured miner reward.
type ParsedMinerReward struct {
	FromIndexBlockHash      string
	FromBlockHash           string
	Recipient               string
	CoinbaseAmount          decimal.Decimal
	TxFeesAnchoredShared    decimal.Decimal
	TxFeesAnchoredExclusive decimal.Decimal
	TxFeesStreamedConfirmed decimal.Decimal
}

// ParsedBurnBlock is a decoded /new_burn_block message.
type ParsedBurnBlock struct {
	BurnBlockHash   string
	BurnBlockHeight uint64
	BurnAmount      decimal.Decimal
	Rewards         []ParsedBurnReward
}

// ParsedBurnReward is one reward recipient of a burn block.
type ParsedBurnReward struct {
	Recipient string
	Amount    decimal.Decimal
}

// ParsedMempoolTx is a decoded unconfirmed transaction.
type ParsedMempoolTx struct {
	TxID           string
	Raw            []byte
	Decoded        *codec.Transaction
	SenderAddress  string
	SponsorAddress string
	ReceiptTime    int64
}
