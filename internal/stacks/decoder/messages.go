package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// BlockMessage is the body of a node /new_block request.
type BlockMessage struct {
	BlockHash            string               `json:"block_hash"`
	BlockHeight          uint64               `json:"block_height"`
	BurnBlockTime        int64                `json:"burn_block_time"`
	BurnBlockHash        string               `json:"burn_block_hash"`
	BurnBlockHeight      uint64               `json:"burn_block_height"`
	MinerTxID            string               `json:"miner_txid"`
	IndexBlockHash       string               `json:"index_block_hash"`
	ParentIndexBlockHash string               `json:"parent_index_block_hash"`
	ParentBlockHash      string               `json:"parent_block_hash"`
	ParentMicroblock     string               `json:"parent_microblock"`
	Events               []EventMessage       `json:"events"`
	Transactions         []TxMessage          `json:"transactions"`
	MaturedMinerRewards  []MinerRewardMessage `json:"matured_miner_rewards"`
}

// TxMessage is a mined transaction inside a BlockMessage.
type TxMessage struct {
	RawTx       string          `json:"raw_tx"`
	Status      string          `json:"status"`
	RawResult   string          `json:"raw_result"`
	TxID        string          `json:"txid"`
	TxIndex     uint32          `json:"tx_index"`
	ContractABI json.RawMessage `json:"contract_abi"`
}

// MinerRewardMessage is a matured miner reward.
type MinerRewardMessage struct {
	FromIndexConsensusHash  string          `json:"from_index_consensus_hash"`
	FromStacksBlockHash     string          `json:"from_stacks_block_hash"`
	Recipient               string          `json:"recipient"`
	CoinbaseAmount          decimal.Decimal `json:"coinbase_amount"`
	TxFeesAnchoredShared    decimal.Decimal `json:"tx_fees_anchored_shared"`
	TxFeesAnchoredExclusive decimal.Decimal `json:"tx_fees_anchored_exclusive"`
	TxFeesStreamedConfirmed decimal.Decimal `json:"tx_fees_streamed_confirmed"`
}

// EventMessage is a node event. Exactly one payload field matches Type.
type EventMessage struct {
	TxID       string `json:"txid"`
	EventIndex uint32 `json:"event_index"`
	Type       string `json:"type"`

	ContractEvent    *ContractEventMessage `json:"contract_event,omitempty"`
	StxTransferEvent *AssetEventMessage    `json:"stx_transfer_event,omitempty"`
	StxMintEvent     *AssetEventMessage    `json:"stx_mint_event,omitempty"`
	StxBurnEvent     *AssetEventMessage    `json:"stx_burn_event,omitempty"`
	StxLockEvent     *StxLockEventMessage  `json:"stx_lock_event,omitempty"`
	FtTransferEvent  *AssetEventMessage    `json:"ft_transfer_event,omitempty"`
	FtMintEvent      *AssetEventMessage    `json:"ft_mint_event,omitempty"`
	FtBurnEvent      *AssetEventMessage    `json:"ft_burn_event,omitempty"`
	NftTransferEvent *AssetEventMessage    `json:"nft_transfer_event,omitempty"`
	NftMintEvent     *AssetEventMessage    `json:"nft_mint_event,omitempty"`
	NftBurnEvent     *AssetEventMessage    `json:"nft_burn_event,omitempty"`
}

// ContractEventMessage is a contract print event.
type ContractEventMessage struct {
	ContractIdentifier string `json:"contract_identifier"`
	Topic              string `json:"topic"`
	RawValue           string `json:"raw_value"`
}

// AssetEventMessage covers STX, FT and NFT transfer, mint and burn payloads.
type AssetEventMessage struct {
	AssetIdentifier string          `json:"asset_identifier,omitempty"`
	Sender          string          `json:"sender,omitempty"`
	Recipient       string          `json:"recipient,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	RawValue        string          `json:"raw_value,omitempty"`
}

// StxLockEventMessage locks STX until a burn height.
type StxLockEventMessage struct {
	LockedAmount  decimal.Decimal `json:"locked_amount"`
	UnlockHeight  FlexUint64      `json:"unlock_height"`
	LockedAddress string          `json:"locked_address"`
}

// BurnBlockMessage is the body of a node /new_burn_block request.
type BurnBlockMessage struct {
	BurnBlockHash     string                   `json:"burn_block_hash"`
	BurnBlockHeight   uint64                   `json:"burn_block_height"`
	BurnAmount        decimal.Decimal          `json:"burn_amount"`
	RewardRecipients  []RewardRecipientMessage `json:"reward_recipients"`
	RewardSlotHolders []string                 `json:"reward_slot_holders"`
}

// RewardRecipientMessage is one burn-chain payout.
type RewardRecipientMessage struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amt"`
}

// UnmarshalJSON accepts both "amt" and "amount".
func (m *RewardRecipientMessage) UnmarshalJSON(b []byte) error {
	var raw struct {
		Recipient string           `json:"recipient"`
		Amt       *decimal.Decimal `json:"amt"`
		Amount    *decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	m.Recipient = raw.Recipient
	switch {
	case raw.Amt != nil:
		m.Amount = *raw.Amt
	case raw.Amount != nil:
		m.Amount = *raw.Amount
	default:
		return fmt.Errorf("reward recipient %s has no amount", raw.Recipient)
	}
	return nil
}

// FlexUint64 accepts a JSON number or a decimal string.
type FlexUint64 uint64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexUint64) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("parse uint64 %q: %w", b, err)
	}
	*f = FlexUint64(v)
	return nil
}
