package transport

import (
	"encoding/hex"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

type blockDTO struct {
	Hash                 string `json:"hash"`
	IndexBlockHash       string `json:"index_block_hash"`
	Height               uint64 `json:"height"`
	ParentIndexBlockHash string `json:"parent_index_block_hash"`
	ParentBlockHash      string `json:"parent_block_hash"`
	ParentMicroblock     string `json:"parent_microblock"`
	BurnBlockTime        int64  `json:"burn_block_time"`
	BurnBlockHash        string `json:"burn_block_hash"`
	BurnBlockHeight      uint64 `json:"burn_block_height"`
	MinerTxID            string `json:"miner_txid"`
	Canonical            bool   `json:"canonical"`
}

func newBlockDTO(b model.Block) blockDTO {
	return blockDTO{
		Hash:                 b.BlockHash,
		IndexBlockHash:       b.IndexBlockHash,
		Height:               b.BlockHeight,
		ParentIndexBlockHash: b.ParentIndexBlockHash,
		ParentBlockHash:      b.ParentBlockHash,
		ParentMicroblock:     b.ParentMicroblock,
		BurnBlockTime:        b.BurnBlockTime,
		BurnBlockHash:        b.BurnBlockHash,
		BurnBlockHeight:      b.BurnBlockHeight,
		MinerTxID:            b.MinerTxID,
		Canonical:            b.Canonical,
	}
}

type txDTO struct {
	TxID           string `json:"tx_id"`
	TxType         string `json:"tx_type"`
	TxStatus       string `json:"tx_status"`
	Nonce          uint64 `json:"nonce"`
	FeeRate        uint64 `json:"fee_rate"`
	SenderAddress  string `json:"sender_address"`
	Sponsored      bool   `json:"sponsored"`
	SponsorAddress string `json:"sponsor_address,omitempty"`

	TokenTransfer *tokenTransferDTO `json:"token_transfer,omitempty"`
	SmartContract *smartContractDTO `json:"smart_contract,omitempty"`
	ContractCall  *contractCallDTO  `json:"contract_call,omitempty"`

	BlockHash      string `json:"block_hash,omitempty"`
	IndexBlockHash string `json:"index_block_hash,omitempty"`
	BlockHeight    uint64 `json:"block_height,omitempty"`
	BurnBlockTime  int64  `json:"burn_block_time,omitempty"`
	TxIndex        uint32 `json:"tx_index"`
	TxResult       string `json:"tx_result,omitempty"`
	Canonical      bool   `json:"canonical"`

	ReceiptTime int64 `json:"receipt_time,omitempty"`
	Pruned      bool  `json:"pruned,omitempty"`
}

type tokenTransferDTO struct {
	RecipientAddress string `json:"recipient_address"`
	Amount           string `json:"amount"`
	Memo             string `json:"memo"`
}

type smartContractDTO struct {
	ContractID string `json:"contract_id"`
	SourceCode string `json:"source_code"`
}

type contractCallDTO struct {
	ContractID   string `json:"contract_id"`
	FunctionName string `json:"function_name"`
}

func newTxBaseDTO(t model.TxBase) txDTO {
	dto := txDTO{
		TxID:           t.TxID,
		TxType:         t.Type.String(),
		TxStatus:       t.Status.String(),
		Nonce:          t.Nonce,
		FeeRate:        t.FeeRate,
		SenderAddress:  t.SenderAddress,
		Sponsored:      t.Sponsored,
		SponsorAddress: t.SponsorAddress,
	}
	if p := t.TokenTransfer; p != nil {
		dto.TokenTransfer = &tokenTransferDTO{
			RecipientAddress: p.Recipient,
			Amount:           decimal.NewFromUint64(p.Amount).String(),
			Memo:             hexString(p.Memo),
		}
	}
	if p := t.SmartContract; p != nil {
		dto.SmartContract = &smartContractDTO{ContractID: p.ContractID, SourceCode: p.SourceCode}
	}
	if p := t.ContractCall; p != nil {
		dto.ContractCall = &contractCallDTO{ContractID: p.ContractID, FunctionName: p.FunctionName}
	}
	return dto
}

func newTxDTO(t model.Tx) txDTO {
	dto := newTxBaseDTO(t.TxBase)
	dto.BlockHash = t.BlockHash
	dto.IndexBlockHash = t.IndexBlockHash
	dto.BlockHeight = t.BlockHeight
	dto.BurnBlockTime = t.BurnBlockTime
	dto.TxIndex = t.TxIndex
	dto.TxResult = t.RawResult
	dto.Canonical = t.Canonical
	return dto
}

func newMempoolTxDTO(t model.MempoolTx) txDTO {
	dto := newTxBaseDTO(t.TxBase)
	dto.ReceiptTime = t.ReceiptTime
	dto.Pruned = t.Pruned
	return dto
}

func newTxDTOs(txs []model.Tx) []txDTO {
	out := make([]txDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, newTxDTO(t))
	}
	return out
}

type eventDTO struct {
	EventIndex      uint32           `json:"event_index"`
	EventType       string           `json:"event_type"`
	TxID            string           `json:"tx_id"`
	AssetEventType  string           `json:"asset_event_type,omitempty"`
	AssetIdentifier string           `json:"asset_id,omitempty"`
	Sender          string           `json:"sender,omitempty"`
	Recipient       string           `json:"recipient,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Value           string           `json:"value,omitempty"`
	LockedAmount    *decimal.Decimal `json:"locked_amount,omitempty"`
	UnlockHeight    uint64           `json:"unlock_height,omitempty"`
	LockedAddress   string           `json:"locked_address,omitempty"`
	ContractID      string           `json:"contract_id,omitempty"`
	Topic           string           `json:"topic,omitempty"`
}

func newEventDTO(ev model.Event) eventDTO {
	base := ev.Base()
	dto := eventDTO{
		EventIndex: base.EventIndex,
		EventType:  ev.Kind().String(),
		TxID:       base.TxID,
	}
	switch e := ev.(type) {
	case *model.StxEvent:
		dto.AssetEventType = e.AssetEventType.String()
		dto.Sender, dto.Recipient = e.Sender, e.Recipient
		dto.Amount = &e.Amount
	case *model.StxLockEvent:
		dto.LockedAmount = &e.LockedAmount
		dto.UnlockHeight = e.UnlockHeight
		dto.LockedAddress = e.LockedAddress
	case *model.FtEvent:
		dto.AssetEventType = e.AssetEventType.String()
		dto.AssetIdentifier = e.AssetIdentifier
		dto.Sender, dto.Recipient = e.Sender, e.Recipient
		dto.Amount = &e.Amount
	case *model.NftEvent:
		dto.AssetEventType = e.AssetEventType.String()
		dto.AssetIdentifier = e.AssetIdentifier
		dto.Sender, dto.Recipient = e.Sender, e.Recipient
		dto.Value = hexString(e.Value)
	case *model.ContractLogEvent:
		dto.ContractID = e.ContractIdentifier
		dto.Topic = e.Topic
		dto.Value = hexString(e.Value)
	}
	return dto
}

func newEventDTOs(events []model.Event) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for _, ev := range events {
		out = append(out, newEventDTO(ev))
	}
	return out
}

type stxBalanceDTO struct {
	Balance                   decimal.Decimal  `json:"balance"`
	TotalSent                 decimal.Decimal  `json:"total_sent"`
	TotalReceived             decimal.Decimal  `json:"total_received"`
	TotalFeesSent             decimal.Decimal  `json:"total_fees_sent"`
	TotalMinerRewardsReceived decimal.Decimal  `json:"total_miner_rewards_received"`
	LockTxID                  string           `json:"lock_tx_id"`
	Locked                    *decimal.Decimal `json:"locked"`
	LockHeight                uint64           `json:"burnchain_lock_height"`
	UnlockHeight              uint64           `json:"burnchain_unlock_height"`
}

func newStxBalanceDTO(b model.StxBalance) stxBalanceDTO {
	zero := decimal.Zero
	dto := stxBalanceDTO{
		Balance:                   b.Balance,
		TotalSent:                 b.TotalSent,
		TotalReceived:             b.TotalReceived,
		TotalFeesSent:             b.TotalFeesSent,
		TotalMinerRewardsReceived: b.TotalMinerRewardsReceived,
		Locked:                    &zero,
	}
	if b.Lock != nil {
		dto.LockTxID = b.Lock.LockTxID
		dto.Locked = &b.Lock.LockedAmount
		dto.LockHeight = b.Lock.BurnchainLockHeight
		dto.UnlockHeight = b.Lock.UnlockHeight
	}
	return dto
}

type ftBalanceDTO struct {
	Balance       decimal.Decimal `json:"balance"`
	TotalSent     decimal.Decimal `json:"total_sent"`
	TotalReceived decimal.Decimal `json:"total_received"`
}

type nftCountDTO struct {
	Count         decimal.Decimal `json:"count"`
	TotalSent     decimal.Decimal `json:"total_sent"`
	TotalReceived decimal.Decimal `json:"total_received"`
}

type balancesDTO struct {
	Stx            stxBalanceDTO           `json:"stx"`
	FungibleTokens map[string]ftBalanceDTO `json:"fungible_tokens"`
	NonFungible    map[string]nftCountDTO  `json:"non_fungible_tokens"`
}

type contractDTO struct {
	TxID        string `json:"tx_id"`
	ContractID  string `json:"contract_id"`
	BlockHeight uint64 `json:"block_height"`
	SourceCode  string `json:"source_code"`
	ABI         string `json:"abi"`
	Canonical   bool   `json:"canonical"`
}

type burnchainRewardDTO struct {
	BurnBlockHash   string          `json:"burn_block_hash"`
	BurnBlockHeight uint64          `json:"burn_block_height"`
	BurnAmount      decimal.Decimal `json:"burn_amount"`
	RewardRecipient string          `json:"reward_recipient"`
	RewardAmount    decimal.Decimal `json:"reward_amount"`
	RewardIndex     uint32          `json:"reward_index"`
	Canonical       bool            `json:"canonical"`
}

type searchDTO struct {
	EntityID   string    `json:"entity_id"`
	EntityType string    `json:"entity_type"`
	Block      *blockDTO `json:"block_data,omitempty"`
	Tx         *txDTO    `json:"tx_data,omitempty"`
}

func newSearchDTO(r model.SearchResult) searchDTO {
	dto := searchDTO{EntityID: r.ID, EntityType: string(r.Entity)}
	switch {
	case r.Block != nil:
		b := newBlockDTO(*r.Block)
		dto.Block = &b
	case r.Tx != nil:
		t := newTxDTO(*r.Tx)
		dto.Tx = &t
	case r.MempoolTx != nil:
		t := newMempoolTxDTO(*r.MempoolTx)
		dto.Tx = &t
	}
	return dto
}

type nameDTO struct {
	Address      string `json:"address"`
	Blockchain   string `json:"blockchain"`
	ExpireBlock  uint64 `json:"expire_block"`
	LastTxID     string `json:"last_txid"`
	Status       string `json:"status"`
	Zonefile     string `json:"zonefile"`
	ZonefileHash string `json:"zonefile_hash"`
}

type namespaceDTO struct {
	NamespaceID      string          `json:"namespace_id"`
	Address          string          `json:"address"`
	LaunchedAt       uint64          `json:"launched_at"`
	RevealedAt       uint64          `json:"revealed_at"`
	Lifetime         uint64          `json:"lifetime"`
	Base             decimal.Decimal `json:"base"`
	Coeff            decimal.Decimal `json:"coeff"`
	NoVowelDiscount  decimal.Decimal `json:"no_vowel_discount"`
	NonAlphaDiscount decimal.Decimal `json:"nonalpha_discount"`
	Buckets          string          `json:"buckets"`
	Status           string          `json:"status"`
	Ready            bool            `json:"ready"`
}

type pageDTO[T any] struct {
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
	Total   int `json:"total"`
	Results []T `json:"results"`
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
