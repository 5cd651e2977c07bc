// Package decoder turns node event-observer payloads into parsed records.
package decoder

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/codec"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

const hashLength = 32

// Decoder decodes node messages. It is safe for concurrent use.
type Decoder struct {
	burnchainParams *chaincfg.Params
}

// New creates a Decoder validating burn-chain addresses against params.
func New(burnchainParams *chaincfg.Params) (*Decoder, error) {
	if burnchainParams == nil {
		return nil, errors.New("burnchain params are required")
	}
	return &Decoder{burnchainParams: burnchainParams}, nil
}

// BurnchainParams resolves a burn-chain network name.
func BurnchainParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, errors.New("unknown burnchain network " + name)
	}
}

// DecodeBlock validates a block message and decodes its transactions.
func (d *Decoder) DecodeBlock(msg *BlockMessage) (*ParsedBlock, error) {
	if msg == nil {
		return nil, model.DecodeErrorf("block", "empty message")
	}

	var err error
	block := model.Block{
		BlockHeight:     msg.BlockHeight,
		BurnBlockTime:   msg.BurnBlockTime,
		BurnBlockHeight: msg.BurnBlockHeight,
		Canonical:       true,
	}
	if block.BlockHash, err = normalizeHash("block_hash", msg.BlockHash); err != nil {
		return nil, err
	}
	if block.IndexBlockHash, err = normalizeHash("index_block_hash", msg.IndexBlockHash); err != nil {
		return nil, err
	}
	if block.ParentIndexBlockHash, err = normalizeHash("parent_index_block_hash", msg.ParentIndexBlockHash); err != nil {
		return nil, err
	}
	if block.ParentBlockHash, err = normalizeHash("parent_block_hash", msg.ParentBlockHash); err != nil {
		return nil, err
	}
	if block.BurnBlockHash, err = normalizeHash("burn_block_hash", msg.BurnBlockHash); err != nil {
		return nil, err
	}
	if block.ParentMicroblock, err = normalizeOptionalHash("parent_microblock", msg.ParentMicroblock); err != nil {
		return nil, err
	}
	if block.MinerTxID, err = normalizeOptionalHash("miner_txid", msg.MinerTxID); err != nil {
		return nil, err
	}

	parsed := &ParsedBlock{
		Block:        block,
		Txs:          make([]ParsedTx, 0, len(msg.Transactions)),
		Events:       make([]ParsedEvent, 0, len(msg.Events)),
		MinerRewards: make([]ParsedMinerReward, 0, len(msg.MaturedMinerRewards)),
	}

	for i := range msg.Transactions {
		tx, err := decodeBlockTx(&msg.Transactions[i])
		if err != nil {
			return nil, err
		}
		parsed.Txs = append(parsed.Txs, tx)
	}
	for i := range msg.Events {
		ev, err := decodeEvent(&msg.Events[i])
		if err != nil {
			return nil, err
		}
		parsed.Events = append(parsed.Events, ev)
	}
	for _, r := range msg.MaturedMinerRewards {
		reward, err := decodeMinerReward(r)
		if err != nil {
			return nil, err
		}
		parsed.MinerRewards = append(parsed.MinerRewards, reward)
	}
	return parsed, nil
}

func decodeBlockTx(msg *TxMessage) (ParsedTx, error) {
	txID, err := normalizeHash("txid", msg.TxID)
	if err != nil {
		return ParsedTx{}, err
	}
	status, err := parseTxStatus(msg.Status)
	if err != nil {
		return ParsedTx{}, err
	}
	decoded, raw, err := codec.DecodeTransactionHex(msg.RawTx)
	if err != nil {
		return ParsedTx{}, model.NewDecodeError("transaction "+txID, err)
	}
	if decoded.TxID != txID {
		return ParsedTx{}, model.DecodeErrorf("transaction "+txID, "raw bytes hash to %s", decoded.TxID)
	}

	tx := ParsedTx{
		TxID:           txID,
		TxIndex:        msg.TxIndex,
		Status:         status,
		RawResult:      msg.RawResult,
		Raw:            raw,
		Decoded:        decoded,
		SenderAddress:  decoded.SenderAddress(),
		SponsorAddress: decoded.SponsorAddress(),
	}
	if len(msg.ContractABI) > 0 && string(msg.ContractABI) != "null" {
		if !json.Valid(msg.ContractABI) {
			return ParsedTx{}, model.DecodeErrorf("transaction "+txID, "contract_abi is not valid json")
		}
		tx.ContractABI = string(msg.ContractABI)
	}
	return tx, nil
}

func parseTxStatus(s string) (model.TxStatus, error) {
	switch s {
	case "success":
		return model.TxStatusSuccess, nil
	case "abort_by_response":
		return model.TxStatusAbortByResponse, nil
	case "abort_by_post_condition":
		return model.TxStatusAbortByPostCondition, nil
	default:
		return 0, model.DecodeErrorf("transaction status", "unexpected status %q", s)
	}
}

func decodeEvent(msg *EventMessage) (ParsedEvent, error) {
	txID, err := normalizeHash("event txid", msg.TxID)
	if err != nil {
		return ParsedEvent{}, err
	}
	ev := ParsedEvent{
		TxID:       txID,
		EventIndex: msg.EventIndex,
		Type:       EventType(msg.Type),
	}

	missing := func() (ParsedEvent, error) {
		return ParsedEvent{}, model.DecodeErrorf("event", "%s at index %d has no payload", msg.Type, msg.EventIndex)
	}

	switch ev.Type {
	case EventContract:
		p := msg.ContractEvent
		if p == nil {
			return missing()
		}
		ev.ContractIdentifier = p.ContractIdentifier
		ev.Topic = p.Topic
		if ev.Value, err = codec.DecodeHex(p.RawValue); err != nil {
			return ParsedEvent{}, model.NewDecodeError("contract event value", err)
		}
	case EventStxLock:
		p := msg.StxLockEvent
		if p == nil {
			return missing()
		}
		ev.LockedAmount = p.LockedAmount
		ev.UnlockHeight = uint64(p.UnlockHeight)
		ev.LockedAddress = p.LockedAddress
	case EventStxTransfer, EventStxMint, EventStxBurn,
		EventFtTransfer, EventFtMint, EventFtBurn,
		EventNftTransfer, EventNftMint, EventNftBurn:
		p, assetType := assetPayload(msg)
		if p == nil {
			return missing()
		}
		ev.AssetEventType = assetType
		ev.AssetIdentifier = p.AssetIdentifier
		ev.Sender = p.Sender
		ev.Recipient = p.Recipient
		ev.Amount = p.Amount
		if ev.Type == EventNftTransfer || ev.Type == EventNftMint || ev.Type == EventNftBurn {
			if ev.Value, err = codec.DecodeHex(p.RawValue); err != nil {
				return ParsedEvent{}, model.NewDecodeError("nft event value", err)
			}
		}
	default:
		return ParsedEvent{}, model.DecodeErrorf("event", "unexpected event type %q", msg.Type)
	}
	return ev, nil
}

func assetPayload(msg *EventMessage) (*AssetEventMessage, model.AssetEventType) {
	switch EventType(msg.Type) {
	case EventStxTransfer:
		return msg.StxTransferEvent, model.AssetEventTransfer
	case EventStxMint:
		return msg.StxMintEvent, model.AssetEventMint
	case EventStxBurn:
		return msg.StxBurnEvent, model.AssetEventBurn
	case EventFtTransfer:
		return msg.FtTransferEvent, model.AssetEventTransfer
	case EventFtMint:
		return msg.FtMintEvent, model.AssetEventMint
	case EventFtBurn:
		return msg.FtBurnEvent, model.AssetEventBurn
	case EventNftTransfer:
		return msg.NftTransferEvent, model.AssetEventTransfer
	case EventNftMint:
		return msg.NftMintEvent, model.AssetEventMint
	case EventNftBurn:
		return msg.NftBurnEvent, model.AssetEventBurn
	default:
		return nil, 0
	}
}

func decodeMinerReward(msg MinerRewardMessage) (ParsedMinerReward, error) {
	from, err := normalizeHash("from_index_consensus_hash", msg.FromIndexConsensusHash)
	if err != nil {
		return ParsedMinerReward{}, err
	}
	blockHash, err := normalizeHash("from_stacks_block_hash", msg.FromStacksBlockHash)
	if err != nil {
		return ParsedMinerReward{}, err
	}
	if msg.Recipient == "" {
		return ParsedMinerReward{}, model.DecodeErrorf("miner reward", "missing recipient")
	}
	return ParsedMinerReward{
		FromIndexBlockHash:      from,
		FromBlockHash:           blockHash,
		Recipient:               msg.Recipient,
		CoinbaseAmount:          msg.CoinbaseAmount,
		TxFeesAnchoredShared:    msg.TxFeesAnchoredShared,
		TxFeesAnchoredExclusive: msg.TxFeesAnchoredExclusive,
		TxFeesStreamedConfirmed: msg.TxFeesStreamedConfirmed,
	}, nil
}

// DecodeBurnBlock validates a burn block message and its reward recipients.
func (d *Decoder) DecodeBurnBlock(msg *BurnBlockMessage) (*ParsedBurnBlock, error) {
	if msg == nil {
		return nil, model.DecodeErrorf("burn block", "empty message")
	}
	hashHex := strings.TrimPrefix(msg.BurnBlockHash, "0x")
	if len(hashHex) != chainhash.MaxHashStringSize {
		return nil, model.DecodeErrorf("burn_block_hash", "expected %d hex characters, got %d", chainhash.MaxHashStringSize, len(hashHex))
	}
	hash, err := chainhash.NewHashFromStr(hashHex)
	if err != nil {
		return nil, model.NewDecodeError("burn_block_hash", err)
	}

	parsed := &ParsedBurnBlock{
		BurnBlockHash:   "0x" + hash.String(),
		BurnBlockHeight: msg.BurnBlockHeight,
		BurnAmount:      msg.BurnAmount,
		Rewards:         make([]ParsedBurnReward, 0, len(msg.RewardRecipients)),
	}
	for _, r := range msg.RewardRecipients {
		addr, err := btcutil.DecodeAddress(r.Recipient, d.burnchainParams)
		if err != nil {
			return nil, model.NewDecodeError("reward recipient "+r.Recipient, err)
		}
		if !addr.IsForNet(d.burnchainParams) {
			return nil, model.DecodeErrorf("reward recipient "+r.Recipient, "address is not for %s", d.burnchainParams.Name)
		}
		if r.Amount.IsNegative() {
			return nil, model.DecodeErrorf("reward recipient "+r.Recipient, "negative amount %s", r.Amount)
		}
		parsed.Rewards = append(parsed.Rewards, ParsedBurnReward{
			Recipient: addr.EncodeAddress(),
			Amount:    r.Amount,
		})
	}
	return parsed, nil
}

// DecodeMempoolTx decodes one hex-encoded raw transaction.
func (d *Decoder) DecodeMempoolTx(rawHex string, receiptTime int64) (ParsedMempoolTx, error) {
	decoded, raw, err := codec.DecodeTransactionHex(rawHex)
	if err != nil {
		return ParsedMempoolTx{}, model.NewDecodeError("mempool transaction", err)
	}
	return ParsedMempoolTx{
		TxID:           decoded.TxID,
		Raw:            raw,
		Decoded:        decoded,
		SenderAddress:  decoded.SenderAddress(),
		SponsorAddress: decoded.SponsorAddress(),
		ReceiptTime:    receiptTime,
	}, nil
}

// DecodeMempoolTxs decodes a batch of raw transactions. Any malformed
// transaction fails the whole batch.
func (d *Decoder) DecodeMempoolTxs(rawHex []string, receiptTime int64) ([]ParsedMempoolTx, error) {
	out := make([]ParsedMempoolTx, 0, len(rawHex))
	for _, raw := range rawHex {
		tx, err := d.DecodeMempoolTx(raw, receiptTime)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

func normalizeHash(field, s string) (string, error) {
	b, err := codec.DecodeHex(s)
	if err != nil {
		return "", model.NewDecodeError(field, err)
	}
	if len(b) != hashLength {
		return "", model.DecodeErrorf(field, "expected %d bytes, got %d", hashLength, len(b))
	}
	return "0x" + hex.EncodeToString(b), nil
}

func normalizeOptionalHash(field, s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return normalizeHash(field, s)
}
