// Package normalizer maps decoded blocks into stored entities.
package normalizer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/codec"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

// Normalizer builds block updates and runs post processors.
type Normalizer struct {
	logger     *zap.Logger
	processors []PostProcessor
}

// New creates a Normalizer with optional post processors.
func New(logger *zap.Logger, processors ...PostProcessor) *Normalizer {
	return &Normalizer{logger: logger, processors: processors}
}

// Normalize maps a parsed block into its entity set. Events keep the node
// order and index; transactions keep the node tx index.
func (n *Normalizer) Normalize(parsed *decoder.ParsedBlock) (model.BlockUpdate, error) {
	return Normalize(parsed)
}

// PostProcess runs every post processor. Failures are logged and do not
// propagate.
func (n *Normalizer) PostProcess(ctx context.Context, parsed *decoder.ParsedBlock, update *model.BlockUpdate) {
	for _, p := range n.processors {
		started := time.Now()
		if err := p.Process(ctx, parsed, update); err != nil {
			n.logger.Warn("post processor failed",
				zap.String("processor", p.Name()),
				zap.String("index_block_hash", update.Block.IndexBlockHash),
				zap.Uint64("block_height", update.Block.BlockHeight),
				zap.Duration("elapsed", time.Since(started)),
				zap.Error(err),
			)
		}
	}
}

// Normalize maps a parsed block into its entity set.
func Normalize(parsed *decoder.ParsedBlock) (model.BlockUpdate, error) {
	block := parsed.Block
	update := model.BlockUpdate{
		Block:        block,
		MinerRewards: make([]model.MinerReward, 0, len(parsed.MinerRewards)),
		Txs:          make([]model.TxUpdate, 0, len(parsed.Txs)),
	}

	for _, r := range parsed.MinerRewards {
		update.MinerRewards = append(update.MinerRewards, model.MinerReward{
			BlockHash:               r.FromBlockHash,
			IndexBlockHash:          block.IndexBlockHash,
			FromIndexBlockHash:      r.FromIndexBlockHash,
			MatureBlockHeight:       block.BlockHeight,
			Recipient:               r.Recipient,
			CoinbaseAmount:          r.CoinbaseAmount,
			TxFeesAnchoredShared:    r.TxFeesAnchoredShared,
			TxFeesAnchoredExclusive: r.TxFeesAnchoredExclusive,
			TxFeesStreamedConfirmed: r.TxFeesStreamedConfirmed,
			Canonical:               block.Canonical,
		})
	}

	byTxID := make(map[string]int, len(parsed.Txs))
	for i := range parsed.Txs {
		ptx := &parsed.Txs[i]
		tx := model.Tx{
			TxBase:         TxBase(ptx.Decoded, ptx.Raw, ptx.SenderAddress, ptx.SponsorAddress),
			IndexBlockHash: block.IndexBlockHash,
			BlockHash:      block.BlockHash,
			BlockHeight:    block.BlockHeight,
			BurnBlockTime:  block.BurnBlockTime,
			TxIndex:        ptx.TxIndex,
			RawResult:      ptx.RawResult,
			Canonical:      block.Canonical,
		}
		tx.Status = ptx.Status

		tu := model.TxUpdate{Tx: tx}
		if tx.SmartContract != nil {
			tu.SmartContracts = append(tu.SmartContracts, model.SmartContract{
				TxID:           tx.TxID,
				ContractID:     tx.SmartContract.ContractID,
				BlockHeight:    block.BlockHeight,
				IndexBlockHash: block.IndexBlockHash,
				SourceCode:     tx.SmartContract.SourceCode,
				ABI:            ptx.ContractABI,
				Canonical:      block.Canonical,
			})
		}
		byTxID[tx.TxID] = len(update.Txs)
		update.Txs = append(update.Txs, tu)
	}

	for _, ev := range parsed.Events {
		idx, ok := byTxID[ev.TxID]
		if !ok {
			return model.BlockUpdate{}, model.DecodeErrorf("event", "event %d references unknown tx %s", ev.EventIndex, ev.TxID)
		}
		tu := &update.Txs[idx]
		base := model.EventBase{
			EventIndex:     ev.EventIndex,
			TxID:           ev.TxID,
			TxIndex:        tu.Tx.TxIndex,
			BlockHeight:    block.BlockHeight,
			IndexBlockHash: block.IndexBlockHash,
			Canonical:      block.Canonical,
		}
		entity, err := eventEntity(base, ev)
		if err != nil {
			return model.BlockUpdate{}, err
		}
		tu.Events = append(tu.Events, entity)
	}
	return update, nil
}

func eventEntity(base model.EventBase, ev decoder.ParsedEvent) (model.Event, error) {
	switch ev.Type {
	case decoder.EventStxTransfer, decoder.EventStxMint, decoder.EventStxBurn:
		return &model.StxEvent{
			EventBase:      base,
			AssetEventType: ev.AssetEventType,
			Sender:         ev.Sender,
			Recipient:      ev.Recipient,
			Amount:         ev.Amount,
		}, nil
	case decoder.EventStxLock:
		return &model.StxLockEvent{
			EventBase:     base,
			LockedAmount:  ev.LockedAmount,
			UnlockHeight:  ev.UnlockHeight,
			LockedAddress: ev.LockedAddress,
		}, nil
	case decoder.EventFtTransfer, decoder.EventFtMint, decoder.EventFtBurn:
		return &model.FtEvent{
			EventBase:       base,
			AssetEventType:  ev.AssetEventType,
			AssetIdentifier: ev.AssetIdentifier,
			Sender:          ev.Sender,
			Recipient:       ev.Recipient,
			Amount:          ev.Amount,
		}, nil
	case decoder.EventNftTransfer, decoder.EventNftMint, decoder.EventNftBurn:
		return &model.NftEvent{
			EventBase:       base,
			AssetEventType:  ev.AssetEventType,
			AssetIdentifier: ev.AssetIdentifier,
			Sender:          ev.Sender,
			Recipient:       ev.Recipient,
			Value:           ev.Value,
		}, nil
	case decoder.EventContract:
		return &model.ContractLogEvent{
			EventBase:          base,
			ContractIdentifier: ev.ContractIdentifier,
			Topic:              ev.Topic,
			Value:              ev.Value,
		}, nil
	default:
		return nil, model.DecodeErrorf("event", "unexpected event type %q", ev.Type)
	}
}

// TxBase maps a decoded transaction into the fields shared by mined and
// mempool rows.
func TxBase(tx *codec.Transaction, raw []byte, sender, sponsor string) model.TxBase {
	base := model.TxBase{
		TxID:           tx.TxID,
		RawTx:          raw,
		Status:         model.TxStatusPending,
		PostConditions: tx.RawPostConditions,
		FeeRate:        tx.Fee(),
		Nonce:          tx.Auth.Origin.Nonce,
		Sponsored:      tx.Auth.Type == codec.AuthTypeSponsored,
		SponsorAddress: sponsor,
		SenderAddress:  sender,
		OriginHashMode: tx.Auth.Origin.HashMode,
	}

	p := tx.Payload
	switch p.Type {
	case codec.PayloadTokenTransfer:
		base.Type = model.TxTypeTokenTransfer
		base.TokenTransfer = &model.TokenTransferPayload{
			Recipient: p.TokenTransfer.Recipient.Principal,
			Amount:    p.TokenTransfer.Amount,
			Memo:      p.TokenTransfer.Memo,
		}
	case codec.PayloadSmartContract:
		base.Type = model.TxTypeSmartContract
		base.SmartContract = &model.SmartContractPayload{
			ContractID: sender + "." + p.SmartContract.Name,
			SourceCode: p.SmartContract.CodeBody,
		}
	case codec.PayloadContractCall:
		base.Type = model.TxTypeContractCall
		base.ContractCall = &model.ContractCallPayload{
			ContractID:   p.ContractCall.ContractID(),
			FunctionName: p.ContractCall.FunctionName,
			FunctionArgs: p.ContractCall.RawArgs,
		}
	case codec.PayloadPoisonMicroblock:
		base.Type = model.TxTypePoisonMicroblock
		base.PoisonMicroblock = &model.PoisonMicroblockPayload{
			Header1: p.PoisonMicroblock.Header1,
			Header2: p.PoisonMicroblock.Header2,
		}
	case codec.PayloadCoinbase:
		base.Type = model.TxTypeCoinbase
		base.Coinbase = &model.CoinbasePayload{Payload: p.Coinbase.Payload}
	}
	return base
}

// MempoolTx maps a decoded mempool transaction into its stored row.
func MempoolTx(tx decoder.ParsedMempoolTx) (model.MempoolTx, error) {
	if tx.Decoded == nil {
		return model.MempoolTx{}, model.DecodeErrorf("mempool transaction", "%s has no decoded payload", tx.TxID)
	}
	return model.MempoolTx{
		TxBase:      TxBase(tx.Decoded, tx.Raw, tx.SenderAddress, tx.SponsorAddress),
		ReceiptTime: tx.ReceiptTime,
	}, nil
}
