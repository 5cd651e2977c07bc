package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/chain"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Decoder turns node message bodies into parsed records.
	Decoder interface {
		DecodeBlock(msg *decoder.BlockMessage) (*decoder.ParsedBlock, error)
		DecodeBurnBlock(msg *decoder.BurnBlockMessage) (*decoder.ParsedBurnBlock, error)
		DecodeMempoolTxs(rawHex []string, receiptTime int64) ([]decoder.ParsedMempoolTx, error)
	}

	// Normalizer maps parsed blocks to entities and runs post processors.
	Normalizer interface {
		Normalize(parsed *decoder.ParsedBlock) (model.BlockUpdate, error)
		PostProcess(ctx context.Context, parsed *decoder.ParsedBlock, update *model.BlockUpdate)
	}

	// Store persists the normalized entities.
	Store interface {
		Update(ctx context.Context, update *model.BlockUpdate) (chain.UpdateResult, error)
		UpdateBurnchainRewards(ctx context.Context, burnBlockHash string, burnBlockHeight uint64, rewards []model.BurnchainReward) (int, error)
		UpdateMempoolTxs(ctx context.Context, txs []model.MempoolTx) ([]string, error)
	}

	// BurnBlockVerifier cross-checks a burn block against the burn chain.
	BurnBlockVerifier interface {
		VerifyBurnBlock(ctx context.Context, block *decoder.ParsedBurnBlock) error
	}

	// Metrics records queue activity.
	Metrics interface {
		ObserveMessage(kind string, err error, started time.Time)
		SetQueueDepth(depth int)
	}
)
