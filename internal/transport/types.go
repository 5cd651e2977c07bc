package transport

import (
	"context"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/decoder"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ingester interface {
		SubmitBlock(ctx context.Context, msg *decoder.BlockMessage) error
		SubmitBurnBlock(ctx context.Context, msg *decoder.BurnBlockMessage) error
		SubmitMempoolBatch(ctx context.Context, rawTxs []string) error
	}

	Reader interface {
		CurrentBlock(ctx context.Context) (model.Block, bool, error)
		BlockByHeight(ctx context.Context, height uint64) (model.Block, bool, error)
		Block(ctx context.Context, hash string) (model.Block, bool, error)
		Blocks(ctx context.Context, page model.Page) ([]model.Block, int, error)
		BlockTxs(ctx context.Context, indexBlockHash string) ([]string, error)
		Tx(ctx context.Context, txID string) (model.Tx, bool, error)
		TxList(ctx context.Context, filter model.TxFilter, page model.Page) ([]model.Tx, int, error)
		TxEvents(ctx context.Context, txID, indexBlockHash string) ([]model.Event, error)
		MempoolTx(ctx context.Context, txID string) (model.MempoolTx, bool, error)
		MempoolTxList(ctx context.Context, page model.Page) ([]model.MempoolTx, int, error)
		AddressTxs(ctx context.Context, address string, page model.Page) ([]model.Tx, int, error)
		AddressAssetEvents(ctx context.Context, address string, page model.Page) ([]model.Event, error)
		StxBalance(ctx context.Context, address string) (model.StxBalance, error)
		StxBalanceAtBlock(ctx context.Context, address string, height uint64) (model.StxBalance, bool, error)
		FungibleTokenBalances(ctx context.Context, address string) ([]model.FtBalance, error)
		NonFungibleTokenCounts(ctx context.Context, address string) ([]model.NftCount, error)
		SmartContract(ctx context.Context, contractID string) (model.SmartContract, bool, error)
		SmartContractEvents(ctx context.Context, contractID string, page model.Page) ([]model.ContractLogEvent, error)
		BurnchainRewards(ctx context.Context, recipient string, page model.Page) ([]model.BurnchainReward, error)
		BurnchainRewardTotal(ctx context.Context, recipient string) (decimal.Decimal, error)
		Search(ctx context.Context, term string) (model.SearchResult, bool, error)
		Namespaces(ctx context.Context) ([]string, error)
		NamespaceNames(ctx context.Context, namespaceID string, page int) ([]string, error)
		Namespace(ctx context.Context, namespaceID string) (model.BNSNamespace, bool, error)
		Name(ctx context.Context, name string) (model.BNSName, bool, error)
		Subdomain(ctx context.Context, fullyQualifiedName string) (model.BNSSubdomain, bool, error)
	}
)
