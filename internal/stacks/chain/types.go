package chain

import (
	"context"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// WriteTx is the storage transaction the canonicalization engine runs in.
	// All calls made through one WriteTx commit or roll back together.
	WriteTx interface {
		ChainTip(ctx context.Context) (model.BlockRef, bool, error)
		BlocksAt(ctx context.Context, height uint64, indexBlockHash string) ([]model.BlockRef, error)
		RestoreBlock(ctx context.Context, indexBlockHash string) ([]model.BlockRef, error)
		OrphanBlocksAtHeight(ctx context.Context, height uint64, keepIndexBlockHash string) ([]model.BlockRef, error)
		MarkEntitiesCanonical(ctx context.Context, indexBlockHash string, canonical bool) (model.MarkedEntities, error)
		CanonicalTxIDs(ctx context.Context, txIDs []string) ([]string, error)
		PruneMempoolTxs(ctx context.Context, txIDs []string) (int, error)
		RestoreMempoolTxs(ctx context.Context, txIDs []string) (int, error)
		InsertBlock(ctx context.Context, block model.Block) (bool, error)
		InsertMinerRewards(ctx context.Context, rewards []model.MinerReward) error
		InsertTxs(ctx context.Context, txs []model.Tx) error
		InsertEvents(ctx context.Context, events []model.Event) error
		InsertSmartContracts(ctx context.Context, contracts []model.SmartContract) error
		InvalidateBurnchainRewards(ctx context.Context, burnBlockHash string, burnBlockHeight uint64) (int, error)
		InsertBurnchainRewards(ctx context.Context, rewards []model.BurnchainReward) error
		InsertMempoolTxs(ctx context.Context, txs []model.MempoolTx) ([]string, error)
		UpsertName(ctx context.Context, name model.BNSName) error
		UpsertNamespace(ctx context.Context, namespace model.BNSNamespace) error
		UpsertSubdomains(ctx context.Context, subdomains []model.BNSSubdomain) error
	}

	// ReadTx is a consistent read snapshot.
	ReadTx interface {
		CurrentBlock(ctx context.Context) (model.Block, bool, error)
		BlockByHeight(ctx context.Context, height uint64) (model.Block, bool, error)
		BlockByHash(ctx context.Context, hash string) (model.Block, bool, error)
		BlockList(ctx context.Context, page model.Page) ([]model.Block, int, error)
		BlockTxIDs(ctx context.Context, indexBlockHash string) ([]string, error)
		TxByID(ctx context.Context, txID string) (model.Tx, bool, error)
		TxList(ctx context.Context, filter model.TxFilter, page model.Page) ([]model.Tx, int, error)
		TxEvents(ctx context.Context, txID string, indexBlockHash string) ([]model.Event, error)
		MempoolTx(ctx context.Context, txID string) (model.MempoolTx, bool, error)
		MempoolTxList(ctx context.Context, page model.Page) ([]model.MempoolTx, int, error)
		AddressTxs(ctx context.Context, address string, page model.Page) ([]model.Tx, int, error)
		AddressAssetEvents(ctx context.Context, address string, page model.Page) ([]model.Event, error)
		StxTotals(ctx context.Context, address string, height uint64) (model.AssetTotals, error)
		FeesPaid(ctx context.Context, address string, height uint64) (decimal.Decimal, error)
		MinerRewardsMatured(ctx context.Context, address string, height uint64) (decimal.Decimal, error)
		ActiveStxLocks(ctx context.Context, address string, height uint64, burnBlockHeight uint64) ([]model.ActiveLock, error)
		FtTotals(ctx context.Context, address string) ([]model.AssetTotals, error)
		NftTotals(ctx context.Context, address string) ([]model.AssetTotals, error)
		SmartContract(ctx context.Context, contractID string) (model.SmartContract, bool, error)
		ContractLogs(ctx context.Context, contractID string, page model.Page) ([]model.ContractLogEvent, error)
		BurnchainRewards(ctx context.Context, recipient string, page model.Page) ([]model.BurnchainReward, error)
		BurnchainRewardTotal(ctx context.Context, recipient string) (decimal.Decimal, error)
		MempoolTxByContractID(ctx context.Context, contractID string) (model.MempoolTx, bool, error)
		TxByContractID(ctx context.Context, contractID string) (model.Tx, bool, error)
		PrincipalSeen(ctx context.Context, principal string) (bool, error)
		Namespaces(ctx context.Context) ([]string, error)
		NamespaceNames(ctx context.Context, namespaceID string, page int) ([]string, error)
		Namespace(ctx context.Context, namespaceID string) (model.BNSNamespace, bool, error)
		Name(ctx context.Context, name string) (model.BNSName, bool, error)
		Subdomain(ctx context.Context, fullyQualifiedName string) (model.BNSSubdomain, bool, error)
	}

	// Metrics receives engine observations.
	Metrics interface {
		ObserveChainTip(height uint64)
		ObserveReorg(depth int, entities model.UpdatedEntities)
	}
)
