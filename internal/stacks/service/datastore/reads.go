package datastore

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/chain"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

// CurrentBlock returns the canonical chain tip.
func (s *Store) CurrentBlock(ctx context.Context) (block model.Block, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		block, found, err = r.CurrentBlock(ctx)
		return err
	})
	return block, found, err
}

// BlockByHeight returns the canonical block at height.
func (s *Store) BlockByHeight(ctx context.Context, height uint64) (block model.Block, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		block, found, err = r.BlockByHeight(ctx, height)
		return err
	})
	return block, found, err
}

// Block returns a block by block hash or index block hash.
func (s *Store) Block(ctx context.Context, hash string) (block model.Block, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		block, found, err = r.BlockByHash(ctx, hash)
		return err
	})
	return block, found, err
}

// Blocks returns a page of canonical blocks and the total.
func (s *Store) Blocks(ctx context.Context, page model.Page) (blocks []model.Block, total int, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		blocks, total, err = r.BlockList(ctx, page)
		return err
	})
	return blocks, total, err
}

// BlockTxs lists the tx ids of a block.
func (s *Store) BlockTxs(ctx context.Context, indexBlockHash string) (ids []string, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		ids, err = r.BlockTxIDs(ctx, indexBlockHash)
		return err
	})
	return ids, err
}

// Tx returns a mined transaction.
func (s *Store) Tx(ctx context.Context, txID string) (tx model.Tx, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		tx, found, err = r.TxByID(ctx, txID)
		return err
	})
	return tx, found, err
}

// TxList returns a page of canonical transactions and the total.
func (s *Store) TxList(ctx context.Context, filter model.TxFilter, page model.Page) (txs []model.Tx, total int, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		txs, total, err = r.TxList(ctx, filter, page)
		return err
	})
	return txs, total, err
}

// TxEvents returns the events of a transaction in one block.
func (s *Store) TxEvents(ctx context.Context, txID, indexBlockHash string) (events []model.Event, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		events, err = r.TxEvents(ctx, txID, indexBlockHash)
		return err
	})
	return events, err
}

// MempoolTx returns a pending transaction.
func (s *Store) MempoolTx(ctx context.Context, txID string) (tx model.MempoolTx, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		tx, found, err = r.MempoolTx(ctx, txID)
		return err
	})
	return tx, found, err
}

// MempoolTxList returns a page of pending transactions and the total.
func (s *Store) MempoolTxList(ctx context.Context, page model.Page) (txs []model.MempoolTx, total int, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		txs, total, err = r.MempoolTxList(ctx, page)
		return err
	})
	return txs, total, err
}

// AddressTxs returns a page of canonical transactions touching address.
func (s *Store) AddressTxs(ctx context.Context, address string, page model.Page) (txs []model.Tx, total int, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		txs, total, err = r.AddressTxs(ctx, address, page)
		return err
	})
	return txs, total, err
}

// AddressAssetEvents returns a page of canonical asset events of address.
func (s *Store) AddressAssetEvents(ctx context.Context, address string, page model.Page) (events []model.Event, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		events, err = r.AddressAssetEvents(ctx, address, page)
		return err
	})
	return events, err
}

// StxBalance returns the balance of address at the chain tip. An empty chain
// yields a zero balance.
func (s *Store) StxBalance(ctx context.Context, address string) (balance model.StxBalance, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		tip, found, err := r.CurrentBlock(ctx)
		if err != nil {
			return fmt.Errorf("get current block: %w", err)
		}
		if !found {
			return nil
		}
		balance, err = chain.StxBalanceAt(ctx, r, address, tip)
		return err
	})
	return balance, err
}

// StxBalanceAtBlock returns the balance of address at the canonical block of
// height. found is false when there is no such block.
func (s *Store) StxBalanceAtBlock(ctx context.Context, address string, height uint64) (balance model.StxBalance, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		block, ok, err := r.BlockByHeight(ctx, height)
		if err != nil {
			return fmt.Errorf("get block at height %d: %w", height, err)
		}
		if !ok {
			return nil
		}
		found = true
		balance, err = chain.StxBalanceAt(ctx, r, address, block)
		return err
	})
	return balance, found, err
}

// FungibleTokenBalances returns the token balances of address.
func (s *Store) FungibleTokenBalances(ctx context.Context, address string) (balances []model.FtBalance, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		balances, err = chain.FungibleBalances(ctx, r, address)
		return err
	})
	return balances, err
}

// NonFungibleTokenCounts returns the NFT holdings of address per class.
func (s *Store) NonFungibleTokenCounts(ctx context.Context, address string) (counts []model.NftCount, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		counts, err = chain.NonFungibleCounts(ctx, r, address)
		return err
	})
	return counts, err
}

// SmartContract returns a deployed contract.
func (s *Store) SmartContract(ctx context.Context, contractID string) (contract model.SmartContract, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		contract, found, err = r.SmartContract(ctx, contractID)
		return err
	})
	return contract, found, err
}

// SmartContractEvents returns a page of canonical prints of a contract.
func (s *Store) SmartContractEvents(ctx context.Context, contractID string, page model.Page) (logs []model.ContractLogEvent, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		logs, err = r.ContractLogs(ctx, contractID, page)
		return err
	})
	return logs, err
}

// BurnchainRewards returns a page of canonical burn-chain payouts. An empty
// recipient lists every recipient.
func (s *Store) BurnchainRewards(ctx context.Context, recipient string, page model.Page) (rewards []model.BurnchainReward, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		rewards, err = r.BurnchainRewards(ctx, recipient, page)
		return err
	})
	return rewards, err
}

// BurnchainRewardTotal sums the canonical payouts of a recipient.
func (s *Store) BurnchainRewardTotal(ctx context.Context, recipient string) (total decimal.Decimal, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		total, err = r.BurnchainRewardTotal(ctx, recipient)
		return err
	})
	return total, err
}

// Search resolves a hash or principal.
func (s *Store) Search(ctx context.Context, term string) (result model.SearchResult, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		result, found, err = chain.Search(ctx, r, term)
		return err
	})
	return result, found, err
}

// Namespaces lists current BNS namespaces.
func (s *Store) Namespaces(ctx context.Context) (ids []string, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		ids, err = r.Namespaces(ctx)
		return err
	})
	return ids, err
}

// NamespaceNames lists a page of names of a namespace.
func (s *Store) NamespaceNames(ctx context.Context, namespaceID string, page int) (names []string, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		names, err = r.NamespaceNames(ctx, namespaceID, page)
		return err
	})
	return names, err
}

// Namespace returns the current row of a namespace.
func (s *Store) Namespace(ctx context.Context, namespaceID string) (ns model.BNSNamespace, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		ns, found, err = r.Namespace(ctx, namespaceID)
		return err
	})
	return ns, found, err
}

// Name returns the current row of a name.
func (s *Store) Name(ctx context.Context, name string) (n model.BNSName, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		n, found, err = r.Name(ctx, name)
		return err
	})
	return n, found, err
}

// Subdomain returns the current row of a subdomain.
func (s *Store) Subdomain(ctx context.Context, fullyQualifiedName string) (sub model.BNSSubdomain, found bool, err error) {
	err = s.read(ctx, func(r chain.ReadTx) error {
		sub, found, err = r.Subdomain(ctx, fullyQualifiedName)
		return err
	})
	return sub, found, err
}
