// Package datastore is the store facade used by the ingestion queue and the
// read API. Writes run the canonicalization engine inside one storage
// transaction; reads share one snapshot per call.
package datastore

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/chain"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/notify"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository"
	"go.uber.org/zap"
)

// Store wraps a storage backend with the chain engine.
type Store struct {
	backend  repository.Backend
	engine   *chain.Engine
	notifier Notifier
	logger   *zap.Logger
}

// New builds a Store. notifier may be nil.
func New(backend repository.Backend, engine *chain.Engine, notifier Notifier, logger *zap.Logger) *Store {
	return &Store{
		backend:  backend,
		engine:   engine,
		notifier: notifier,
		logger:   logger.Named("datastore"),
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) write(ctx context.Context, fn func(tx chain.WriteTx) error) error {
	ws, err := s.backend.BeginWrite(ctx)
	if err != nil {
		return fmt.Errorf("begin write: %w", err)
	}
	// Commit ends the session whether or not it succeeds.
	committing := false
	defer func() {
		if committing {
			return
		}
		if rbErr := ws.Rollback(); rbErr != nil {
			s.logger.Error("rollback failed", zap.Error(rbErr))
		}
	}()

	if err := fn(ws); err != nil {
		return err
	}
	committing = true
	if err := ws.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) read(ctx context.Context, fn func(r chain.ReadTx) error) error {
	rs, err := s.backend.BeginRead(ctx)
	if err != nil {
		return fmt.Errorf("begin read: %w", err)
	}
	defer func() {
		if err := rs.Rollback(); err != nil {
			s.logger.Warn("release read session failed", zap.Error(err))
		}
	}()
	return fn(rs)
}

func (s *Store) publish(n notify.Notification) {
	if s.notifier != nil {
		s.notifier.Publish(n)
	}
}

// Update applies a normalized block atomically. Nothing is written when an
// error is returned.
func (s *Store) Update(ctx context.Context, update *model.BlockUpdate) (chain.UpdateResult, error) {
	var res chain.UpdateResult
	err := s.write(ctx, func(tx chain.WriteTx) error {
		var err error
		res, err = s.engine.UpdateChainTip(ctx, tx, update)
		return err
	})
	if err != nil {
		return chain.UpdateResult{}, fmt.Errorf("update block %s: %w", update.Block.IndexBlockHash, err)
	}

	s.logger.Debug("block applied",
		zap.String("index_block_hash", update.Block.IndexBlockHash),
		zap.Uint64("block_height", update.Block.BlockHeight),
		zap.Bool("inserted", res.Inserted),
		zap.Bool("canonical", res.Canonical),
		zap.Int("txs", len(update.Txs)),
		zap.Int("pruned", len(res.Pruned)),
		zap.Int("restored", len(res.Restored)),
	)
	if res.Inserted {
		s.notifyBlock(update, res)
	}
	return res, nil
}

func (s *Store) notifyBlock(update *model.BlockUpdate, res chain.UpdateResult) {
	block := update.Block
	block.Canonical = res.Canonical
	n := notify.Notification{Kind: notify.BlockApplied, Block: block}
	if res.Reorg != nil {
		n.ReorgDepth = res.Reorg.Depth()
		n.Restored = res.Reorg.Restored
		n.Orphaned = res.Reorg.Orphaned
	}
	s.publish(n)

	for _, tu := range update.Txs {
		s.publish(notify.Notification{Kind: notify.TxApplied, TxID: tu.Tx.TxID, Canonical: res.Canonical})
	}
	for _, txID := range res.Restored {
		s.publish(notify.Notification{Kind: notify.TxApplied, TxID: txID, Mempool: true})
	}
	for address, txIDs := range update.AffectedAddresses() {
		s.publish(notify.Notification{Kind: notify.AddressAffected, Address: address, TxIDs: txIDs})
	}
}

// UpdateBurnchainRewards replaces the rewards of a burn block and returns how
// many earlier rows were invalidated.
func (s *Store) UpdateBurnchainRewards(ctx context.Context, burnBlockHash string, burnBlockHeight uint64, rewards []model.BurnchainReward) (int, error) {
	var invalidated int
	err := s.write(ctx, func(tx chain.WriteTx) error {
		var err error
		invalidated, err = s.engine.ApplyBurnchainRewards(ctx, tx, burnBlockHash, burnBlockHeight, rewards)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("update burnchain rewards of %s: %w", burnBlockHash, err)
	}
	return invalidated, nil
}

// UpdateMempoolTxs stores unseen mempool transactions and returns the ids
// inserted.
func (s *Store) UpdateMempoolTxs(ctx context.Context, txs []model.MempoolTx) ([]string, error) {
	var inserted []string
	err := s.write(ctx, func(tx chain.WriteTx) error {
		var err error
		inserted, err = s.engine.ApplyMempoolTxs(ctx, tx, txs)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update mempool txs: %w", err)
	}

	for _, txID := range inserted {
		s.publish(notify.Notification{Kind: notify.TxApplied, TxID: txID, Mempool: true})
	}
	return inserted, nil
}

// UpdateNames stores BNS rows, each superseding the latest row of the same
// name, namespace or subdomain.
func (s *Store) UpdateNames(ctx context.Context, names []model.BNSName, namespaces []model.BNSNamespace, subdomains []model.BNSSubdomain) error {
	err := s.write(ctx, func(tx chain.WriteTx) error {
		for _, ns := range namespaces {
			if err := tx.UpsertNamespace(ctx, ns); err != nil {
				return err
			}
		}
		for _, name := range names {
			if err := tx.UpsertName(ctx, name); err != nil {
				return err
			}
		}
		if len(subdomains) > 0 {
			return tx.UpsertSubdomains(ctx, subdomains)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update names: %w", err)
	}
	return nil
}
