// Package mirror copies applied blocks and canonical flag changes into the
// analytics store.
package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/notify"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository/clickhouse"
	"github.com/goodnatureofminers/stacks-indexer/pkg/batcher"
	"github.com/goodnatureofminers/stacks-indexer/pkg/safe"
	"go.uber.org/zap"
)

const subscriptionBuffer = 1024

type entry struct {
	block  clickhouse.BlockRecord
	states []clickhouse.CanonicalState
	reorg  *clickhouse.Reorg
}

// Service mirrors BlockApplied notifications.
type Service struct {
	bus     *notify.Bus
	repo    Repository
	metrics Metrics
	cfg     batcher.Config
	logger  *zap.Logger
	now     func() time.Time
}

func New(bus *notify.Bus, repo Repository, metrics Metrics, cfg batcher.Config, logger *zap.Logger) *Service {
	return &Service{
		bus:     bus,
		repo:    repo,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger.Named("mirror"),
		now:     time.Now,
	}
}

// Run consumes notifications until ctx is canceled, then flushes what is
// buffered. Notifications dropped by a full subscription are not replayed.
func (s *Service) Run(ctx context.Context) error {
	tip, found, err := s.repo.CanonicalTip(ctx)
	if err != nil {
		return fmt.Errorf("load mirror tip: %w", err)
	}
	s.logger.Info("mirror started", zap.Uint64("tip", tip), zap.Bool("empty", !found))

	sub := s.bus.Subscribe(subscriptionBuffer, notify.ForKinds(notify.BlockApplied))
	defer s.bus.Unsubscribe(sub)

	b := batcher.New[entry](s.logger, s.cfg, s.flush, s.metrics.ObserveFlush)
	b.Start(ctx)
	defer b.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-sub.C():
			if !ok {
				return nil
			}
			if err := b.Add(ctx, s.entryOf(n)); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("queue mirror entry: %w", err)
			}
		}
	}
}

func (s *Service) entryOf(n notify.Notification) entry {
	observed := s.now().UTC()
	e := entry{
		block: clickhouse.BlockRecord{Block: n.Block, ObservedAt: observed},
	}
	// a block applied on a non-canonical branch has no state change.
	if n.Block.Canonical {
		e.states = append(e.states, stateOf(n.Block.Ref(), true, observed))
	}
	for _, ref := range n.Restored {
		if ref.IndexBlockHash == n.Block.IndexBlockHash {
			continue
		}
		e.states = append(e.states, stateOf(ref, true, observed))
	}
	for _, ref := range n.Orphaned {
		e.states = append(e.states, stateOf(ref, false, observed))
	}
	if n.ReorgDepth > 0 || len(n.Orphaned) > 0 {
		depth, err := safe.Uint32(n.ReorgDepth)
		if err != nil {
			s.logger.Warn("reorg depth out of range", zap.Int("depth", n.ReorgDepth))
		}
		e.reorg = &clickhouse.Reorg{
			IndexBlockHash: n.Block.IndexBlockHash,
			BlockHeight:    n.Block.BlockHeight,
			Depth:          depth,
			Restored:       hashes(n.Restored),
			Orphaned:       hashes(n.Orphaned),
			ObservedAt:     observed,
		}
	}
	return e
}

func (s *Service) flush(ctx context.Context, entries []entry) error {
	blocks := make([]clickhouse.BlockRecord, 0, len(entries))
	var (
		states []clickhouse.CanonicalState
		reorgs []clickhouse.Reorg
	)
	for _, e := range entries {
		blocks = append(blocks, e.block)
		states = append(states, e.states...)
		if e.reorg != nil {
			reorgs = append(reorgs, *e.reorg)
		}
	}

	if err := s.repo.InsertBlocks(ctx, blocks); err != nil {
		return fmt.Errorf("mirror blocks: %w", err)
	}
	if err := s.repo.InsertCanonicalStates(ctx, states); err != nil {
		return fmt.Errorf("mirror canonical states: %w", err)
	}
	if err := s.repo.InsertReorgs(ctx, reorgs); err != nil {
		return fmt.Errorf("mirror reorgs: %w", err)
	}
	return nil
}

func stateOf(ref model.BlockRef, canonical bool, observed time.Time) clickhouse.CanonicalState {
	return clickhouse.CanonicalState{
		IndexBlockHash: ref.IndexBlockHash,
		BlockHeight:    ref.BlockHeight,
		Canonical:      canonical,
		ObservedAt:     observed,
	}
}

func hashes(refs []model.BlockRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.IndexBlockHash)
	}
	return out
}
