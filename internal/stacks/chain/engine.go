// Package chain implements the canonicalization engine and the balance and
// search queries over abstract storage transactions.
package chain

import (
	"context"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"go.uber.org/zap"
)

// Engine applies block, burn block and mempool updates inside a caller
// provided WriteTx. It holds no chain state of its own.
type Engine struct {
	logger  *zap.Logger
	metrics Metrics
}

// NewEngine creates an Engine.
func NewEngine(logger *zap.Logger, metrics Metrics) *Engine {
	return &Engine{
		logger:  logger.Named("chain"),
		metrics: metrics,
	}
}

// Reorg describes the blocks whose canonical flag flipped while applying
// one block.
type Reorg struct {
	Restored []model.BlockRef
	Orphaned []model.BlockRef
	Entities model.UpdatedEntities
}

// Depth is the number of heights whose canonical block changed.
func (r *Reorg) Depth() int {
	return len(r.Restored)
}

// UpdateResult is the outcome of UpdateChainTip.
type UpdateResult struct {
	Inserted  bool
	Canonical bool
	Reorg     *Reorg
	// Pruned and Restored list mempool tx ids whose pending state changed.
	Pruned   []string
	Restored []string
}

// UpdateChainTip inserts the block bundle, promoting the branch its parent
// sits on when the block outgrows the current canonical tip. update has its
// canonical flags set in place.
func (e *Engine) UpdateChainTip(ctx context.Context, tx WriteTx, update *model.BlockUpdate) (UpdateResult, error) {
	block := update.Block
	logger := e.logger.With(
		zap.String("index_block_hash", block.IndexBlockHash),
		zap.Uint64("block_height", block.BlockHeight),
	)

	tip, found, err := tx.ChainTip(ctx)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("get chain tip: %w", err)
	}

	var (
		result    UpdateResult
		toPrune   []string
		toUnprune []string
	)

	if found && block.BlockHeight > 1 {
		reorg, pruneCandidates, restoreCandidates, err := e.handleParent(ctx, tx, block, tip)
		if err != nil {
			return UpdateResult{}, err
		}
		if reorg != nil {
			result.Reorg = reorg
			toPrune = append(toPrune, pruneCandidates...)
			toUnprune = append(toUnprune, restoreCandidates...)
		}
	}

	result.Canonical = !found || block.BlockHeight > tip.BlockHeight
	update.SetCanonical(result.Canonical)

	inserted, err := tx.InsertBlock(ctx, update.Block)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("insert block: %w", err)
	}
	result.Inserted = inserted
	if inserted {
		if err := insertDependents(ctx, tx, update); err != nil {
			return UpdateResult{}, err
		}
	} else {
		logger.Debug("block already stored")
	}

	if result.Canonical {
		toPrune = append(toPrune, update.MempoolCandidates()...)
	}

	result.Pruned, result.Restored, err = reconcileMempool(ctx, tx, toPrune, toUnprune)
	if err != nil {
		return UpdateResult{}, err
	}

	if result.Canonical {
		e.metrics.ObserveChainTip(block.BlockHeight)
	}
	if result.Reorg != nil {
		e.metrics.ObserveReorg(result.Reorg.Depth(), result.Reorg.Entities)
		logger.Info("chain reorganized",
			zap.Int("depth", result.Reorg.Depth()),
			zap.Int("marked_canonical", result.Reorg.Entities.MarkedCanonical.Total()),
			zap.Int("marked_non_canonical", result.Reorg.Entities.MarkedNonCanonical.Total()),
			zap.Int("mempool_pruned", len(result.Pruned)),
			zap.Int("mempool_restored", len(result.Restored)),
		)
	}
	logger.Debug("block applied",
		zap.Bool("canonical", result.Canonical),
		zap.Bool("inserted", result.Inserted),
		zap.Int("txs", len(update.Txs)),
		zap.Int("events", update.EventCount()),
	)

	return result, nil
}

// handleParent checks the declared parent of block and walks the orphaned
// branch back to canonical when the block wins a fork.
func (e *Engine) handleParent(
	ctx context.Context,
	tx WriteTx,
	block model.Block,
	tip model.BlockRef,
) (*Reorg, []string, []string, error) {
	parents, err := tx.BlocksAt(ctx, block.BlockHeight-1, block.ParentIndexBlockHash)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get parent block: %w", err)
	}
	switch len(parents) {
	case 0:
		return nil, nil, nil, model.NewChainConsistencyError(block.IndexBlockHash, block.BlockHeight,
			"parent block %s not found", block.ParentIndexBlockHash)
	case 1:
	default:
		return nil, nil, nil, model.NewChainConsistencyError(block.IndexBlockHash, block.BlockHeight,
			"found %d parent blocks %s", len(parents), block.ParentIndexBlockHash)
	}

	parent := parents[0]
	if parent.Canonical || block.BlockHeight <= tip.BlockHeight {
		return nil, nil, nil, nil
	}

	return e.restoreOrphanedChain(ctx, tx, parent)
}

// restoreOrphanedChain flips start and each non-canonical ancestor to
// canonical, orphaning the block that held each height. It returns the
// mempool prune and restore candidates collected along the way.
func (e *Engine) restoreOrphanedChain(
	ctx context.Context,
	tx WriteTx,
	start model.BlockRef,
) (*Reorg, []string, []string, error) {
	var (
		reorg     Reorg
		toPrune   []string
		toUnprune []string
	)

	target := start
	for {
		restored, err := tx.RestoreBlock(ctx, target.IndexBlockHash)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("restore block: %w", err)
		}
		switch len(restored) {
		case 0:
			return nil, nil, nil, model.NewChainConsistencyError(target.IndexBlockHash, target.BlockHeight,
				"no orphaned block to restore")
		case 1:
		default:
			return nil, nil, nil, model.NewChainConsistencyError(target.IndexBlockHash, target.BlockHeight,
				"restored %d blocks", len(restored))
		}
		current := restored[0]
		reorg.Restored = append(reorg.Restored, current)

		orphaned, err := tx.OrphanBlocksAtHeight(ctx, current.BlockHeight, current.IndexBlockHash)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("orphan blocks at height %d: %w", current.BlockHeight, err)
		}
		for _, o := range orphaned {
			marked, err := tx.MarkEntitiesCanonical(ctx, o.IndexBlockHash, false)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("mark entities non-canonical: %w", err)
			}
			reorg.Orphaned = append(reorg.Orphaned, o)
			reorg.Entities.MarkedNonCanonical.Add(marked.Counts)
			reorg.Entities.MarkedNonCanonical.Blocks++
			toUnprune = append(toUnprune, marked.TxIDs...)
		}

		marked, err := tx.MarkEntitiesCanonical(ctx, current.IndexBlockHash, true)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("mark entities canonical: %w", err)
		}
		reorg.Entities.MarkedCanonical.Add(marked.Counts)
		reorg.Entities.MarkedCanonical.Blocks++
		toPrune = append(toPrune, marked.TxIDs...)

		e.logger.Debug("block restored",
			zap.String("index_block_hash", current.IndexBlockHash),
			zap.Uint64("block_height", current.BlockHeight),
			zap.Int("orphaned", len(orphaned)),
		)

		if current.BlockHeight <= 1 {
			break
		}
		parents, err := tx.BlocksAt(ctx, current.BlockHeight-1, current.ParentIndexBlockHash)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("get parent block: %w", err)
		}
		next := nonCanonical(parents)
		if len(next) == 0 {
			break
		}
		if len(next) > 1 {
			return nil, nil, nil, model.NewChainConsistencyError(current.IndexBlockHash, current.BlockHeight,
				"found %d non-canonical parent blocks %s", len(next), current.ParentIndexBlockHash)
		}
		target = next[0]
	}

	return &reorg, toPrune, toUnprune, nil
}

func nonCanonical(refs []model.BlockRef) []model.BlockRef {
	var out []model.BlockRef
	for _, ref := range refs {
		if !ref.Canonical {
			out = append(out, ref)
		}
	}
	return out
}

func insertDependents(ctx context.Context, tx WriteTx, update *model.BlockUpdate) error {
	if len(update.MinerRewards) > 0 {
		if err := tx.InsertMinerRewards(ctx, update.MinerRewards); err != nil {
			return fmt.Errorf("insert miner rewards: %w", err)
		}
	}
	if len(update.Txs) == 0 {
		return nil
	}

	txs := make([]model.Tx, 0, len(update.Txs))
	events := make([]model.Event, 0, update.EventCount())
	var contracts []model.SmartContract
	for _, tu := range update.Txs {
		txs = append(txs, tu.Tx)
		events = append(events, tu.Events...)
		contracts = append(contracts, tu.SmartContracts...)
	}

	if err := tx.InsertTxs(ctx, txs); err != nil {
		return fmt.Errorf("insert txs: %w", err)
	}
	if len(events) > 0 {
		if err := tx.InsertEvents(ctx, events); err != nil {
			return fmt.Errorf("insert events: %w", err)
		}
	}
	if len(contracts) > 0 {
		if err := tx.InsertSmartContracts(ctx, contracts); err != nil {
			return fmt.Errorf("insert smart contracts: %w", err)
		}
	}
	return nil
}

// reconcileMempool prunes every candidate that is mined canonically and
// restores every unprune candidate that no longer is.
func reconcileMempool(ctx context.Context, tx WriteTx, pruneCandidates, restoreCandidates []string) ([]string, []string, error) {
	all := dedupe(append(append([]string(nil), pruneCandidates...), restoreCandidates...))
	if len(all) == 0 {
		return nil, nil, nil
	}

	mined, err := tx.CanonicalTxIDs(ctx, all)
	if err != nil {
		return nil, nil, fmt.Errorf("get canonical tx ids: %w", err)
	}
	minedSet := make(map[string]struct{}, len(mined))
	for _, id := range mined {
		minedSet[id] = struct{}{}
	}

	var prune, restore []string
	for _, id := range all {
		if _, ok := minedSet[id]; ok {
			prune = append(prune, id)
		}
	}
	for _, id := range dedupe(restoreCandidates) {
		if _, ok := minedSet[id]; !ok {
			restore = append(restore, id)
		}
	}

	if len(prune) > 0 {
		if _, err := tx.PruneMempoolTxs(ctx, prune); err != nil {
			return nil, nil, fmt.Errorf("prune mempool txs: %w", err)
		}
	}
	if len(restore) > 0 {
		if _, err := tx.RestoreMempoolTxs(ctx, restore); err != nil {
			return nil, nil, fmt.Errorf("restore mempool txs: %w", err)
		}
	}
	return prune, restore, nil
}

// dedupe returns the distinct ids in sorted order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
