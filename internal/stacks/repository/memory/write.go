package memory

import (
	"context"
	"sort"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
)

func (w *writeTx) ChainTip(ctx context.Context) (model.BlockRef, bool, error) {
	if w.done {
		return model.BlockRef{}, false, ErrSessionClosed
	}
	block, found := w.state.tip()
	return block.Ref(), found, nil
}

func (w *writeTx) BlocksAt(ctx context.Context, height uint64, indexBlockHash string) ([]model.BlockRef, error) {
	if w.done {
		return nil, ErrSessionClosed
	}
	block, ok := w.state.blocks[indexBlockHash]
	if !ok || block.BlockHeight != height {
		return nil, nil
	}
	return []model.BlockRef{block.Ref()}, nil
}

func (w *writeTx) RestoreBlock(ctx context.Context, indexBlockHash string) ([]model.BlockRef, error) {
	if w.done {
		return nil, ErrSessionClosed
	}
	block, ok := w.state.blocks[indexBlockHash]
	if !ok || block.Canonical {
		return nil, nil
	}
	block.Canonical = true
	w.state.blocks[indexBlockHash] = block
	return []model.BlockRef{block.Ref()}, nil
}

func (w *writeTx) OrphanBlocksAtHeight(ctx context.Context, height uint64, keepIndexBlockHash string) ([]model.BlockRef, error) {
	if w.done {
		return nil, ErrSessionClosed
	}
	var out []model.BlockRef
	for hash, block := range w.state.blocks {
		if block.BlockHeight != height || !block.Canonical || hash == keepIndexBlockHash {
			continue
		}
		block.Canonical = false
		w.state.blocks[hash] = block
		out = append(out, block.Ref())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].IndexBlockHash < out[j].IndexBlockHash
	})
	return out, nil
}

func (w *writeTx) MarkEntitiesCanonical(ctx context.Context, indexBlockHash string, canonical bool) (model.MarkedEntities, error) {
	if w.done {
		return model.MarkedEntities{}, ErrSessionClosed
	}
	var marked model.MarkedEntities
	st := w.state

	for i := range st.txs {
		tx := &st.txs[i]
		if tx.IndexBlockHash != indexBlockHash || tx.Canonical == canonical {
			continue
		}
		tx.Canonical = canonical
		marked.Counts.Txs++
		if tx.Type != model.TxTypeCoinbase {
			marked.TxIDs = append(marked.TxIDs, tx.TxID)
		}
	}
	for i := range st.minerRewards {
		r := &st.minerRewards[i]
		if r.IndexBlockHash != indexBlockHash || r.Canonical == canonical {
			continue
		}
		r.Canonical = canonical
		marked.Counts.MinerRewards++
	}
	for _, ev := range st.events {
		base := ev.Base()
		if base.IndexBlockHash != indexBlockHash || base.Canonical == canonical {
			continue
		}
		base.Canonical = canonical
		switch ev.Kind() {
		case model.EventKindStxAsset:
			marked.Counts.StxEvents++
		case model.EventKindStxLock:
			marked.Counts.StxLockEvents++
		case model.EventKindFtAsset:
			marked.Counts.FtEvents++
		case model.EventKindNftAsset:
			marked.Counts.NftEvents++
		case model.EventKindContractLog:
			marked.Counts.ContractLogs++
		}
	}
	for i := range st.contracts {
		c := &st.contracts[i]
		if c.IndexBlockHash != indexBlockHash || c.Canonical == canonical {
			continue
		}
		c.Canonical = canonical
		marked.Counts.SmartContracts++
	}
	return marked, nil
}

func (w *writeTx) CanonicalTxIDs(ctx context.Context, txIDs []string) ([]string, error) {
	if w.done {
		return nil, ErrSessionClosed
	}
	want := make(map[string]struct{}, len(txIDs))
	for _, id := range txIDs {
		want[id] = struct{}{}
	}
	seen := make(map[string]struct{})
	var out []string
	for _, tx := range w.state.txs {
		if !tx.Canonical {
			continue
		}
		if _, ok := want[tx.TxID]; !ok {
			continue
		}
		if _, ok := seen[tx.TxID]; ok {
			continue
		}
		seen[tx.TxID] = struct{}{}
		out = append(out, tx.TxID)
	}
	return out, nil
}

func (w *writeTx) PruneMempoolTxs(ctx context.Context, txIDs []string) (int, error) {
	return w.setPruned(txIDs, true)
}

func (w *writeTx) RestoreMempoolTxs(ctx context.Context, txIDs []string) (int, error) {
	return w.setPruned(txIDs, false)
}

func (w *writeTx) setPruned(txIDs []string, pruned bool) (int, error) {
	if w.done {
		return 0, ErrSessionClosed
	}
	n := 0
	for _, id := range txIDs {
		mtx, ok := w.state.mempool[id]
		if !ok || mtx.Pruned == pruned {
			continue
		}
		mtx.Pruned = pruned
		w.state.mempool[id] = mtx
		n++
	}
	return n, nil
}

func (w *writeTx) InsertBlock(ctx context.Context, block model.Block) (bool, error) {
	if w.done {
		return false, ErrSessionClosed
	}
	if _, ok := w.state.blocks[block.IndexBlockHash]; ok {
		return false, nil
	}
	w.state.blocks[block.IndexBlockHash] = block
	return true, nil
}

func (w *writeTx) InsertMinerRewards(ctx context.Context, rewards []model.MinerReward) error {
	if w.done {
		return ErrSessionClosed
	}
	w.state.minerRewards = append(w.state.minerRewards, rewards...)
	return nil
}

func (w *writeTx) InsertTxs(ctx context.Context, txs []model.Tx) error {
	if w.done {
		return ErrSessionClosed
	}
	for _, tx := range txs {
		if w.state.hasTx(tx.TxID, tx.IndexBlockHash) {
			continue
		}
		w.state.txs = append(w.state.txs, tx)
	}
	return nil
}

func (w *writeTx) InsertEvents(ctx context.Context, events []model.Event) error {
	if w.done {
		return ErrSessionClosed
	}
	for _, ev := range events {
		w.state.events = append(w.state.events, model.CloneEvent(ev))
	}
	return nil
}

func (w *writeTx) InsertSmartContracts(ctx context.Context, contracts []model.SmartContract) error {
	if w.done {
		return ErrSessionClosed
	}
	w.state.contracts = append(w.state.contracts, contracts...)
	return nil
}

func (w *writeTx) InvalidateBurnchainRewards(ctx context.Context, burnBlockHash string, burnBlockHeight uint64) (int, error) {
	if w.done {
		return 0, ErrSessionClosed
	}
	n := 0
	for i := range w.state.burnRewards {
		r := &w.state.burnRewards[i]
		if !r.Canonical {
			continue
		}
		if r.BurnBlockHash != burnBlockHash && r.BurnBlockHeight < burnBlockHeight {
			continue
		}
		r.Canonical = false
		n++
	}
	return n, nil
}

func (w *writeTx) InsertBurnchainRewards(ctx context.Context, rewards []model.BurnchainReward) error {
	if w.done {
		return ErrSessionClosed
	}
	w.state.burnRewards = append(w.state.burnRewards, rewards...)
	return nil
}

func (w *writeTx) InsertMempoolTxs(ctx context.Context, txs []model.MempoolTx) ([]string, error) {
	if w.done {
		return nil, ErrSessionClosed
	}
	var inserted []string
	for _, tx := range txs {
		if _, ok := w.state.mempool[tx.TxID]; ok {
			continue
		}
		w.state.mempool[tx.TxID] = tx
		inserted = append(inserted, tx.TxID)
	}
	return inserted, nil
}

func (w *writeTx) UpsertName(ctx context.Context, name model.BNSName) error {
	if w.done {
		return ErrSessionClosed
	}
	for i := range w.state.names {
		if w.state.names[i].Name == name.Name {
			w.state.names[i].Latest = false
		}
	}
	name.Latest = true
	w.state.names = append(w.state.names, name)
	return nil
}

func (w *writeTx) UpsertNamespace(ctx context.Context, namespace model.BNSNamespace) error {
	if w.done {
		return ErrSessionClosed
	}
	for i := range w.state.namespaces {
		if w.state.namespaces[i].NamespaceID == namespace.NamespaceID {
			w.state.namespaces[i].Latest = false
		}
	}
	namespace.Latest = true
	w.state.namespaces = append(w.state.namespaces, namespace)
	return nil
}

func (w *writeTx) UpsertSubdomains(ctx context.Context, subdomains []model.BNSSubdomain) error {
	if w.done {
		return ErrSessionClosed
	}
	for _, sub := range subdomains {
		for i := range w.state.subdomains {
			if w.state.subdomains[i].FullyQualifiedName == sub.FullyQualifiedName {
				w.state.subdomains[i].Latest = false
			}
		}
		sub.Latest = true
		w.state.subdomains = append(w.state.subdomains, sub)
	}
	return nil
}
