package memory

import (
	"context"
	"math/big"
	"sort"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/shopspring/decimal"
)

const namesPageSize = 100

func (s *state) tip() (model.Block, bool) {
	var (
		tip   model.Block
		found bool
	)
	for _, block := range s.blocks {
		if !block.Canonical {
			continue
		}
		if !found || block.BlockHeight > tip.BlockHeight {
			tip, found = block, true
		}
	}
	return tip, found
}

func (s *state) hasTx(txID, indexBlockHash string) bool {
	for _, tx := range s.txs {
		if tx.TxID == txID && tx.IndexBlockHash == indexBlockHash {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, page model.Page) []T {
	if page.Offset >= len(items) {
		return nil
	}
	items = items[page.Offset:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}

// preferCanonical orders canonical rows first, then by descending height.
func preferCanonical(ci, cj bool, hi, hj uint64) bool {
	if ci != cj {
		return ci
	}
	return hi > hj
}

func (r *readTx) CurrentBlock(ctx context.Context) (model.Block, bool, error) {
	block, found := r.state.tip()
	return block, found, nil
}

func (r *readTx) BlockByHeight(ctx context.Context, height uint64) (model.Block, bool, error) {
	for _, block := range r.state.blocks {
		if block.Canonical && block.BlockHeight == height {
			return block, true, nil
		}
	}
	return model.Block{}, false, nil
}

func (r *readTx) BlockByHash(ctx context.Context, hash string) (model.Block, bool, error) {
	var matches []model.Block
	for _, block := range r.state.blocks {
		if block.BlockHash == hash || block.IndexBlockHash == hash {
			matches = append(matches, block)
		}
	}
	if len(matches) == 0 {
		return model.Block{}, false, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return preferCanonical(matches[i].Canonical, matches[j].Canonical, matches[i].BlockHeight, matches[j].BlockHeight)
	})
	return matches[0], true, nil
}

func (r *readTx) BlockList(ctx context.Context, page model.Page) ([]model.Block, int, error) {
	var blocks []model.Block
	for _, block := range r.state.blocks {
		if block.Canonical {
			blocks = append(blocks, block)
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].BlockHeight > blocks[j].BlockHeight
	})
	return paginate(blocks, page), len(blocks), nil
}

func (r *readTx) BlockTxIDs(ctx context.Context, indexBlockHash string) ([]string, error) {
	var txs []model.Tx
	for _, tx := range r.state.txs {
		if tx.IndexBlockHash == indexBlockHash {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].TxIndex < txs[j].TxIndex
	})
	ids := make([]string, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.TxID)
	}
	return ids, nil
}

func (r *readTx) TxByID(ctx context.Context, txID string) (model.Tx, bool, error) {
	return r.firstTx(func(tx model.Tx) bool {
		return tx.TxID == txID
	})
}

func (r *readTx) TxByContractID(ctx context.Context, contractID string) (model.Tx, bool, error) {
	return r.firstTx(func(tx model.Tx) bool {
		return tx.SmartContract != nil && tx.SmartContract.ContractID == contractID
	})
}

func (r *readTx) firstTx(match func(model.Tx) bool) (model.Tx, bool, error) {
	var matches []model.Tx
	for _, tx := range r.state.txs {
		if match(tx) {
			matches = append(matches, tx)
		}
	}
	if len(matches) == 0 {
		return model.Tx{}, false, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return preferCanonical(matches[i].Canonical, matches[j].Canonical, matches[i].BlockHeight, matches[j].BlockHeight)
	})
	return matches[0], true, nil
}

func (r *readTx) canonicalTxs(match func(model.Tx) bool) []model.Tx {
	var txs []model.Tx
	for _, tx := range r.state.txs {
		if tx.Canonical && match(tx) {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].BlockHeight != txs[j].BlockHeight {
			return txs[i].BlockHeight > txs[j].BlockHeight
		}
		return txs[i].TxIndex > txs[j].TxIndex
	})
	return txs
}

func (r *readTx) TxList(ctx context.Context, filter model.TxFilter, page model.Page) ([]model.Tx, int, error) {
	types := make(map[model.TxType]struct{}, len(filter.Types))
	for _, t := range filter.Types {
		types[t] = struct{}{}
	}
	txs := r.canonicalTxs(func(tx model.Tx) bool {
		if len(types) == 0 {
			return true
		}
		_, ok := types[tx.Type]
		return ok
	})
	return paginate(txs, page), len(txs), nil
}

func (r *readTx) AddressTxs(ctx context.Context, address string, page model.Page) ([]model.Tx, int, error) {
	txs := r.canonicalTxs(func(tx model.Tx) bool {
		if tx.SenderAddress == address || tx.SponsorAddress == address || tx.ContractID() == address {
			return true
		}
		return tx.TokenTransfer != nil && tx.TokenTransfer.Recipient == address
	})
	return paginate(txs, page), len(txs), nil
}

func (r *readTx) TxEvents(ctx context.Context, txID string, indexBlockHash string) ([]model.Event, error) {
	var events []model.Event
	for _, ev := range r.state.events {
		base := ev.Base()
		if base.TxID == txID && base.IndexBlockHash == indexBlockHash {
			events = append(events, model.CloneEvent(ev))
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Base().EventIndex < events[j].Base().EventIndex
	})
	return events, nil
}

func (r *readTx) AddressAssetEvents(ctx context.Context, address string, page model.Page) ([]model.Event, error) {
	var events []model.Event
	for _, ev := range r.state.events {
		if !ev.Base().Canonical {
			continue
		}
		var hit bool
		switch e := ev.(type) {
		case *model.StxEvent:
			hit = e.Sender == address || e.Recipient == address
		case *model.StxLockEvent:
			hit = e.LockedAddress == address
		case *model.FtEvent:
			hit = e.Sender == address || e.Recipient == address
		case *model.NftEvent:
			hit = e.Sender == address || e.Recipient == address
		}
		if hit {
			events = append(events, model.CloneEvent(ev))
		}
	}
	sortEventsDesc(events)
	return paginate(events, page), nil
}

func sortEventsDesc(events []model.Event) {
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i].Base(), events[j].Base()
		if a.BlockHeight != b.BlockHeight {
			return a.BlockHeight > b.BlockHeight
		}
		if a.TxIndex != b.TxIndex {
			return a.TxIndex > b.TxIndex
		}
		return a.EventIndex > b.EventIndex
	})
}

func (r *readTx) MempoolTx(ctx context.Context, txID string) (model.MempoolTx, bool, error) {
	tx, ok := r.state.mempool[txID]
	if !ok || tx.Pruned {
		return model.MempoolTx{}, false, nil
	}
	return tx, true, nil
}

func (r *readTx) MempoolTxByContractID(ctx context.Context, contractID string) (model.MempoolTx, bool, error) {
	for _, tx := range r.pendingMempool() {
		if tx.SmartContract != nil && tx.SmartContract.ContractID == contractID {
			return tx, true, nil
		}
	}
	return model.MempoolTx{}, false, nil
}

func (r *readTx) MempoolTxList(ctx context.Context, page model.Page) ([]model.MempoolTx, int, error) {
	txs := r.pendingMempool()
	return paginate(txs, page), len(txs), nil
}

func (r *readTx) pendingMempool() []model.MempoolTx {
	var txs []model.MempoolTx
	for _, tx := range r.state.mempool {
		if !tx.Pruned {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].ReceiptTime != txs[j].ReceiptTime {
			return txs[i].ReceiptTime > txs[j].ReceiptTime
		}
		return txs[i].TxID < txs[j].TxID
	})
	return txs
}

func (r *readTx) StxTotals(ctx context.Context, address string, height uint64) (model.AssetTotals, error) {
	totals := model.AssetTotals{AssetIdentifier: "stx"}
	for _, ev := range r.state.events {
		e, ok := ev.(*model.StxEvent)
		if !ok || !e.Canonical || e.BlockHeight > height {
			continue
		}
		if e.Recipient == address {
			totals.Credit = totals.Credit.Add(e.Amount)
		}
		if e.Sender == address {
			totals.Debit = totals.Debit.Add(e.Amount)
		}
	}
	return totals, nil
}

func (r *readTx) FeesPaid(ctx context.Context, address string, height uint64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, tx := range r.state.txs {
		if !tx.Canonical || tx.BlockHeight > height {
			continue
		}
		if tx.SenderAddress == address {
			total = total.Add(decimal.NewFromBigInt(new(big.Int).SetUint64(tx.FeeRate), 0))
		}
	}
	return total, nil
}

func (r *readTx) MinerRewardsMatured(ctx context.Context, address string, height uint64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, reward := range r.state.minerRewards {
		if reward.Canonical && reward.Recipient == address && reward.MatureBlockHeight <= height {
			total = total.Add(reward.Total())
		}
	}
	return total, nil
}

func (r *readTx) ActiveStxLocks(ctx context.Context, address string, height uint64, burnBlockHeight uint64) ([]model.ActiveLock, error) {
	var locks []model.ActiveLock
	for _, ev := range r.state.events {
		e, ok := ev.(*model.StxLockEvent)
		if !ok || !e.Canonical || e.LockedAddress != address {
			continue
		}
		if e.BlockHeight > height || e.UnlockHeight <= burnBlockHeight {
			continue
		}
		locks = append(locks, model.ActiveLock{
			Event:           *e,
			BurnBlockHeight: r.state.blocks[e.IndexBlockHash].BurnBlockHeight,
		})
	}
	return locks, nil
}

func (r *readTx) FtTotals(ctx context.Context, address string) ([]model.AssetTotals, error) {
	byAsset := make(map[string]*model.AssetTotals)
	for _, ev := range r.state.events {
		e, ok := ev.(*model.FtEvent)
		if !ok || !e.Canonical {
			continue
		}
		addTotals(byAsset, e.AssetIdentifier, address, e.Sender, e.Recipient, e.Amount)
	}
	return collectTotals(byAsset), nil
}

func (r *readTx) NftTotals(ctx context.Context, address string) ([]model.AssetTotals, error) {
	byAsset := make(map[string]*model.AssetTotals)
	for _, ev := range r.state.events {
		e, ok := ev.(*model.NftEvent)
		if !ok || !e.Canonical {
			continue
		}
		addTotals(byAsset, e.AssetIdentifier, address, e.Sender, e.Recipient, decimal.NewFromInt(1))
	}
	return collectTotals(byAsset), nil
}

func addTotals(byAsset map[string]*model.AssetTotals, asset, address, sender, recipient string, amount decimal.Decimal) {
	if sender != address && recipient != address {
		return
	}
	t, ok := byAsset[asset]
	if !ok {
		t = &model.AssetTotals{AssetIdentifier: asset}
		byAsset[asset] = t
	}
	if recipient == address {
		t.Credit = t.Credit.Add(amount)
	}
	if sender == address {
		t.Debit = t.Debit.Add(amount)
	}
}

func collectTotals(byAsset map[string]*model.AssetTotals) []model.AssetTotals {
	out := make([]model.AssetTotals, 0, len(byAsset))
	for _, t := range byAsset {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AssetIdentifier < out[j].AssetIdentifier
	})
	return out
}

func (r *readTx) SmartContract(ctx context.Context, contractID string) (model.SmartContract, bool, error) {
	var matches []model.SmartContract
	for _, c := range r.state.contracts {
		if c.ContractID == contractID {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return model.SmartContract{}, false, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		return preferCanonical(matches[i].Canonical, matches[j].Canonical, matches[i].BlockHeight, matches[j].BlockHeight)
	})
	return matches[0], true, nil
}

func (r *readTx) ContractLogs(ctx context.Context, contractID string, page model.Page) ([]model.ContractLogEvent, error) {
	var events []model.Event
	for _, ev := range r.state.events {
		e, ok := ev.(*model.ContractLogEvent)
		if ok && e.Canonical && e.ContractIdentifier == contractID {
			events = append(events, model.CloneEvent(e))
		}
	}
	sortEventsDesc(events)
	events = paginate(events, page)
	out := make([]model.ContractLogEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, *ev.(*model.ContractLogEvent))
	}
	return out, nil
}

func (r *readTx) BurnchainRewards(ctx context.Context, recipient string, page model.Page) ([]model.BurnchainReward, error) {
	var rewards []model.BurnchainReward
	for _, reward := range r.state.burnRewards {
		if !reward.Canonical || (recipient != "" && reward.RewardRecipient != recipient) {
			continue
		}
		rewards = append(rewards, reward)
	}
	sort.Slice(rewards, func(i, j int) bool {
		if rewards[i].BurnBlockHeight != rewards[j].BurnBlockHeight {
			return rewards[i].BurnBlockHeight > rewards[j].BurnBlockHeight
		}
		return rewards[i].RewardIndex > rewards[j].RewardIndex
	})
	return paginate(rewards, page), nil
}

func (r *readTx) BurnchainRewardTotal(ctx context.Context, recipient string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, reward := range r.state.burnRewards {
		if reward.Canonical && reward.RewardRecipient == recipient {
			total = total.Add(reward.RewardAmount)
		}
	}
	return total, nil
}

func (r *readTx) PrincipalSeen(ctx context.Context, principal string) (bool, error) {
	for _, tx := range r.state.txs {
		if tx.SenderAddress == principal {
			return true, nil
		}
		if tx.TokenTransfer != nil && tx.TokenTransfer.Recipient == principal {
			return true, nil
		}
	}
	for _, ev := range r.state.events {
		switch e := ev.(type) {
		case *model.StxEvent:
			if e.Sender == principal || e.Recipient == principal {
				return true, nil
			}
		case *model.FtEvent:
			if e.Sender == principal || e.Recipient == principal {
				return true, nil
			}
		case *model.NftEvent:
			if e.Sender == principal || e.Recipient == principal {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *readTx) Namespaces(ctx context.Context) ([]string, error) {
	var ids []string
	for _, ns := range r.state.namespaces {
		if ns.Latest && ns.Canonical {
			ids = append(ids, ns.NamespaceID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *readTx) NamespaceNames(ctx context.Context, namespaceID string, page int) ([]string, error) {
	var names []string
	for _, name := range r.state.names {
		if name.Latest && name.Canonical && name.Namespace == namespaceID {
			names = append(names, name.Name)
		}
	}
	sort.Strings(names)
	return paginate(names, model.Page{Limit: namesPageSize, Offset: page * namesPageSize}), nil
}

func (r *readTx) Namespace(ctx context.Context, namespaceID string) (model.BNSNamespace, bool, error) {
	for _, ns := range r.state.namespaces {
		if ns.Latest && ns.Canonical && ns.NamespaceID == namespaceID {
			return ns, true, nil
		}
	}
	return model.BNSNamespace{}, false, nil
}

func (r *readTx) Name(ctx context.Context, name string) (model.BNSName, bool, error) {
	for _, n := range r.state.names {
		if n.Latest && n.Canonical && n.Name == name {
			return n, true, nil
		}
	}
	return model.BNSName{}, false, nil
}

func (r *readTx) Subdomain(ctx context.Context, fullyQualifiedName string) (model.BNSSubdomain, bool, error) {
	for _, sub := range r.state.subdomains {
		if sub.Latest && sub.Canonical && sub.FullyQualifiedName == fullyQualifiedName {
			return sub, true, nil
		}
	}
	return model.BNSSubdomain{}, false, nil
}
