package model

import "sort"

// BlockUpdate is everything derived from one incoming block.
type BlockUpdate struct {
	Block        Block
	MinerRewards []MinerReward
	Txs          []TxUpdate
}

// TxUpdate is a transaction with its events and deployed contracts.
type TxUpdate struct {
	Tx             Tx
	Events         []Event
	SmartContracts []SmartContract
}

// SetCanonical sets the canonical flag on the block and every dependent row.
func (u *BlockUpdate) SetCanonical(canonical bool) {
	u.Block.Canonical = canonical
	for i := range u.MinerRewards {
		u.MinerRewards[i].Canonical = canonical
	}
	for i := range u.Txs {
		u.Txs[i].Tx.Canonical = canonical
		for _, ev := range u.Txs[i].Events {
			ev.Base().Canonical = canonical
		}
		for j := range u.Txs[i].SmartContracts {
			u.Txs[i].SmartContracts[j].Canonical = canonical
		}
	}
}

// MempoolCandidates returns the ids of transactions that may also be in the
// mempool. Coinbase transactions never are.
func (u BlockUpdate) MempoolCandidates() []string {
	ids := make([]string, 0, len(u.Txs))
	for _, tx := range u.Txs {
		if tx.Tx.Type == TxTypeCoinbase {
			continue
		}
		ids = append(ids, tx.Tx.TxID)
	}
	return ids
}

// EventCount returns the number of events across all transactions.
func (u BlockUpdate) EventCount() int {
	n := 0
	for _, tx := range u.Txs {
		n += len(tx.Events)
	}
	return n
}

// AffectedAddresses maps every principal touched by the block to the ids of
// the transactions touching it. Tx ids keep block order.
func (u BlockUpdate) AffectedAddresses() map[string][]string {
	out := make(map[string][]string)
	add := func(addr, txID string) {
		if addr == "" {
			return
		}
		ids := out[addr]
		if len(ids) > 0 && ids[len(ids)-1] == txID {
			return
		}
		out[addr] = append(ids, txID)
	}

	for _, tu := range u.Txs {
		tx := tu.Tx
		add(tx.SenderAddress, tx.TxID)
		add(tx.SponsorAddress, tx.TxID)
		if tx.TokenTransfer != nil {
			add(tx.TokenTransfer.Recipient, tx.TxID)
		}
		add(tx.ContractID(), tx.TxID)
		for _, ev := range tu.Events {
			switch e := ev.(type) {
			case *StxEvent:
				add(e.Sender, tx.TxID)
				add(e.Recipient, tx.TxID)
			case *StxLockEvent:
				add(e.LockedAddress, tx.TxID)
			case *FtEvent:
				add(e.Sender, tx.TxID)
				add(e.Recipient, tx.TxID)
			case *NftEvent:
				add(e.Sender, tx.TxID)
				add(e.Recipient, tx.TxID)
			case *ContractLogEvent:
				add(e.ContractIdentifier, tx.TxID)
			}
		}
	}
	return out
}

// SortedAddresses returns the keys of AffectedAddresses in lexical order.
func SortedAddresses(affected map[string][]string) []string {
	addrs := make([]string, 0, len(affected))
	for addr := range affected {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}
