// Package model defines the entities persisted by the Stacks indexer.
package model

// Block is a Stacks block version identified by its index block hash.
type Block struct {
	BlockHash            string
	IndexBlockHash       string
	ParentIndexBlockHash string
	ParentBlockHash      string
	ParentMicroblock     string
	BlockHeight          uint64
	BurnBlockTime        int64
	BurnBlockHash        string
	BurnBlockHeight      uint64
	MinerTxID            string
	Canonical            bool
}

// Ref returns the identity fields of the block.
func (b Block) Ref() BlockRef {
	return BlockRef{
		IndexBlockHash:       b.IndexBlockHash,
		ParentIndexBlockHash: b.ParentIndexBlockHash,
		BlockHeight:          b.BlockHeight,
		Canonical:            b.Canonical,
	}
}

// BlockRef is the subset of a block row needed to walk the chain.
type BlockRef struct {
	IndexBlockHash       string
	ParentIndexBlockHash string
	BlockHeight          uint64
	Canonical            bool
}
