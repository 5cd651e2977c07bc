package model

// EntityCounts tallies rows touched by a canonical flag flip.
type EntityCounts struct {
	Blocks         int
	Txs            int
	MinerRewards   int
	StxLockEvents  int
	StxEvents      int
	FtEvents       int
	NftEvents      int
	ContractLogs   int
	SmartContracts int
}

// Add accumulates other into c.
func (c *EntityCounts) Add(other EntityCounts) {
	c.Blocks += other.Blocks
	c.Txs += other.Txs
	c.MinerRewards += other.MinerRewards
	c.StxLockEvents += other.StxLockEvents
	c.StxEvents += other.StxEvents
	c.FtEvents += other.FtEvents
	c.NftEvents += other.NftEvents
	c.ContractLogs += other.ContractLogs
	c.SmartContracts += other.SmartContracts
}

// Total returns the number of rows counted.
func (c EntityCounts) Total() int {
	return c.Blocks + c.Txs + c.MinerRewards + c.StxLockEvents + c.StxEvents +
		c.FtEvents + c.NftEvents + c.ContractLogs + c.SmartContracts
}

// MarkedEntities is the outcome of flipping the canonical flag of every row
// owned by one block. TxIDs excludes coinbase transactions.
type MarkedEntities struct {
	Counts EntityCounts
	TxIDs  []string
}

// UpdatedEntities tallies a reorg in both directions.
type UpdatedEntities struct {
	MarkedCanonical    EntityCounts
	MarkedNonCanonical EntityCounts
}

// ActiveLock is a lock event still in force together with the burn height
// of the block that recorded it.
type ActiveLock struct {
	Event           StxLockEvent
	BurnBlockHeight uint64
}
