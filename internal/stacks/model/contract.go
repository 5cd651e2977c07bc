package model

// SmartContract is a deployed contract.
type SmartContract struct {
	TxID           string
	ContractID     string
	BlockHeight    uint64
	IndexBlockHash string
	SourceCode     string
	ABI            string
	Canonical      bool
}
