package model

// SearchEntity names the kind of entity a search matched.
type SearchEntity string

var (
	SearchBlock           SearchEntity = "block_hash"
	SearchTx              SearchEntity = "tx_id"
	SearchMempoolTx       SearchEntity = "mempool_tx_id"
	SearchContractAddress SearchEntity = "contract_address"
	SearchStandardAddress SearchEntity = "standard_address"
)

// SearchResult is a matched entity. Exactly one of the pointers is set,
// except for a standard address which carries only the principal.
type SearchResult struct {
	Entity    SearchEntity
	ID        string
	Block     *Block
	Tx        *Tx
	MempoolTx *MempoolTx
}

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

// TxFilter restricts a transaction listing.
type TxFilter struct {
	Types []TxType
}
