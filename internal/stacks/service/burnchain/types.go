package burnchain

import "github.com/btcsuite/btcd/chaincfg/chainhash"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockHasher interface {
		GetBlockCount() (int64, error)
		GetBlockHash(height int64) (*chainhash.Hash, error)
	}
)
