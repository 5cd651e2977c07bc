package model

// Network identifies the Stacks network the indexer follows.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Valid reports whether n is a known network.
func (n Network) Valid() bool {
	return n == Mainnet || n == Testnet
}

// BNSContractID returns the boot contract that emits BNS events.
func (n Network) BNSContractID() string {
	if n == Mainnet {
		return "SP000000000000000000002Q6VF78.bns"
	}
	return "ST000000000000000000002AMW42H.bns"
}

// Burnchain returns the bitcoin network anchoring n.
func (n Network) Burnchain() string {
	if n == Mainnet {
		return "mainnet"
	}
	return "testnet"
}
