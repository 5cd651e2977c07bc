package model

import "github.com/shopspring/decimal"

// BNSName is a registered name. A newer row for the same name supersedes it.
type BNSName struct {
	Name           string
	Address        string
	Namespace      string
	RegisteredAt   uint64
	ExpireBlock    uint64
	ZonefileHash   string
	Zonefile       string
	TxID           string
	IndexBlockHash string
	Status         string
	Latest         bool
	Canonical      bool
}

// BNSNamespace is a launched namespace with its price function.
type BNSNamespace struct {
	NamespaceID      string
	Address          string
	LaunchedAt       uint64
	RevealedAt       uint64
	Lifetime         uint64
	Base             decimal.Decimal
	Coeff            decimal.Decimal
	NoVowelDiscount  decimal.Decimal
	NonAlphaDiscount decimal.Decimal
	Buckets          string
	Status           string
	Ready            bool
	TxID             string
	IndexBlockHash   string
	Latest           bool
	Canonical        bool
}

// BNSSubdomain is a subdomain published in a name's zonefile.
type BNSSubdomain struct {
	Name                string
	NamespaceID         string
	FullyQualifiedName  string
	Owner               string
	ZonefileHash        string
	Zonefile            string
	ParentZonefileHash  string
	ParentZonefileIndex uint32
	SequenceNumber      uint64
	BlockHeight         uint64
	TxID                string
	IndexBlockHash      string
	Latest              bool
	Canonical           bool
}
