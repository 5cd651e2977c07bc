package model

import "github.com/shopspring/decimal"

// EventKind discriminates the event variants.
type EventKind uint8

const (
	EventKindStxAsset EventKind = iota + 1
	EventKindStxLock
	EventKindFtAsset
	EventKindNftAsset
	EventKindContractLog
)

func (k EventKind) String() string {
	switch k {
	case EventKindStxAsset:
		return "stx_asset"
	case EventKindStxLock:
		return "stx_lock"
	case EventKindFtAsset:
		return "fungible_token_asset"
	case EventKindNftAsset:
		return "non_fungible_token_asset"
	case EventKindContractLog:
		return "smart_contract_log"
	default:
		return "unknown"
	}
}

// AssetEventType distinguishes transfers from mints and burns.
type AssetEventType uint8

const (
	AssetEventTransfer AssetEventType = 1
	AssetEventMint     AssetEventType = 2
	AssetEventBurn     AssetEventType = 3
)

func (t AssetEventType) String() string {
	switch t {
	case AssetEventTransfer:
		return "transfer"
	case AssetEventMint:
		return "mint"
	case AssetEventBurn:
		return "burn"
	default:
		return "unknown"
	}
}

// EventBase is shared by every event variant.
type EventBase struct {
	EventIndex     uint32
	TxID           string
	TxIndex        uint32
	BlockHeight    uint64
	IndexBlockHash string
	Canonical      bool
}

// Event is one of StxEvent, StxLockEvent, FtEvent, NftEvent or ContractLogEvent.
type Event interface {
	Kind() EventKind
	Base() *EventBase
}

// StxEvent is an STX transfer, mint or burn.
type StxEvent struct {
	EventBase
	AssetEventType AssetEventType
	Sender         string
	Recipient      string
	Amount         decimal.Decimal
}

// StxLockEvent locks STX of an address until a burn block height.
type StxLockEvent struct {
	EventBase
	LockedAmount  decimal.Decimal
	UnlockHeight  uint64
	LockedAddress string
}

// FtEvent is a fungible token transfer, mint or burn.
type FtEvent struct {
	EventBase
	AssetEventType  AssetEventType
	AssetIdentifier string
	Sender          string
	Recipient       string
	Amount          decimal.Decimal
}

// NftEvent is a non-fungible token transfer, mint or burn.
type NftEvent struct {
	EventBase
	AssetEventType  AssetEventType
	AssetIdentifier string
	Sender          string
	Recipient       string
	Value           []byte
}

// ContractLogEvent is a print emitted by a contract.
type ContractLogEvent struct {
	EventBase
	ContractIdentifier string
	Topic              string
	Value              []byte
}

// Kind implements Event.
func (e *StxEvent) Kind() EventKind {
	return EventKindStxAsset
}

// Base implements Event.
func (e *StxEvent) Base() *EventBase {
	return &e.EventBase
}

// Kind implements Event.
func (e *StxLockEvent) Kind() EventKind {
	return EventKindStxLock
}

// Base implements Event.
func (e *StxLockEvent) Base() *EventBase {
	return &e.EventBase
}

// Kind implements Event.
func (e *FtEvent) Kind() EventKind {
	return EventKindFtAsset
}

// Base implements Event.
func (e *FtEvent) Base() *EventBase {
	return &e.EventBase
}

// Kind implements Event.
func (e *NftEvent) Kind() EventKind {
	return EventKindNftAsset
}

// Base implements Event.
func (e *NftEvent) Base() *EventBase {
	return &e.EventBase
}

// Kind implements Event.
func (e *ContractLogEvent) Kind() EventKind {
	return EventKindContractLog
}

// Base implements Event.
func (e *ContractLogEvent) Base() *EventBase {
	return &e.EventBase
}

// EventBuckets groups a transaction's events by kind, preserving order.
type EventBuckets struct {
	Stx          []*StxEvent
	StxLocks     []*StxLockEvent
	Ft           []*FtEvent
	Nft          []*NftEvent
	ContractLogs []*ContractLogEvent
}

// BucketEvents splits events into per-kind lists.
func BucketEvents(events []Event) EventBuckets {
	var b EventBuckets
	for _, ev := range events {
		switch e := ev.(type) {
		case *StxEvent:
			b.Stx = append(b.Stx, e)
		case *StxLockEvent:
			b.StxLocks = append(b.StxLocks, e)
		case *FtEvent:
			b.Ft = append(b.Ft, e)
		case *NftEvent:
			b.Nft = append(b.Nft, e)
		case *ContractLogEvent:
			b.ContractLogs = append(b.ContractLogs, e)
		}
	}
	return b
}

// CloneEvent returns a copy of ev that shares no mutable state with it.
func CloneEvent(ev Event) Event {
	switch e := ev.(type) {
	case *StxEvent:
		c := *e
		return &c
	case *StxLockEvent:
		c := *e
		return &c
	case *FtEvent:
		c := *e
		return &c
	case *NftEvent:
		c := *e
		c.Value = append([]byte(nil), e.Value...)
		return &c
	case *ContractLogEvent:
		c := *e
		c.Value = append([]byte(nil), e.Value...)
		return &c
	default:
		return ev
	}
}
