// Package notify fans out store notifications to in-process subscribers.
package notify

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"go.uber.org/zap"
)

// Kind is the type of a notification.
type Kind uint8

const (
	BlockApplied Kind = iota + 1
	TxApplied
	AddressAffected
)

func (k Kind) String() string {
	switch k {
	case BlockApplied:
		return "block_applied"
	case TxApplied:
		return "tx_applied"
	case AddressAffected:
		return "address_affected"
	default:
		return "unknown"
	}
}

// Notification describes one change committed to the store.
type Notification struct {
	Kind Kind

	// Block is set for BlockApplied. Restored and Orphaned list the blocks
	// whose canonical flag flipped while applying it.
	Block      model.Block
	ReorgDepth int
	Restored   []model.BlockRef
	Orphaned   []model.BlockRef

	// TxID is set for TxApplied. Mempool reports a pending transaction.
	TxID      string
	Mempool   bool
	Canonical bool

	// Address and TxIDs are set for AddressAffected.
	Address string
	TxIDs   []string
}

// Filter selects the notifications a subscription receives.
type Filter func(Notification) bool

// ForKinds accepts notifications of the given kinds.
func ForKinds(kinds ...Kind) Filter {
	return func(n Notification) bool {
		for _, k := range kinds {
			if n.Kind == k {
				return true
			}
		}
		return false
	}
}

// ForTx accepts TxApplied notifications of one transaction.
func ForTx(txID string) Filter {
	return func(n Notification) bool {
		return n.Kind == TxApplied && n.TxID == txID
	}
}

// ForAddress accepts AddressAffected notifications of one principal.
func ForAddress(address string) Filter {
	return func(n Notification) bool {
		return n.Kind == AddressAffected && n.Address == address
	}
}

// Subscription is a buffered stream of notifications.
type Subscription struct {
	id     uint64
	filter Filter
	ch     chan Notification
}

// C returns the notification stream. It is closed on Unsubscribe.
func (s *Subscription) C() <-chan Notification {
	return s.ch
}

// Bus delivers notifications without blocking the publisher. A subscriber
// whose buffer is full misses the notification.
type Bus struct {
	logger *zap.Logger

	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]*Subscription
}

// NewBus creates an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		logger: logger.Named("notify"),
		subs:   make(map[uint64]*Subscription),
	}
}

// Subscribe registers a subscriber. A nil filter accepts everything.
func (b *Bus) Subscribe(buffer int, filter Filter) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:     b.nextID,
		filter: filter,
		ch:     make(chan Notification, buffer),
	}
	b.subs[sub.id] = sub
	return sub
}

// Unsubscribe removes the subscriber and closes its stream.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub.id]; !ok {
		return
	}
	delete(b.subs, sub.id)
	close(sub.ch)
}

// Subscribers returns the number of active subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Publish delivers n to every matching subscriber.
func (b *Bus) Publish(n Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.filter != nil && !sub.filter(n) {
			continue
		}
		select {
		case sub.ch <- n:
		default:
			b.logger.Warn("subscriber buffer full, notification dropped",
				zap.Uint64("subscription", sub.id),
				zap.Stringer("kind", n.Kind),
			)
		}
	}
}

// Wait returns the next notification of the subscription.
func (s *Subscription) Wait(ctx context.Context) (Notification, error) {
	select {
	case <-ctx.Done():
		return Notification{}, ctx.Err()
	case n, ok := <-s.ch:
		if !ok {
			return Notification{}, context.Canceled
		}
		return n, nil
	}
}

// WaitForTx blocks until the transaction is applied. Subscribe with ForTx
// before triggering the write to avoid missing it.
func (b *Bus) WaitForTx(ctx context.Context, txID string) (Notification, error) {
	sub := b.Subscribe(1, ForTx(txID))
	defer b.Unsubscribe(sub)
	return sub.Wait(ctx)
}
