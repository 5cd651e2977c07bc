// Package memory is an in-process storage backend. Write sessions work on
// a private copy of the state that replaces the shared state on commit, so
// readers always see a committed snapshot.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/repository"
)

// ErrSessionClosed is returned when a finished session is used again.
var ErrSessionClosed = errors.New("session closed")

type state struct {
	blocks       map[string]model.Block
	txs          []model.Tx
	events       []model.Event
	minerRewards []model.MinerReward
	contracts    []model.SmartContract
	mempool      map[string]model.MempoolTx
	burnRewards  []model.BurnchainReward
	names        []model.BNSName
	namespaces   []model.BNSNamespace
	subdomains   []model.BNSSubdomain
}

func newState() *state {
	return &state{
		blocks:  make(map[string]model.Block),
		mempool: make(map[string]model.MempoolTx),
	}
}

func (s *state) clone() *state {
	c := &state{
		blocks:       make(map[string]model.Block, len(s.blocks)),
		txs:          append([]model.Tx(nil), s.txs...),
		events:       make([]model.Event, 0, len(s.events)),
		minerRewards: append([]model.MinerReward(nil), s.minerRewards...),
		contracts:    append([]model.SmartContract(nil), s.contracts...),
		mempool:      make(map[string]model.MempoolTx, len(s.mempool)),
		burnRewards:  append([]model.BurnchainReward(nil), s.burnRewards...),
		names:        append([]model.BNSName(nil), s.names...),
		namespaces:   append([]model.BNSNamespace(nil), s.namespaces...),
		subdomains:   append([]model.BNSSubdomain(nil), s.subdomains...),
	}
	for k, v := range s.blocks {
		c.blocks[k] = v
	}
	for k, v := range s.mempool {
		c.mempool[k] = v
	}
	for _, ev := range s.events {
		c.events = append(c.events, model.CloneEvent(ev))
	}
	return c
}

// Store is the in-memory backend.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   *state
}

// New creates an empty Store.
func New() *Store {
	return &Store{state: newState()}
}

// BeginWrite opens a write session. It blocks while another write session
// is open.
func (s *Store) BeginWrite(ctx context.Context) (repository.WriteSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()
	s.mu.RLock()
	st := s.state.clone()
	s.mu.RUnlock()
	return &writeTx{readTx: readTx{state: st}, store: s}, nil
}

// BeginRead opens a read session over the last committed state.
func (s *Store) BeginRead(ctx context.Context) (repository.ReadSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	st := s.state
	s.mu.RUnlock()
	return &readTx{state: st}, nil
}

// Close implements repository.Backend.
func (s *Store) Close() error {
	return nil
}

type readTx struct {
	state *state
}

// Rollback releases the snapshot.
func (r *readTx) Rollback() error {
	return nil
}

type writeTx struct {
	readTx
	store *Store
	done  bool
}

// Commit publishes the session state.
func (w *writeTx) Commit() error {
	if w.done {
		return ErrSessionClosed
	}
	w.done = true
	w.store.mu.Lock()
	w.store.state = w.state
	w.store.mu.Unlock()
	w.store.writeMu.Unlock()
	return nil
}

// Rollback discards the session state. It is a no-op after Commit.
func (w *writeTx) Rollback() error {
	if w.done {
		return nil
	}
	w.done = true
	w.store.writeMu.Unlock()
	return nil
}
