// Package ingester serializes node messages into the store. At most one
// message is handled at a time, in submission order.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"go.uber.org/zap"
)

const (
	kindBlock     = "block"
	kindBurnBlock = "burn_block"
	kindMempool   = "mempool"

	defaultCapacity = 64
)

// ErrStopped is returned for messages submitted after the queue stopped.
var ErrStopped = errors.New("ingestion queue stopped")

type job struct {
	kind   string
	handle func(ctx context.Context) error
	done   chan struct{}
}

// Queue is a single-consumer task runner for node messages.
type Queue struct {
	decoder    Decoder
	normalizer Normalizer
	store      Store
	verifier   BurnBlockVerifier
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time

	jobs    chan *job
	stopped chan struct{}
	depth   atomic.Int64
}

// New builds a Queue. verifier may be nil. capacity bounds how many
// submitted messages may wait for the runner.
func New(
	decoder Decoder,
	normalizer Normalizer,
	store Store,
	verifier BurnBlockVerifier,
	metrics Metrics,
	logger *zap.Logger,
	capacity int,
) *Queue {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Queue{
		decoder:    decoder,
		normalizer: normalizer,
		store:      store,
		verifier:   verifier,
		metrics:    metrics,
		logger:     logger.Named("ingester"),
		now:        time.Now,
		jobs:       make(chan *job, capacity),
		stopped:    make(chan struct{}),
	}
}

// Run handles submitted messages until ctx is canceled. A message being
// handled when ctx is canceled runs to completion. Run must be called once.
func (q *Queue) Run(ctx context.Context) error {
	defer close(q.stopped)

	q.logger.Info("ingestion queue started")
	for {
		select {
		case <-ctx.Done():
			q.logger.Info("ingestion queue stopped", zap.Int64("pending", q.depth.Load()))
			return nil
		case j := <-q.jobs:
			q.execute(ctx, j)
		}
	}
}

// submit enqueues a job and waits until it has been handled. Handler
// failures are logged by the runner and not returned.
func (q *Queue) submit(ctx context.Context, kind string, handle func(ctx context.Context) error) error {
	j := &job{kind: kind, handle: handle, done: make(chan struct{})}

	q.metrics.SetQueueDepth(int(q.depth.Add(1)))
	select {
	case q.jobs <- j:
	case <-q.stopped:
		q.metrics.SetQueueDepth(int(q.depth.Add(-1)))
		return ErrStopped
	case <-ctx.Done():
		q.metrics.SetQueueDepth(int(q.depth.Add(-1)))
		return ctx.Err()
	}

	select {
	case <-j.done:
		return nil
	case <-q.stopped:
		select {
		case <-j.done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) execute(ctx context.Context, j *job) {
	defer close(j.done)
	q.metrics.SetQueueDepth(int(q.depth.Add(-1)))

	started := time.Now()
	err := q.safeHandle(context.WithoutCancel(ctx), j)
	q.metrics.ObserveMessage(j.kind, err, started)
	if err == nil {
		return
	}

	fields := []zap.Field{
		zap.String("kind", j.kind),
		zap.Duration("elapsed", time.Since(started)),
		zap.Error(err),
	}
	switch {
	case model.IsDecodeError(err):
		q.logger.Warn("dropping malformed message", fields...)
	case model.IsChainConsistencyError(err):
		q.logger.Error("dropping inconsistent block", fields...)
	default:
		q.logger.Error("message handling failed", fields...)
	}
}

func (q *Queue) safeHandle(ctx context.Context, j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic handling %s message: %v", j.kind, r)
		}
	}()
	return j.handle(ctx)
}
