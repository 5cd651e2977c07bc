// Package batcher buffers items and hands them to a flush function in
// size or time bounded batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop.
var ErrStopped = errors.New("batcher stopped")

// Config bounds batch size and latency. RPS limits flushes per second.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// FlushFunc writes one batch. The slice is reused after it returns.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Batcher collects items from any goroutine and flushes them from one.
type Batcher[T any] struct {
	cfg     Config
	flush   FlushFunc[T]
	onFlush func(size int, err error)
	limiter ratelimit.Limiter
	logger  *zap.Logger

	items    chan T
	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New constructs a Batcher. onFlush may be nil.
func New[T any](logger *zap.Logger, cfg Config, flush FlushFunc[T], onFlush func(size int, err error)) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 100
	}
	return &Batcher[T]{
		cfg:     cfg,
		flush:   flush,
		onFlush: onFlush,
		limiter: ratelimit.New(cfg.RPS),
		logger:  logger,
		items:   make(chan T, cfg.FlushSize*2),
		stop:    make(chan struct{}),
	}
}

// Start runs the flush loop until ctx is canceled or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes buffered items and waits for the loop to exit. It is safe
// to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	// The final flush must survive the cancellation that triggered it.
	flushCtx := context.WithoutCancel(ctx)
	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		err := b.flush(flushCtx, buf)
		if b.onFlush != nil {
			b.onFlush(len(buf), err)
		}
		if err != nil {
			b.logger.Error("batch dropped", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}
	drain := func() {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush()
				}
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
