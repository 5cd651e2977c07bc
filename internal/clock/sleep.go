// Package clock provides context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// Sleep waits for d or returns ctx.Err() once ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff doubles the wait after every call to Wait, capped at Max.
// A zero Max disables the cap.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	next time.Duration
}

// Next returns the delay the following Wait will use and advances the
// schedule.
func (b *Backoff) Next() time.Duration {
	if b.next == 0 {
		b.next = b.Initial
	}
	d := b.next
	b.next *= 2
	if b.Max > 0 && b.next > b.Max {
		b.next = b.Max
	}
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}
	return d
}

// Wait sleeps for the next delay in the schedule.
func (b *Backoff) Wait(ctx context.Context) error {
	return Sleep(ctx, b.Next())
}

// Reset restarts the schedule from Initial.
func (b *Backoff) Reset() {
	b.next = 0
}
