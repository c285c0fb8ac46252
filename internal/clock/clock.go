// Package clock abstracts wall time so tick loops, pacing delays and TTL checks
// can be driven deterministically in tests.
package clock

import (
	"context"
	"time"
)

// Clock is the time source used by the schedulers, workers and caches.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
	NewTicker(d time.Duration) Ticker
}

// Ticker mirrors the subset of time.Ticker used by the scheduler.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real is the production clock backed by the time package.
type Real struct{}

// New returns the real clock.
func New() Real { return Real{} }

func (Real) Now() time.Time { return time.Now() }

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (Real) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// Day returns the calendar day of t in location, as midnight UTC.
func Day(t time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	y, m, d := t.In(location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
