package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the event was admitted.
	Allowed bool

	// Limit is the maximum number of events allowed in the window.
	Limit int

	// Remaining is the number of events left in the current window.
	Remaining int

	// ResetAt is when capacity next becomes available.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next event is admitted.
// Returns 0 if the current event was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter is the interface rate limiting implementations satisfy.
type Limiter interface {
	// Allow checks whether one event is admitted for the given key and,
	// if so, records it.
	Allow(ctx context.Context, key string) (*Result, error)

	// Status returns the current state for the given key without
	// recording anything.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset discards all recorded events for the given key.
	Reset(ctx context.Context, key string) error
}

// Store is the timestamp bucket storage backend. Every operation prunes
// eagerly: entries at or before the cutoff never survive a call, so a bucket
// observed through this interface only ever holds in-window timestamps.
//
// Implementations must serialize access per key; callers may share one store
// across goroutines.
type Store interface {
	// Timestamps prunes entries at or before cutoff, then returns the
	// surviving timestamps in recording order.
	Timestamps(ctx context.Context, key string, cutoff time.Time) ([]time.Time, error)

	// Record prunes entries at or before cutoff, then appends ts.
	Record(ctx context.Context, key string, ts, cutoff time.Time) error

	// Delete removes the key's bucket entirely.
	Delete(ctx context.Context, key string) error
}
