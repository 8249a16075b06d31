package ratelimit

import (
	"context"
	"time"
)

// SlidingWindow is a rate limiter that tracks individual event timestamps
// within a moving time window. A denied event is never recorded, so rejected
// attempts do not extend the window.
type SlidingWindow struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

// Option configures a SlidingWindow.
type Option func(*SlidingWindow)

// WithClock replaces the time source. Tests use this to advance a virtual
// clock instead of sleeping through real windows.
func WithClock(now func() time.Time) Option {
	return func(sw *SlidingWindow) {
		if now != nil {
			sw.now = now
		}
	}
}

// New creates a sliding window limiter admitting at most limit events per
// window for each key.
func New(store Store, limit int, window time.Duration, opts ...Option) (*SlidingWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	sw := &SlidingWindow{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(sw)
	}

	return sw, nil
}

// Allow checks whether one event is admitted for the given key and records
// it if so. When the pruned bucket is already at the limit, nothing is
// recorded and Allowed is false.
func (sw *SlidingWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := sw.now()
	cutoff := now.Add(-sw.window)

	timestamps, err := sw.store.Timestamps(ctx, key, cutoff)
	if err != nil {
		return nil, err
	}

	if len(timestamps) >= sw.limit {
		return &Result{
			Allowed:   false,
			Limit:     sw.limit,
			Remaining: 0,
			ResetAt:   timestamps[0].Add(sw.window),
		}, nil
	}

	if err := sw.store.Record(ctx, key, now, cutoff); err != nil {
		return nil, err
	}

	return &Result{
		Allowed:   true,
		Limit:     sw.limit,
		Remaining: sw.limit - len(timestamps) - 1,
		ResetAt:   now.Add(sw.window),
	}, nil
}

// Status returns the current state for the given key without recording.
func (sw *SlidingWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := sw.now()

	timestamps, err := sw.store.Timestamps(ctx, key, now.Add(-sw.window))
	if err != nil {
		return nil, err
	}

	remaining := sw.limit - len(timestamps)
	resetAt := now.Add(sw.window)
	if len(timestamps) > 0 {
		resetAt = timestamps[0].Add(sw.window)
	}

	return &Result{
		Allowed:   remaining > 0,
		Limit:     sw.limit,
		Remaining: max(0, remaining),
		ResetAt:   resetAt,
	}, nil
}

// Reset discards the key's bucket.
func (sw *SlidingWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return sw.store.Delete(ctx, key)
}
