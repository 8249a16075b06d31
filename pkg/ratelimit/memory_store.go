package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store. Buckets are pruned on every access;
// there is no background sweeper. Each key's bucket carries its own mutex so
// concurrent callers hitting different keys do not contend.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]*memoryBucket

	initialCapacity int
}

type memoryBucket struct {
	mu         sync.Mutex
	timestamps []time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithInitialCapacity sets the initial timestamp slice capacity per bucket.
func WithInitialCapacity(capacity int) MemoryStoreOption {
	return func(s *MemoryStore) {
		if capacity > 0 {
			s.initialCapacity = capacity
		}
	}
}

// NewMemoryStore creates an in-memory timestamp bucket store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets:         make(map[string]*memoryBucket),
		initialCapacity: 16,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *MemoryStore) bucket(key string, create bool) *memoryBucket {
	s.mu.RLock()
	b, ok := s.buckets[key]
	s.mu.RUnlock()
	if ok || !create {
		return b
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.buckets[key]; ok {
		return b
	}
	b = &memoryBucket{timestamps: make([]time.Time, 0, s.initialCapacity)}
	s.buckets[key] = b
	return b
}

// Timestamps prunes entries at or before cutoff and returns a copy of the
// survivors in recording order.
func (s *MemoryStore) Timestamps(ctx context.Context, key string, cutoff time.Time) ([]time.Time, error) {
	b := s.bucket(key, false)
	if b == nil {
		return nil, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.prune(cutoff)

	out := make([]time.Time, len(b.timestamps))
	copy(out, b.timestamps)
	return out, nil
}

// Record prunes entries at or before cutoff, then appends ts.
func (s *MemoryStore) Record(ctx context.Context, key string, ts, cutoff time.Time) error {
	b := s.bucket(key, true)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.prune(cutoff)
	b.timestamps = append(b.timestamps, ts)
	return nil
}

// Delete removes the key's bucket.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// prune drops timestamps at or before cutoff. Buckets are append-ordered so
// survivors form a suffix.
func (b *memoryBucket) prune(cutoff time.Time) {
	keep := 0
	for keep < len(b.timestamps) && !b.timestamps[keep].After(cutoff) {
		keep++
	}
	if keep > 0 {
		b.timestamps = append(b.timestamps[:0], b.timestamps[keep:]...)
	}
}
