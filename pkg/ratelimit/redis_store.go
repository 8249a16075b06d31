package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a durable Store backed by Redis sorted sets. Each key maps
// to one sorted set whose member scores are timestamp nanoseconds, so
// pruning is a single ZREMRANGEBYSCORE. Buckets survive process restarts,
// which is what makes rate limits stick across page reloads.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the Redis key prefix (default "ratelimit:").
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore creates a Redis-backed timestamp bucket store.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}

	s := &RedisStore{
		client: client,
		prefix: "ratelimit:",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *RedisStore) redisKey(key string) string {
	return s.prefix + key
}

// Timestamps prunes entries at or before cutoff and returns the survivors
// in recording order.
func (s *RedisStore) Timestamps(ctx context.Context, key string, cutoff time.Time) ([]time.Time, error) {
	rkey := s.redisKey(key)

	if err := s.pruneKey(ctx, rkey, cutoff); err != nil {
		return nil, err
	}

	members, err := s.client.ZRangeWithScores(ctx, rkey, 0, -1).Result()
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	timestamps := make([]time.Time, 0, len(members))
	for _, m := range members {
		timestamps = append(timestamps, time.Unix(0, int64(m.Score)))
	}
	return timestamps, nil
}

// Record prunes entries at or before cutoff, then appends ts. The member
// carries a random suffix so two events on the same nanosecond both count.
func (s *RedisStore) Record(ctx context.Context, key string, ts, cutoff time.Time) error {
	rkey := s.redisKey(key)

	if err := s.pruneKey(ctx, rkey, cutoff); err != nil {
		return err
	}

	member := fmt.Sprintf("%d:%s", ts.UnixNano(), uuid.NewString())
	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, rkey, redis.Z{Score: float64(ts.UnixNano()), Member: member})
	// Expire the whole set once the newest entry has left every possible
	// window, so abandoned keys do not accumulate forever.
	pipe.PExpire(ctx, rkey, ts.Sub(cutoff))
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the key's bucket.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) pruneKey(ctx context.Context, rkey string, cutoff time.Time) error {
	maxScore := strconv.FormatInt(cutoff.UnixNano(), 10)
	if err := s.client.ZRemRangeByScore(ctx, rkey, "-inf", maxScore).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
