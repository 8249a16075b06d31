// Package ratelimit bounds the number of events of a given kind within a
// sliding time window.
//
// The limiter records individual event timestamps per key through the Store
// interface. Pruning is eager: every read and every write first discards
// entries older than the window, so at the moment of inspection a bucket
// never contains stale timestamps. There is no background cleanup timer.
//
// A denied event is not recorded - hammering an exhausted key does not push
// the reset time further out.
//
// Two backends ship with the package:
//
//   - MemoryStore keeps buckets in process memory with per-key locking.
//   - RedisStore keeps buckets in Redis sorted sets, so limits survive a
//     process (or page) restart.
//
// # Usage
//
//	store := ratelimit.NewMemoryStore()
//	limiter, err := ratelimit.New(store, 3, 10*time.Minute)
//	if err != nil {
//	    return err
//	}
//
//	res, err := limiter.Allow(ctx, "form_submission")
//	if err != nil {
//	    return err
//	}
//	if !res.Allowed {
//	    // tell the user to slow down; res.RetryAfter() says how long
//	}
//
// Tests inject a clock with WithClock to advance time deterministically
// instead of sleeping through real windows.
package ratelimit
