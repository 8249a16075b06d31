package ratelimit

import "errors"

var (
	ErrInvalidLimit  = errors.New("invalid limit")
	ErrInvalidWindow = errors.New("invalid window")
	ErrKeyRequired   = errors.New("key is required")
	ErrStoreRequired = errors.New("store is required")

	// ErrStoreUnavailable wraps backend failures from durable stores.
	ErrStoreUnavailable = errors.New("rate limit store unavailable")
)
