package scheduler

import "time"

// Scheduler is the timer surface the toolkit runs on. Hosts pass Wall;
// tests pass Virtual and advance it deterministically.
//
// Cancel and stop functions are idempotent, and canceling an already-fired
// timer is a no-op. Callbacks that outlive their target are expected: a
// callback must tolerate firing after the thing it was scheduled for is
// gone.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// After runs fn once after d. The returned function cancels the
	// timer if it has not fired yet.
	After(d time.Duration, fn func()) (cancel func())

	// Every runs fn repeatedly every d until the returned stop function
	// is called.
	Every(d time.Duration, fn func()) (stop func())
}
