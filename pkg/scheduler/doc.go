// Package scheduler abstracts timers behind a small interface so that
// time-driven behavior (notification expiry, animation ticks, simulated
// submission delays) can be tested by advancing a virtual clock instead of
// sleeping.
//
// Wall wraps the time package for production hosts. Virtual keeps a sorted
// pending set and fires callbacks deterministically from Advance.
package scheduler
