package scheduler

import (
	"sync"
	"time"
)

// Virtual is a deterministic Scheduler for tests. Nothing fires until
// Advance moves the virtual clock; due callbacks then run in due order
// (insertion order on ties) on the calling goroutine.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers map[int]*virtualTimer
}

type virtualTimer struct {
	id       int
	due      time.Time
	interval time.Duration // 0 for one-shot
	fn       func()
}

// NewVirtual creates a virtual scheduler starting at the given time.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{
		now:    start,
		timers: make(map[int]*virtualTimer),
	}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) After(d time.Duration, fn func()) (cancel func()) {
	return v.schedule(d, 0, fn)
}

func (v *Virtual) Every(d time.Duration, fn func()) (stop func()) {
	return v.schedule(d, d, fn)
}

func (v *Virtual) schedule(d, interval time.Duration, fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	id := v.seq
	v.timers[id] = &virtualTimer{
		id:       id,
		due:      v.now.Add(d),
		interval: interval,
		fn:       fn,
	}

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.timers, id)
	}
}

// Advance moves the clock forward by d, firing every timer that comes due
// along the way. Callbacks run outside the scheduler lock, so they may
// schedule or cancel timers themselves; timers they schedule fire within
// the same Advance if they come due before it ends.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now.Add(d)

	for {
		next := v.nextDueLocked(target)
		if next == nil {
			break
		}

		if next.due.After(v.now) {
			v.now = next.due
		}
		if next.interval > 0 {
			next.due = next.due.Add(next.interval)
		} else {
			delete(v.timers, next.id)
		}

		fn := next.fn
		v.mu.Unlock()
		fn()
		v.mu.Lock()
	}

	v.now = target
	v.mu.Unlock()
}

// nextDueLocked returns the earliest timer due at or before target,
// breaking ties by scheduling order.
func (v *Virtual) nextDueLocked(target time.Time) *virtualTimer {
	var next *virtualTimer
	for _, t := range v.timers {
		if t.due.After(target) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.id < next.id) {
			next = t
		}
	}
	return next
}

// Pending returns the number of scheduled timers, useful for asserting that
// cleanup happened.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}
