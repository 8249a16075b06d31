package animator

import (
	"sync"

	"github.com/dmitrymomot/sitekit/pkg/scheduler"
	"github.com/dmitrymomot/sitekit/pkg/view"
)

const (
	// AnimatedClass marks an element whose reveal transition has run.
	AnimatedClass = "animated"

	// DefaultThreshold is the visibility ratio that triggers the reveal.
	DefaultThreshold = 0.1
)

// Animator applies one-shot reveal transitions to observed elements and
// drives numeric counter, typewriter and scroll animations off a scheduler.
type Animator struct {
	mu        sync.Mutex
	view      view.View
	sched     scheduler.Scheduler
	threshold float64
	observed  map[string]bool // id -> already animated
}

// Option configures an Animator.
type Option func(*Animator)

// WithThreshold overrides the visibility ratio that triggers reveals.
func WithThreshold(ratio float64) Option {
	return func(a *Animator) {
		if ratio > 0 && ratio <= 1 {
			a.threshold = ratio
		}
	}
}

// New creates an animator writing through the view and ticking on sched.
func New(v view.View, sched scheduler.Scheduler, opts ...Option) (*Animator, error) {
	if v == nil {
		return nil, ErrViewRequired
	}
	if sched == nil {
		return nil, ErrSchedulerRequired
	}

	a := &Animator{
		view:      v,
		sched:     sched,
		threshold: DefaultThreshold,
		observed:  make(map[string]bool),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Observe registers elements for reveal-on-intersection. Re-observing an
// element that already animated does not reset it.
func (a *Animator) Observe(ids ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, id := range ids {
		if _, ok := a.observed[id]; !ok {
			a.observed[id] = false
		}
	}
}

// Intersect reports an element's visibility ratio, as delivered by the
// host's viewport observer. Crossing the threshold applies the animated
// class exactly once; later intersections are suppressed. Unobserved ids
// no-op.
func (a *Animator) Intersect(id string, ratio float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	animated, ok := a.observed[id]
	if !ok || animated || ratio < a.threshold {
		return
	}

	a.observed[id] = true
	a.view.AddClass(id, AnimatedClass)
}

// Animated reports whether the element's reveal has run.
func (a *Animator) Animated(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.observed[id]
}
