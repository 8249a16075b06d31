package animator

import "time"

// frameInterval approximates one animation frame.
const frameInterval = 16 * time.Millisecond

// Ease is quadratic ease-in-out over normalized progress t in [0,1].
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// SmoothScroll eases a position from from to to over duration, invoking
// apply with the interpolated position once per frame. The animation
// terminates when elapsed time reaches the duration, not when the position
// happens to land on the target, and the final frame clamps to the exact
// target so rounding drift never accumulates.
func (a *Animator) SmoothScroll(from, to float64, duration time.Duration, apply func(position float64)) (cancel func()) {
	if apply == nil {
		return func() {}
	}
	if duration <= 0 {
		apply(to)
		return func() {}
	}

	start := a.sched.Now()
	var stop func()
	stop = a.sched.Every(frameInterval, func() {
		elapsed := a.sched.Now().Sub(start)
		if elapsed >= duration {
			apply(to)
			stop()
			return
		}
		t := float64(elapsed) / float64(duration)
		apply(from + (to-from)*Ease(t))
	})

	return stop
}
