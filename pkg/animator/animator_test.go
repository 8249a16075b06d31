package animator_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/sitekit/pkg/animator"
	"github.com/dmitrymomot/sitekit/pkg/scheduler"
	"github.com/dmitrymomot/sitekit/pkg/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newAnimator(t *testing.T, opts ...animator.Option) (*animator.Animator, *view.MemoryView, *scheduler.Virtual) {
	t.Helper()

	v := view.NewMemoryView()
	sched := scheduler.NewVirtual(testStart)
	a, err := animator.New(v, sched, opts...)
	require.NoError(t, err)
	return a, v, sched
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := animator.New(nil, scheduler.NewVirtual(testStart))
	assert.ErrorIs(t, err, animator.ErrViewRequired)

	_, err = animator.New(view.NewMemoryView(), nil)
	assert.ErrorIs(t, err, animator.ErrSchedulerRequired)
}

func TestAnimator_Intersect(t *testing.T) {
	t.Parallel()

	t.Run("reveals at threshold", func(t *testing.T) {
		t.Parallel()
		a, v, _ := newAnimator(t)
		v.AddElement("card")
		a.Observe("card")

		a.Intersect("card", 0.05)
		e, _ := v.Element("card")
		assert.False(t, e.HasClass(animator.AnimatedClass))
		assert.False(t, a.Animated("card"))

		a.Intersect("card", 0.1)
		e, _ = v.Element("card")
		assert.True(t, e.HasClass(animator.AnimatedClass))
		assert.True(t, a.Animated("card"))
	})

	t.Run("one-shot, no re-trigger", func(t *testing.T) {
		t.Parallel()
		a, v, _ := newAnimator(t)
		v.AddElement("card")
		a.Observe("card")

		a.Intersect("card", 1.0)
		v.RemoveClass("card", animator.AnimatedClass)

		// The element scrolled out and back in; the reveal stays spent.
		a.Intersect("card", 1.0)
		e, _ := v.Element("card")
		assert.False(t, e.HasClass(animator.AnimatedClass))
		assert.True(t, a.Animated("card"))
	})

	t.Run("never intersected never animates", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("below-fold")
		a.Observe("below-fold")

		sched.Advance(24 * time.Hour)

		e, _ := v.Element("below-fold")
		assert.False(t, e.HasClass(animator.AnimatedClass))
		assert.False(t, a.Animated("below-fold"))
	})

	t.Run("unobserved element no-ops", func(t *testing.T) {
		t.Parallel()
		a, v, _ := newAnimator(t)
		v.AddElement("card")

		a.Intersect("card", 1.0)
		e, _ := v.Element("card")
		assert.False(t, e.HasClass(animator.AnimatedClass))
	})

	t.Run("custom threshold", func(t *testing.T) {
		t.Parallel()
		a, v, _ := newAnimator(t, animator.WithThreshold(0.5))
		v.AddElement("card")
		a.Observe("card")

		a.Intersect("card", 0.4)
		assert.False(t, a.Animated("card"))
		a.Intersect("card", 0.5)
		assert.True(t, a.Animated("card"))
	})

	t.Run("re-observe does not reset", func(t *testing.T) {
		t.Parallel()
		a, v, _ := newAnimator(t)
		v.AddElement("card")
		a.Observe("card")
		a.Intersect("card", 1.0)

		a.Observe("card")
		assert.True(t, a.Animated("card"))
	})
}

func TestAnimator_CountUp(t *testing.T) {
	t.Parallel()

	t.Run("linear progress with exact final value", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("stat")

		a.CountUp("stat", 250, 5*time.Second)

		e, _ := v.Element("stat")
		assert.Equal(t, "0", e.Text)

		// Half way: 25 of 50 steps.
		sched.Advance(2500 * time.Millisecond)
		e, _ = v.Element("stat")
		assert.Equal(t, "125", e.Text)

		sched.Advance(2500 * time.Millisecond)
		e, _ = v.Element("stat")
		assert.Equal(t, "250", e.Text)

		// Finished animations leave no timers behind.
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("target not divisible by steps still clamps", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("stat")

		a.CountUp("stat", 97, time.Second)
		sched.Advance(2 * time.Second)

		e, _ := v.Element("stat")
		assert.Equal(t, "97", e.Text)
	})

	t.Run("zero duration sets target immediately", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("stat")

		a.CountUp("stat", 42, 0)
		e, _ := v.Element("stat")
		assert.Equal(t, "42", e.Text)
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("cancel stops mid-count", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("stat")

		cancel := a.CountUp("stat", 100, 5*time.Second)
		sched.Advance(time.Second) // 10 steps
		cancel()
		sched.Advance(time.Minute)

		e, _ := v.Element("stat")
		assert.Equal(t, "20", e.Text)
	})

	t.Run("element removed mid-count is tolerated", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("stat")

		a.CountUp("stat", 100, time.Second)
		sched.Advance(500 * time.Millisecond)
		v.RemoveElement("stat")

		assert.NotPanics(t, func() { sched.Advance(time.Second) })
	})
}

func TestAnimator_Typewriter(t *testing.T) {
	t.Parallel()

	t.Run("one rune per tick", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("headline")

		a.Typewriter("headline", "héllo", 100*time.Millisecond)

		e, _ := v.Element("headline")
		assert.Equal(t, "", e.Text)

		sched.Advance(100 * time.Millisecond)
		e, _ = v.Element("headline")
		assert.Equal(t, "h", e.Text)

		sched.Advance(100 * time.Millisecond)
		e, _ = v.Element("headline")
		assert.Equal(t, "hé", e.Text)

		sched.Advance(time.Second)
		e, _ = v.Element("headline")
		assert.Equal(t, "héllo", e.Text)
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("empty text completes immediately", func(t *testing.T) {
		t.Parallel()
		a, v, sched := newAnimator(t)
		v.AddElement("headline")

		cancel := a.Typewriter("headline", "", 100*time.Millisecond)
		assert.NotPanics(t, cancel)
		assert.Equal(t, 0, sched.Pending())
	})
}

func TestEase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, animator.Ease(0))
	assert.Equal(t, 1.0, animator.Ease(1))
	assert.Equal(t, 0.5, animator.Ease(0.5))
	assert.Equal(t, 0.0, animator.Ease(-5))
	assert.Equal(t, 1.0, animator.Ease(5))

	// Ease-in: slow start.
	assert.InDelta(t, 0.02, animator.Ease(0.1), 1e-9)
	// Ease-out mirror.
	assert.InDelta(t, 0.98, animator.Ease(0.9), 1e-9)
	// Monotonic.
	prev := 0.0
	for i := 1; i <= 10; i++ {
		cur := animator.Ease(float64(i) / 10)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestAnimator_SmoothScroll(t *testing.T) {
	t.Parallel()

	t.Run("clamps to exact target at duration", func(t *testing.T) {
		t.Parallel()
		a, _, sched := newAnimator(t)

		var positions []float64
		a.SmoothScroll(0, 1000, 480*time.Millisecond, func(p float64) {
			positions = append(positions, p)
		})

		sched.Advance(time.Second)

		require.NotEmpty(t, positions)
		assert.Equal(t, 1000.0, positions[len(positions)-1])
		// Monotonic toward the target for a forward scroll.
		for i := 1; i < len(positions); i++ {
			assert.GreaterOrEqual(t, positions[i], positions[i-1])
		}
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("zero duration jumps straight to target", func(t *testing.T) {
		t.Parallel()
		a, _, sched := newAnimator(t)

		var got float64
		a.SmoothScroll(100, 500, 0, func(p float64) { got = p })
		assert.Equal(t, 500.0, got)
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("cancel stops frames", func(t *testing.T) {
		t.Parallel()
		a, _, sched := newAnimator(t)

		calls := 0
		cancel := a.SmoothScroll(0, 100, time.Second, func(float64) { calls++ })
		sched.Advance(100 * time.Millisecond)
		mid := calls
		cancel()
		sched.Advance(time.Minute)
		assert.Equal(t, mid, calls)
	})

	t.Run("nil apply is a no-op", func(t *testing.T) {
		t.Parallel()
		a, _, sched := newAnimator(t)
		assert.NotPanics(t, func() { a.SmoothScroll(0, 1, time.Second, nil)() })
		assert.Equal(t, 0, sched.Pending())
	})
}
