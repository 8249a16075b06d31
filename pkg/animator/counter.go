package animator

import (
	"strconv"
	"time"
)

// counterSteps is the number of fixed-interval increments a counter takes
// from zero to its target.
const counterSteps = 50

// CountUp animates an element's text linearly from 0 to target over
// duration using fixed-interval increments, clamping the final tick to the
// exact target. The returned function cancels a running animation; the
// element keeps whatever value it last showed.
func (a *Animator) CountUp(id string, target int, duration time.Duration) (cancel func()) {
	if duration <= 0 {
		a.view.SetText(id, strconv.Itoa(target))
		return func() {}
	}

	a.view.SetText(id, "0")

	interval := duration / counterSteps
	step := 0
	var stop func()
	stop = a.sched.Every(interval, func() {
		step++
		if step >= counterSteps {
			a.view.SetText(id, strconv.Itoa(target))
			stop()
			return
		}
		a.view.SetText(id, strconv.Itoa(target*step/counterSteps))
	})

	return stop
}

// Typewriter reveals text one rune per interval. The returned function
// cancels a running reveal, leaving the element with the prefix shown so
// far.
func (a *Animator) Typewriter(id, text string, interval time.Duration) (cancel func()) {
	runes := []rune(text)
	if len(runes) == 0 || interval <= 0 {
		a.view.SetText(id, text)
		return func() {}
	}

	a.view.SetText(id, "")

	shown := 0
	var stop func()
	stop = a.sched.Every(interval, func() {
		shown++
		a.view.SetText(id, string(runes[:shown]))
		if shown >= len(runes) {
			stop()
		}
	})

	return stop
}
