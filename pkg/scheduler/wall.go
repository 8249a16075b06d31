package scheduler

import (
	"sync"
	"time"
)

// Wall is the real-time Scheduler backed by the time package.
type Wall struct{}

// NewWall creates a wall-clock scheduler.
func NewWall() *Wall {
	return &Wall{}
}

func (*Wall) Now() time.Time {
	return time.Now()
}

func (*Wall) After(d time.Duration, fn func()) (cancel func()) {
	timer := time.AfterFunc(d, fn)
	var once sync.Once
	return func() {
		once.Do(func() { timer.Stop() })
	}
}

func (*Wall) Every(d time.Duration, fn func()) (stop func()) {
	ticker := time.NewTicker(d)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
