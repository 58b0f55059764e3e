// Package clock abstracts wall-clock time and timer scheduling so the engine can
// run against real time in hosts and virtual time in tests.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels future firings. It reports whether the timer was still
	// pending; a callback already running is not interrupted.
	Stop() bool
}

// Scheduler runs callbacks after a delay or periodically.
// Callbacks may run on any goroutine.
type Scheduler interface {
	Clock

	// AfterFunc runs f once, after d.
	AfterFunc(d time.Duration, f func()) Timer

	// Every runs f every d, passing the tick time, until stopped.
	Every(d time.Duration, f func(time.Time)) Timer
}

// Real is a Scheduler backed by the time package.
type Real struct{}

// New returns the real-time scheduler.
func New() Real {
	return Real{}
}

// Now returns the current wall-clock time.
func (Real) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Every starts a ticker goroutine that calls f on each tick.
func (Real) Every(d time.Duration, f func(time.Time)) Timer {
	t := &ticker{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

// ticker drives a periodic callback until Stop closes done.
type ticker struct {
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func (t *ticker) run(f func(time.Time)) {
	defer t.ticker.Stop()
	for {
		select {
		case now := <-t.ticker.C:
			// Stop may race with a pending tick; prefer done.
			select {
			case <-t.done:
				return
			default:
			}
			f(now)
		case <-t.done:
			return
		}
	}
}

// Stop halts the ticker. Safe to call multiple times.
func (t *ticker) Stop() bool {
	stopped := false
	t.stopOnce.Do(func() {
		close(t.done)
		stopped = true
	})
	return stopped
}
