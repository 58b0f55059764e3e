// Package clocktest provides a virtual-time clock.Scheduler for tests.
package clocktest

import (
	"sync"
	"time"

	"github.com/vovakirdan/catch-zone/internal/clock"
)

// Manual is a Scheduler whose time only moves when Advance is called.
// Due callbacks run synchronously inside Advance, on the caller's goroutine,
// in due-time order; ties fire in scheduling order.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*task
}

var _ clock.Scheduler = (*Manual)(nil)

type task struct {
	m      *Manual
	at     time.Time
	every  time.Duration // zero for one-shot
	seq    uint64
	once   func()
	tick   func(time.Time)
	active bool
}

// NewManual creates a scheduler starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules f to run once when virtual time reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, f func()) clock.Timer {
	return m.schedule(d, 0, f, nil)
}

// Every schedules f to run at now+d, now+2d, ... until stopped.
func (m *Manual) Every(d time.Duration, f func(time.Time)) clock.Timer {
	if d <= 0 {
		panic("clocktest: non-positive interval for Every")
	}
	return m.schedule(d, d, nil, f)
}

func (m *Manual) schedule(d, every time.Duration, once func(), tick func(time.Time)) *task {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &task{
		m:      m,
		at:     m.now.Add(d),
		every:  every,
		seq:    m.seq,
		once:   once,
		tick:   tick,
		active: true,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Stop cancels the task. It reports whether the task was still pending.
func (t *task) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	was := t.active
	t.active = false
	return was
}

// Advance moves virtual time forward by d, firing everything that falls due.
// Callbacks may schedule or stop tasks; newly due tasks fire within the same call.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}

		m.now = next.at
		now := m.now
		if next.every > 0 {
			next.at = next.at.Add(next.every)
		} else {
			next.active = false
		}
		m.mu.Unlock()

		if next.once != nil {
			next.once()
		} else {
			next.tick(now)
		}
	}
}

// nextDue returns the earliest active task due at or before target and
// drops inactive tasks. Caller must hold m.mu.
func (m *Manual) nextDue(target time.Time) *task {
	live := m.tasks[:0]
	var best *task
	for _, t := range m.tasks {
		if !t.active {
			continue
		}
		live = append(live, t)
		if t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	// Clear the tail so dropped tasks can be collected
	for i := len(live); i < len(m.tasks); i++ {
		m.tasks[i] = nil
	}
	m.tasks = live
	return best
}

// Pending returns the number of active (not yet fired or stopped) tasks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if t.active {
			n++
		}
	}
	return n
}
