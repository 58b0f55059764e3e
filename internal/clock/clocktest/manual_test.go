package clocktest

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualAfterFuncOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []string

	m.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(20 * time.Millisecond)
	if got := len(order); got != 2 {
		t.Fatalf("fired %d callbacks after 20ms, expected 2", got)
	}
	m.Advance(20 * time.Millisecond)

	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, expected %v", order, want)
		}
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", m.Pending())
	}
}

func TestManualEvery(t *testing.T) {
	m := NewManual(epoch)
	var ticks []time.Time
	timer := m.Every(time.Second, func(now time.Time) { ticks = append(ticks, now) })

	m.Advance(3500 * time.Millisecond)
	if len(ticks) != 3 {
		t.Fatalf("got %d ticks, expected 3", len(ticks))
	}
	if !ticks[2].Equal(epoch.Add(3 * time.Second)) {
		t.Errorf("third tick at %v, expected %v", ticks[2], epoch.Add(3*time.Second))
	}
	if !m.Now().Equal(epoch.Add(3500 * time.Millisecond)) {
		t.Errorf("Now() = %v after Advance", m.Now())
	}

	if !timer.Stop() {
		t.Error("Stop() on a running ticker should return true")
	}
	m.Advance(5 * time.Second)
	if len(ticks) != 3 {
		t.Errorf("ticker fired after Stop(): %d ticks", len(ticks))
	}
}

func TestManualStopFromCallback(t *testing.T) {
	m := NewManual(epoch)
	fired := 0
	var self interface{ Stop() bool }
	self = m.Every(time.Second, func(time.Time) {
		fired++
		self.Stop()
	})

	m.Advance(5 * time.Second)
	if fired != 1 {
		t.Errorf("fired %d times, expected 1", fired)
	}
}

func TestManualRescheduleWithinAdvance(t *testing.T) {
	m := NewManual(epoch)
	var at []time.Duration

	var reschedule func()
	reschedule = func() {
		at = append(at, m.Now().Sub(epoch))
		m.AfterFunc(400*time.Millisecond, reschedule)
	}
	reschedule()

	m.Advance(time.Second)
	want := []time.Duration{0, 400 * time.Millisecond, 800 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("fired at %v, expected %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("fire %d at %v, expected %v", i, at[i], want[i])
		}
	}
}
