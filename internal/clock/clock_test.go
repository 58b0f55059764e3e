package clock

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRealAfterFunc(t *testing.T) {
	s := New()
	fired := make(chan struct{})
	s.AfterFunc(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("AfterFunc callback did not fire")
	}
}

func TestRealAfterFuncStop(t *testing.T) {
	s := New()
	var fired atomic.Bool
	timer := s.AfterFunc(50*time.Millisecond, func() { fired.Store(true) })

	if !timer.Stop() {
		t.Fatal("Stop() on a pending timer should return true")
	}
	time.Sleep(100 * time.Millisecond)
	if fired.Load() {
		t.Error("stopped timer fired")
	}
}

func TestRealEvery(t *testing.T) {
	s := New()
	var ticks atomic.Int32
	reached := make(chan struct{}, 1)
	timer := s.Every(2*time.Millisecond, func(time.Time) {
		if ticks.Add(1) == 3 {
			reached <- struct{}{}
		}
	})

	select {
	case <-reached:
	case <-time.After(2 * time.Second):
		t.Fatal("Every callback did not tick three times")
	}

	if !timer.Stop() {
		t.Error("first Stop() should return true")
	}
	if timer.Stop() {
		t.Error("second Stop() should return false")
	}

	// Allow any tick already in flight to finish, then expect silence
	time.Sleep(10 * time.Millisecond)
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != after {
		t.Error("ticker kept firing after Stop()")
	}
}
