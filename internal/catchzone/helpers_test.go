package catchzone

import (
	"testing"
	"time"

	"github.com/vovakirdan/catch-zone/internal/clock/clocktest"
	"github.com/vovakirdan/catch-zone/internal/config"
	"github.com/vovakirdan/catch-zone/internal/core"
)

// seqRand replays a fixed sequence of draws, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var epoch0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// frame is the frame interval used by test engines (10 frames per second).
const frame = 100 * time.Millisecond

func newTestEngine(t *testing.T) (*Engine, *clocktest.Manual) {
	t.Helper()
	clk := clocktest.NewManual(epoch0)
	e, err := New(config.Default(), core.RuntimeConfig{TickRate: 10, Seed: 1}, clk)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e, clk
}

// quiesce stops the spawner and clears the items it created so tests can
// place items by hand.
func quiesce(e *Engine) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spawner.Stop()
	e.items.Reset()
	e.publish()
}

// place drops an item of the named kind into lane at progress 0.
func place(t *testing.T, e *Engine, name string, lane core.Lane) uint64 {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	kind, ok := e.catalog.Lookup(name)
	if !ok {
		t.Fatalf("unknown kind %q", name)
	}
	return e.items.Add(kind, lane, e.drop).ID
}
