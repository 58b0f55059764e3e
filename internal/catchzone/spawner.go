package catchzone

import (
	"time"

	"github.com/vovakirdan/catch-zone/internal/clock"
	"github.com/vovakirdan/catch-zone/internal/config"
	"github.com/vovakirdan/catch-zone/internal/core"
)

// Rand is a source of uniform reals in [0,1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner decides what to drop and when. It holds at most one pending
// creation; every Stop or Restart cancels it and starts a new epoch, so a
// callback that was already in flight can tell it is stale.
type Spawner struct {
	sched   clock.Scheduler
	catalog *Catalog
	cfg     config.SpawnConfig
	rng     Rand

	drop    time.Duration // Drop duration assigned to new items
	epoch   uint64
	pending clock.Timer
}

// NewSpawner creates a stopped spawner.
func NewSpawner(sched clock.Scheduler, catalog *Catalog, cfg config.SpawnConfig, rng Rand) *Spawner {
	return &Spawner{
		sched:   sched,
		catalog: catalog,
		cfg:     cfg,
		rng:     rng,
	}
}

// Restart cancels any pending creation and returns the new epoch.
// The caller creates the first item immediately, then calls Schedule.
func (s *Spawner) Restart(drop time.Duration) uint64 {
	s.Stop()
	s.drop = drop
	return s.epoch
}

// Stop cancels the pending creation, if any.
func (s *Spawner) Stop() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.epoch++
}

// Current reports whether epoch is still the live one.
func (s *Spawner) Current(epoch uint64) bool {
	return epoch == s.epoch
}

// Drop returns the drop duration new items receive.
func (s *Spawner) Drop() time.Duration {
	return s.drop
}

// Pick draws a lane uniformly, then an item kind.
func (s *Spawner) Pick() (ItemKind, core.Lane) {
	lanes := core.Lanes()
	lane := lanes[index(s.rng.Float64(), len(lanes))]
	kind := s.catalog.Pick(s.rng, s.cfg.HazardChance)
	return kind, lane
}

// Delay draws the gap before the next creation, uniform in
// [min_factor*drop, max_factor*drop).
func (s *Spawner) Delay() time.Duration {
	lo := s.cfg.MinFactor * float64(s.drop)
	hi := s.cfg.MaxFactor * float64(s.drop)
	return time.Duration(lo + s.rng.Float64()*(hi-lo))
}

// Schedule arms the next creation. fire runs on the scheduler's goroutine.
func (s *Spawner) Schedule(fire func()) time.Duration {
	delay := s.Delay()
	s.pending = s.sched.AfterFunc(delay, fire)
	return delay
}
