// Package catchzone is the Catch Zone session engine: a three-lane catching
// game driven by lane commands. It owns scoring, level progression, item
// spawning and falling, and the catch/miss rules. Rendering and input capture
// belong to the host, which talks to the engine through Start, Stop,
// SubmitInput, State and the On* observers.
package catchzone

import (
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catch-zone/internal/clock"
	"github.com/vovakirdan/catch-zone/internal/config"
	"github.com/vovakirdan/catch-zone/internal/core"
	"github.com/vovakirdan/catch-zone/internal/pose"
)

// LevelTick is the period of the coarse level timer.
const LevelTick = time.Second

// Engine runs one game session at a time. All methods are safe for
// concurrent use. Observers are called outside the engine lock, in the order
// the changes happened, and may call back into the engine.
type Engine struct {
	mu sync.Mutex

	cfg           config.Config
	catalog       *Catalog
	vocab         *pose.Vocabulary
	sched         clock.Scheduler
	frameInterval time.Duration
	logger        *log.Logger

	items   *Registry
	spawner *Spawner

	gen            uint64 // Bumped on every Start; timer callbacks carry it
	phase          Phase
	score          int
	level          int
	misses         int
	lane           core.Lane
	levelRemaining int
	reason         EndReason
	drop           time.Duration
	lastFrame      time.Time

	levelTimer clock.Timer
	frameTimer clock.Timer

	obs    observers
	notify dispatcher
	snap   atomic.Pointer[Snapshot]
}

// New creates an idle engine. A nil scheduler means the real clock.
func New(cfg config.Config, rt core.RuntimeConfig, sched clock.Scheduler) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(cfg.Items)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		sched = clock.New()
	}

	e := &Engine{
		cfg:            cfg,
		catalog:        catalog,
		vocab:          pose.NewVocabulary(cfg.Vocabulary),
		sched:          sched,
		frameInterval:  rt.FrameInterval(),
		logger:         log.New(io.Discard),
		items:          NewRegistry(),
		level:          1,
		lane:           cfg.Session.StartLane,
		levelRemaining: cfg.Session.LevelSeconds,
		drop:           cfg.Drop.Duration(1),
	}
	rng := rand.New(rand.NewSource(rt.ResolveSeed()))
	e.spawner = NewSpawner(sched, catalog, cfg.Spawn, rng)
	e.publish()
	return e, nil
}

// SetLogger sets the engine's debug logger. nil discards output.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = l
}

// SetRand replaces the random source used for spawning.
func (e *Engine) SetRand(r Rand) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spawner.rng = r
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Catalog returns the item catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Start begins a fresh session. Calling it on a running session stops that
// session first, which fires its session-end notification.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.phase == PhaseActive {
		e.end(EndNone)
	}

	e.gen++
	gen := e.gen
	e.phase = PhaseActive
	e.score = 0
	e.level = 1
	e.misses = 0
	e.lane = e.cfg.Session.StartLane
	e.levelRemaining = e.cfg.Session.LevelSeconds
	e.reason = EndNone
	e.drop = e.cfg.Drop.Duration(1)
	e.items.Reset()
	e.lastFrame = e.sched.Now()

	e.emitScore()
	e.emitLevel()
	e.emitMisses()
	e.emitLane()

	e.levelTimer = e.sched.Every(LevelTick, func(time.Time) { e.onLevelTick(gen) })
	e.frameTimer = e.sched.Every(e.frameInterval, func(now time.Time) { e.onFrame(gen, now) })
	e.restartSpawner(gen)

	e.logger.Debug("session started", "session", gen, "drop", e.drop, "frame", e.frameInterval)
	e.unlockAndFlush()
}

// Stop ends the running session. It is a no-op when no session is active.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.phase != PhaseActive {
		e.mu.Unlock()
		return
	}
	e.end(EndNone)
	e.unlockAndFlush()
}

// SubmitInput moves the catcher to the lane named by label. It reports
// whether the lane changed; unknown labels, repeats of the current lane and
// input outside an active session are ignored.
func (e *Engine) SubmitInput(label string) bool {
	lane, ok := e.vocab.Match(label)
	if !ok {
		return false
	}

	e.mu.Lock()
	if e.phase != PhaseActive || lane == e.lane {
		e.mu.Unlock()
		return false
	}
	prev := e.lane
	e.lane = lane
	e.emitLane()
	e.logger.Debug("lane changed", "from", prev, "to", lane, "label", label)
	e.unlockAndFlush()
	return true
}

// State returns a copy of the latest session state. It never blocks on the
// engine lock.
func (e *Engine) State() Snapshot {
	s := *e.snap.Load()
	s.Items = append([]ItemView(nil), s.Items...)
	return s
}

func (e *Engine) onLevelTick(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.phase != PhaseActive {
		e.mu.Unlock()
		return
	}
	e.levelRemaining--
	if e.levelRemaining <= 0 {
		e.levelUp(gen)
	}
	e.unlockAndFlush()
}

func (e *Engine) levelUp(gen uint64) {
	e.emitLevelComplete()

	prev := e.level
	e.level++
	e.levelRemaining = e.cfg.Session.LevelSeconds
	e.drop = e.cfg.Drop.Duration(e.level)

	e.emitLevel()
	e.emitLevelStart()
	e.logger.Debug("level up", "from", prev, "to", e.level, "drop", e.drop)

	e.restartSpawner(gen)
}

// restartSpawner drops the pending creation, spawns one item now and
// schedules the next at the current drop duration.
func (e *Engine) restartSpawner(gen uint64) {
	epoch := e.spawner.Restart(e.drop)
	e.spawnNext(gen, epoch)
}

func (e *Engine) onSpawnTimer(gen, epoch uint64) {
	e.mu.Lock()
	if gen != e.gen || e.phase != PhaseActive || !e.spawner.Current(epoch) {
		e.mu.Unlock()
		return
	}
	e.spawnNext(gen, epoch)
	e.unlockAndFlush()
}

func (e *Engine) spawnNext(gen, epoch uint64) {
	kind, lane := e.spawner.Pick()
	it := e.items.Add(kind, lane, e.spawner.Drop())
	delay := e.spawner.Schedule(func() { e.onSpawnTimer(gen, epoch) })
	e.logger.Debug("item spawned", "id", it.ID, "kind", kind.Name, "lane", lane, "next", delay)
}

func (e *Engine) onFrame(gen uint64, now time.Time) {
	e.mu.Lock()
	if gen != e.gen || e.phase != PhaseActive {
		e.mu.Unlock()
		return
	}
	dt := now.Sub(e.lastFrame)
	if dt < 0 {
		dt = 0
	}
	e.lastFrame = now

	e.items.Advance(dt)
	e.resolve()
	e.emitItems()
	e.unlockAndFlush()
}

// resolve applies the catch and miss rules in item order. Once the session
// ends, the remaining items are left as they are.
func (e *Engine) resolve() {
	threshold := e.cfg.Catch.Threshold
	e.items.Sweep(func(it *FallingItem) bool {
		if e.phase != PhaseActive {
			return true
		}
		switch {
		case it.Progress >= threshold && it.Lane == e.lane:
			it.resolved = true
			e.caught(it)
			return false
		case it.Progress >= ProgressFloor:
			it.resolved = true
			e.missed(it)
			return false
		}
		return true
	})
}

func (e *Engine) caught(it *FallingItem) {
	if it.Kind.Hazard {
		e.logger.Debug("hazard caught", "id", it.ID, "lane", it.Lane)
		e.end(EndHazardCaught)
		return
	}
	e.score += it.Kind.Score
	e.emitScore()
	e.logger.Debug("item caught", "id", it.ID, "kind", it.Kind.Name, "score", e.score)
}

func (e *Engine) missed(it *FallingItem) {
	if it.Kind.Hazard {
		return
	}
	e.misses++
	e.emitMisses()
	e.logger.Debug("item missed", "id", it.ID, "kind", it.Kind.Name, "misses", e.misses)
	if e.misses >= e.cfg.Session.MaxMisses {
		e.end(EndFruitMissed)
	}
}

// end halts every timer and fires session-end. Callers hold e.mu.
func (e *Engine) end(reason EndReason) {
	e.phase = PhaseEnded
	e.reason = reason
	e.halt()
	e.emitEnd()
	e.logger.Debug("session ended", "session", e.gen, "reason", reason, "score", e.score, "level", e.level)
}

func (e *Engine) halt() {
	if e.levelTimer != nil {
		e.levelTimer.Stop()
		e.levelTimer = nil
	}
	if e.frameTimer != nil {
		e.frameTimer.Stop()
		e.frameTimer = nil
	}
	e.spawner.Stop()
}

// publish stores a fresh snapshot. Callers hold e.mu.
func (e *Engine) publish() {
	e.snap.Store(&Snapshot{
		Phase:              e.phase,
		Score:              e.score,
		Level:              e.level,
		Misses:             e.misses,
		Lane:               e.lane,
		LevelTimeRemaining: e.levelRemaining,
		Reason:             e.reason,
		Drop:               e.drop,
		Items:              e.items.Views(),
	})
}

// unlockAndFlush publishes state, releases e.mu and delivers queued
// notifications.
func (e *Engine) unlockAndFlush() {
	e.publish()
	e.mu.Unlock()
	e.notify.drain()
}
