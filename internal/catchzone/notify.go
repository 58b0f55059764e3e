package catchzone

import (
	"sync"

	"github.com/vovakirdan/catch-zone/internal/core"
)

// observers holds one replaceable slot per notification.
type observers struct {
	score         func(score int)
	level         func(level, remaining int)
	misses        func(misses int)
	lane          func(lane core.Lane)
	items         func(items []ItemView)
	end           func(Result)
	levelComplete func(level int)
	levelStart    func(level int)
}

// dispatcher delivers notifications in the order they were queued, outside
// the engine lock. Only one goroutine drains at a time; a nested drain (an
// observer calling back into the engine) returns at once and its
// notifications are delivered by the outer drain.
type dispatcher struct {
	mu       sync.Mutex
	queue    []func()
	draining bool
}

func (d *dispatcher) push(fn func()) {
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()
}

func (d *dispatcher) drain() {
	d.mu.Lock()
	if d.draining {
		d.mu.Unlock()
		return
	}
	d.draining = true
	d.mu.Unlock()

	finished := false
	defer func() {
		// An observer panicked; let the next drain proceed.
		if !finished {
			d.mu.Lock()
			d.draining = false
			d.mu.Unlock()
		}
	}()

	for {
		d.mu.Lock()
		if len(d.queue) == 0 {
			d.draining = false
			finished = true
			d.mu.Unlock()
			return
		}
		fn := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.mu.Unlock()

		fn()
	}
}

// OnScoreChange registers the score observer; nil clears it.
func (e *Engine) OnScoreChange(fn func(score int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.score = fn
}

// OnLevelChange registers the level observer. It fires at session start and
// on every level-up with the new level and the time remaining in it.
func (e *Engine) OnLevelChange(fn func(level, remaining int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.level = fn
}

// OnMissCountChange registers the miss-count observer.
func (e *Engine) OnMissCountChange(fn func(misses int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.misses = fn
}

// OnLaneChange registers the catcher-lane observer.
func (e *Engine) OnLaneChange(fn func(lane core.Lane)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.lane = fn
}

// OnItemUpdate registers the per-frame item observer. The slice is a copy.
func (e *Engine) OnItemUpdate(fn func(items []ItemView)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.items = fn
}

// OnSessionEnd registers the session-end observer.
func (e *Engine) OnSessionEnd(fn func(Result)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.end = fn
}

// OnLevelComplete registers an observer fired just before a level-up,
// with the level that was completed.
func (e *Engine) OnLevelComplete(fn func(level int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.levelComplete = fn
}

// OnLevelStart registers an observer fired just after a level-up,
// with the level that began.
func (e *Engine) OnLevelStart(fn func(level int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.obs.levelStart = fn
}

// The emit helpers capture the current observer and payload under e.mu.

func (e *Engine) emitScore() {
	if fn := e.obs.score; fn != nil {
		score := e.score
		e.notify.push(func() { fn(score) })
	}
}

func (e *Engine) emitLevel() {
	if fn := e.obs.level; fn != nil {
		level, remaining := e.level, e.levelRemaining
		e.notify.push(func() { fn(level, remaining) })
	}
}

func (e *Engine) emitMisses() {
	if fn := e.obs.misses; fn != nil {
		misses := e.misses
		e.notify.push(func() { fn(misses) })
	}
}

func (e *Engine) emitLane() {
	if fn := e.obs.lane; fn != nil {
		lane := e.lane
		e.notify.push(func() { fn(lane) })
	}
}

func (e *Engine) emitItems() {
	if fn := e.obs.items; fn != nil {
		items := e.items.Views()
		e.notify.push(func() { fn(items) })
	}
}

func (e *Engine) emitEnd() {
	if fn := e.obs.end; fn != nil {
		res := Result{Score: e.score, Level: e.level, Reason: e.reason}
		e.notify.push(func() { fn(res) })
	}
}

func (e *Engine) emitLevelComplete() {
	if fn := e.obs.levelComplete; fn != nil {
		level := e.level
		e.notify.push(func() { fn(level) })
	}
}

func (e *Engine) emitLevelStart() {
	if fn := e.obs.levelStart; fn != nil {
		level := e.level
		e.notify.push(func() { fn(level) })
	}
}
