package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-zone/internal/catchzone"
	"github.com/vovakirdan/catch-zone/internal/core"
)

// Engine notifications as Bubble Tea messages.
type (
	ScoreMsg         struct{ Score int }
	LevelMsg         struct{ Level, Remaining int }
	MissMsg          struct{ Misses int }
	LaneMsg          struct{ Lane core.Lane }
	LevelCompleteMsg struct{ Level int }
	LevelStartMsg    struct{ Level int }
	SessionEndMsg    struct{ Result catchzone.Result }
)

// EventBridge carries engine notifications, which fire on scheduler
// goroutines, into the Bubble Tea program. Sends never block: when the
// buffer is full the oldest message is dropped.
type EventBridge struct {
	events   chan tea.Msg
	done     chan struct{}
	doneOnce sync.Once
}

// NewEventBridge creates a bridge. size below 1 uses 64.
func NewEventBridge(size int) *EventBridge {
	if size < 1 {
		size = 64
	}
	return &EventBridge{
		events: make(chan tea.Msg, size),
		done:   make(chan struct{}),
	}
}

// Attach registers the bridge as the engine's observer for every
// notification except per-frame item updates, which the view polls.
func (b *EventBridge) Attach(e *catchzone.Engine) {
	e.OnScoreChange(func(score int) { b.Send(ScoreMsg{Score: score}) })
	e.OnLevelChange(func(level, remaining int) { b.Send(LevelMsg{Level: level, Remaining: remaining}) })
	e.OnMissCountChange(func(misses int) { b.Send(MissMsg{Misses: misses}) })
	e.OnLaneChange(func(lane core.Lane) { b.Send(LaneMsg{Lane: lane}) })
	e.OnLevelComplete(func(level int) { b.Send(LevelCompleteMsg{Level: level}) })
	e.OnLevelStart(func(level int) { b.Send(LevelStartMsg{Level: level}) })
	e.OnSessionEnd(func(r catchzone.Result) { b.Send(SessionEndMsg{Result: r}) })
}

// Send queues a message.
func (b *EventBridge) Send(msg tea.Msg) {
	select {
	case <-b.done:
		return
	default:
	}

	select {
	case b.events <- msg:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-b.events:
		default:
		}
		select {
		case b.events <- msg:
		default:
		}
	}
}

// Events returns the receive side of the bridge.
func (b *EventBridge) Events() <-chan tea.Msg {
	return b.events
}

// Wait returns a command that delivers the next message, or nil once the
// bridge is closed.
func (b *EventBridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// Close stops delivery. Safe to call multiple times.
func (b *EventBridge) Close() {
	b.doneOnce.Do(func() {
		close(b.done)
	})
}
