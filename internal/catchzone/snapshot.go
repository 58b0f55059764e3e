package catchzone

import (
	"time"

	"github.com/vovakirdan/catch-zone/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason says why a session ended.
type EndReason int

const (
	EndNone         EndReason = iota // Still running, or stopped explicitly
	EndHazardCaught                  // The catcher caught the hazard
	EndFruitMissed                   // Too many collectibles reached the floor
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndHazardCaught:
		return "hazard-caught"
	case EndFruitMissed:
		return "fruit-missed"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session state and the items in flight.
type Snapshot struct {
	Phase              Phase
	Score              int
	Level              int
	Misses             int
	Lane               core.Lane
	LevelTimeRemaining int           // Coarse ticks left in the current level
	Reason             EndReason     // Set once the session has ended
	Drop               time.Duration // Drop duration for items spawned now
	Items              []ItemView
}

// Active reports whether the session is running.
func (s Snapshot) Active() bool {
	return s.Phase == PhaseActive
}

// GameOver reports whether the session ended on a terminal condition.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseEnded && s.Reason != EndNone
}

// Result is the session-end payload.
type Result struct {
	Score  int
	Level  int
	Reason EndReason
}
