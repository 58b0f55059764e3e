package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catch-zone/internal/catchzone"
	"github.com/vovakirdan/catch-zone/internal/clock/clocktest"
	"github.com/vovakirdan/catch-zone/internal/config"
	"github.com/vovakirdan/catch-zone/internal/core"
)

// fixedRand makes every spawn a center-lane collectible.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestModel(t *testing.T) (Model, *catchzone.Engine, *clocktest.Manual) {
	t.Helper()
	clk := clocktest.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 7}
	e, err := catchzone.New(config.Default(), rt, clk)
	if err != nil {
		t.Fatalf("catchzone.New() error: %v", err)
	}
	e.SetRand(fixedRand(0.5))
	m := NewModel(e, rt, nil)
	m.Init()
	return m, e, clk
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartsSession(t *testing.T) {
	_, e, _ := newTestModel(t)
	if !e.State().Active() {
		t.Fatal("Init should start the session")
	}
}

func TestModelKeysMoveCatcher(t *testing.T) {
	m, e, _ := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if e.State().Lane != core.LaneLeft {
		t.Errorf("Expected LEFT, got %v", e.State().Lane)
	}
	m = update(t, m, runeKey('d'))
	if e.State().Lane != core.LaneRight {
		t.Errorf("Expected RIGHT, got %v", e.State().Lane)
	}
	update(t, m, runeKey('2'))
	if e.State().Lane != core.LaneCenter {
		t.Errorf("Expected CENTER, got %v", e.State().Lane)
	}
}

func TestModelLabelUsesVocabulary(t *testing.T) {
	m, _, _ := newTestModel(t)
	if got := m.label(core.LaneRight); got != "right" {
		t.Errorf("label(RIGHT) = %q, want right", got)
	}
}

func TestModelSpringEasesCatcher(t *testing.T) {
	m, e, _ := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	start := m.catcherX
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if m.catcherX <= start {
		t.Errorf("Catcher did not move toward RIGHT: %v -> %v", start, m.catcherX)
	}
	for i := 0; i < 300; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if want := float64(e.State().Lane); m.catcherX < want-0.05 || m.catcherX > want+0.05 {
		t.Errorf("Catcher settled at %v, want about %v", m.catcherX, want)
	}
}

func TestModelSessionEndAndRestart(t *testing.T) {
	m, e, _ := newTestModel(t)

	e.Stop()
	m = update(t, m, SessionEndMsg{Result: catchzone.Result{Score: 300, Level: 2, Reason: catchzone.EndFruitMissed}})
	if m.result == nil {
		t.Fatal("Expected result to be recorded")
	}
	if view := m.View(); !strings.Contains(view, "GAME OVER") {
		t.Error("View should show the game over banner")
	}

	m = update(t, m, runeKey('r'))
	if m.result != nil || !e.State().Active() {
		t.Error("Restart should clear the result and start a new session")
	}
}

func TestModelRestartIgnoredWhileActive(t *testing.T) {
	m, e, clk := newTestModel(t)
	clk.Advance(3 * time.Second)
	before := e.State().LevelTimeRemaining

	update(t, m, runeKey('r'))
	if got := e.State().LevelTimeRemaining; got != before {
		t.Errorf("Restart during play reset the level timer: %d -> %d", before, got)
	}
}

func TestModelFeed(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = update(t, m, ScoreMsg{Score: 0})
	if len(m.feed) != 0 {
		t.Errorf("Initial zero score should not be logged: %v", m.feed)
	}
	for i := 1; i <= 6; i++ {
		m = update(t, m, ScoreMsg{Score: i * 100})
	}
	if len(m.feed) != maxFeedLines || m.feed[len(m.feed)-1] != "score 600" {
		t.Errorf("Unexpected feed %v", m.feed)
	}
}

func TestModelQuit(t *testing.T) {
	m, e, _ := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if e.State().Active() {
		t.Error("Quit should stop the session")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m, _, clk := newTestModel(t)
	clk.Advance(time.Second)

	view := m.View()
	for _, want := range []string{"CATCH ZONE", "SCORE", "LEVEL 1", "MISSES 0/2", catcherToken} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}
