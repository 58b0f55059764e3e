package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catch-zone/internal/catchzone"
	"github.com/vovakirdan/catch-zone/internal/core"
	"github.com/vovakirdan/catch-zone/internal/pose"
)

const maxFeedLines = 4

// Model is the Bubble Tea model hosting one engine.
type Model struct {
	engine   *catchzone.Engine
	bridge   *EventBridge
	vocab    *pose.Vocabulary
	keys     KeyMap
	help     help.Model
	timeBar  progress.Model
	logger   *log.Logger
	interval time.Duration

	// Catcher sprite position in lanes, eased toward the engine's lane
	spring   harmonica.Spring
	catcherX float64
	catcherV float64

	width    int
	height   int
	feed     []string
	result   *catchzone.Result
	quitting bool
}

// NewModel creates a model for engine and registers it as the engine's observer.
func NewModel(engine *catchzone.Engine, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	interval := rt.FrameInterval()
	fps := int(time.Second / interval)

	bridge := NewEventBridge(64)
	bridge.Attach(engine)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	h := help.New()
	h.ShowAll = false

	cfg := engine.Config()
	return Model{
		engine:   engine,
		bridge:   bridge,
		vocab:    pose.NewVocabulary(cfg.Vocabulary),
		keys:     DefaultKeyMap(),
		help:     h,
		timeBar:  bar,
		logger:   logger,
		interval: interval,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.7),
		catcherX: float64(cfg.Session.StartLane),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
}

// Init starts the session and the redraw loop.
func (m Model) Init() tea.Cmd {
	m.engine.Start()
	return tea.Batch(tickCmd(m.interval), m.bridge.Wait())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		target := float64(m.engine.State().Lane)
		m.catcherX, m.catcherV = m.spring.Update(m.catcherX, m.catcherV, target)
		return m, tickCmd(m.interval)

	case ScoreMsg:
		if msg.Score > 0 {
			m.pushFeed(fmt.Sprintf("score %d", msg.Score))
		}
		return m, m.bridge.Wait()

	case MissMsg:
		if msg.Misses > 0 {
			m.pushFeed(fmt.Sprintf("miss %d/%d", msg.Misses, m.engine.Config().Session.MaxMisses))
		}
		return m, m.bridge.Wait()

	case LevelCompleteMsg:
		m.pushFeed(fmt.Sprintf("level %d complete", msg.Level))
		return m, m.bridge.Wait()

	case LevelStartMsg:
		m.pushFeed(fmt.Sprintf("level %d: drop %s", msg.Level, m.engine.State().Drop))
		return m, m.bridge.Wait()

	case LevelMsg, LaneMsg:
		return m, m.bridge.Wait()

	case SessionEndMsg:
		res := msg.Result
		m.result = &res
		m.logger.Info("session over", "score", res.Score, "level", res.Level, "reason", res.Reason)
		return m, m.bridge.Wait()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.engine.Stop()
		m.bridge.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if !m.engine.State().Active() {
			m.result = nil
			m.feed = nil
			m.engine.Start()
		}
		return m, nil
	}

	if lane, ok := m.keys.Lane(msg); ok {
		m.engine.SubmitInput(m.label(lane))
	}
	return m, nil
}

// label returns the first vocabulary token for lane, so key presses travel
// the same path as classifier labels.
func (m Model) label(lane core.Lane) string {
	if tokens := m.vocab.Tokens(lane); len(tokens) > 0 {
		return tokens[0]
	}
	return strings.ToLower(lane.String())
}

func (m *Model) pushFeed(line string) {
	m.feed = append(m.feed, line)
	if len(m.feed) > maxFeedLines {
		m.feed = m.feed[len(m.feed)-maxFeedLines:]
	}
}

// saveScreenshot writes the current view to ~/.catchzone/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".catchzone", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("catchzone_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.View()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.engine.State()
	cfg := m.engine.Config()
	rows, laneW := boardSize(m.width, m.height)

	bar := m.timeBar
	bar.Width = core.LaneCount*laneW + core.LaneCount - 1 - 5
	pct := float64(s.LevelTimeRemaining) / float64(cfg.Session.LevelSeconds)

	var sb strings.Builder
	sb.WriteString(renderHUD(s, cfg.Session.MaxMisses))
	sb.WriteString("\n")
	sb.WriteString(bar.ViewAs(core.ClampF(pct, 0, 1)))
	sb.WriteString(hudStyle.Render(fmt.Sprintf(" %3ds", s.LevelTimeRemaining)))
	sb.WriteString("\n")
	sb.WriteString(renderBoard(s, m.catcherX, rows, laneW, cfg.Catch.Threshold))
	sb.WriteString("\n")

	if m.result != nil {
		sb.WriteString(renderGameOver(*m.result))
		sb.WriteString("\n")
	}
	for _, line := range m.feed {
		sb.WriteString(feedStyle.Render(line))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program hosting engine.
func Run(engine *catchzone.Engine, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(engine, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.bridge.Close()
	engine.Stop()
	return err
}
