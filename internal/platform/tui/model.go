package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipe-bird/internal/core"
	"github.com/vovakirdan/pipe-bird/internal/game"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     *game.Game
	screen   *core.Screen
	input    *core.InputQueue
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	lastTick time.Time
	lastMode game.Mode
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gameCfg := g.Config()

	return Model{
		game:     g,
		screen:   core.NewScreen(gameCfg.Screen.Width, gameCfg.Screen.Height),
		input:    core.NewInputQueue(core.DefaultQueueSize),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
		logger:   logger,
		lastMode: g.Mode(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key for the next tick. Ctrl+C bypasses the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.logger.Debug("force quit")
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Push(m.keys.Action(msg))
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed float64
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	frame := core.Frame{
		ElapsedMs: elapsed,
		Action:    m.input.Pop(),
		Screen:    m.screen,
	}
	m.game.Tick(&frame)
	m.lastMode = logTransition(m.logger, m.game, m.lastMode)

	if frame.Quit {
		m.logger.Debug("quit requested", "mode", m.game.Mode())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := RenderScreen(m.screen)
	if m.game.Mode() != game.ModePlaying {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Game returns the game driven by this model.
func (m Model) Game() *game.Game {
	return m.game
}

// Screen returns the buffer the game draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// IsQuitting returns true once the game or the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// logTransition logs mode changes and returns the current mode.
func logTransition(logger *log.Logger, g *game.Game, last game.Mode) game.Mode {
	mode := g.Mode()
	if mode == last {
		return last
	}
	logger.Debug("mode changed", "from", last, "to", mode)
	if mode == game.ModeEnd {
		logger.Info("game over", "score", g.Score())
	}
	return mode
}

// Run starts the Bubble Tea program for the given game and blocks until it exits.
func Run(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
