package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/apples/internal/core"
	"github.com/vovakirdan/apples/internal/registry"
)

// maxFrameStep caps the simulated time of a single frame, in seconds.
const maxFrameStep = 0.25

// debugStater is implemented by games that can describe their internals.
type debugStater interface {
	DebugState() string
}

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	timer      *core.FrameTimer
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	gameOver   bool // Set when the game ended on its own
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		timer:      core.NewFrameTimer(core.SystemClock(), maxFrameStep),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.timer.Restart()
	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
	)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is scaled onto the grid, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.gameOver {
		return m, nil
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame, m.timer.Delta())
	m.gameState = result.State
	m.logStep(prev, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.gameOver = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// logStep records the state transitions of one frame.
func (m Model) logStep(prev core.GameState, result core.StepResult) {
	if result.Eaten > 0 && m.logger.GetLevel() <= log.DebugLevel {
		fields := []any{"eaten", result.State.Score}
		if ds, ok := m.game.(debugStater); ok {
			fields = append(fields, "state", ds.DebugState())
		}
		m.logger.Debug("apple eaten", fields...)
	}

	if result.BorderHit {
		if result.State.GameOver {
			m.logger.Info("border hit, game over", "eaten", prev.Score)
		} else {
			m.logger.Info("border hit, starting over", "eaten", prev.Score)
		}
	}

	if result.ResetDone {
		m.logger.Info("reset complete")
	}

	if result.State.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", result.State.Paused)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.gameOver {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// GameOver reports whether the game ended on its own rather than by a quit key.
func (m Model) GameOver() bool {
	return m.gameOver
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits or the game ends.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	reason := "quit"
	if fm, ok := finalModel.(Model); ok && fm.GameOver() {
		reason = "game over"
	}
	model.logger.Info("exit", "game", game.ID(), "reason", reason)
	return nil
}
