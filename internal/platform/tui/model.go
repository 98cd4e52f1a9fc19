package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpHeight is the number of rows below the board used by the help bar.
const helpHeight = 1

// Smallest grid derived from a terminal; smaller windows get the
// "window too small" overlay instead of a cramped board.
const (
	minDerivedGridW = 10
	minDerivedGridH = 10
)

// GameOptions holds the optional collaborators of a GameModel.
type GameOptions struct {
	Store  *storage.Store // nil disables score saving
	Theme  snake.Theme
	Player string
	Logger *log.Logger

	// Embedded models run inside a SessionModel: Back does not quit the program.
	Embedded bool

	// ScreenshotDir defaults to ~/.snake/screenshots.
	ScreenshotDir string
}

// GridForWindow returns the grid for a terminal of w x h characters,
// leaving room for the help bar.
func GridForWindow(w, h int) snake.Grid {
	g := snake.GridForScreen(w, h-helpHeight)
	return snake.NewGrid(core.Max(g.Width(), minDerivedGridW), core.Max(g.Height(), minDerivedGridH))
}

// NewSnakeGame creates a game sized by cfg: the configured grid when set,
// otherwise the largest grid that fits the screen.
func NewSnakeGame(cfg core.RuntimeConfig, logger *log.Logger) *snake.Game {
	grid := GridForWindow(cfg.ScreenW, cfg.ScreenH)
	if cfg.GridW > 0 && cfg.GridH > 0 {
		grid = snake.NewGrid(cfg.GridW, cfg.GridH)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []snake.Option{snake.WithSeed(seed)}
	if logger != nil {
		opts = append(opts, snake.WithLogger(logger))
	}
	return snake.NewGame(grid, opts...)
}

// GameModel is the Bubble Tea model for a snake game.
// The model owns presentation state only; the game owns all snake state.
type GameModel struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       GameOptions
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	logger     *log.Logger
	gen        uint64
	runID      string
	best       int
	paused     bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game *snake.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = snake.DefaultTickRate
	}
	if opts.Theme == (snake.Theme{}) {
		opts.Theme = snake.DefaultTheme()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		gen:        nextTickGen(),
		runID:      uuid.NewString(),
	}
	m.help.Width = cfg.ScreenW

	if opts.Store != nil {
		if best, err := opts.Store.HighScore(); err == nil {
			m.best = best
		} else {
			logger.Warn("could not load high score", "error", err)
		}
	}

	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Movement goes to the game right away so that quick turns between two
// ticks are queued in order; other actions are applied on the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case action.IsMovement():
		if !m.paused {
			m.game.QueueDirection(DirectionForAction(action))
		}
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The grid keeps its size; only the screen buffer follows the window.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies queued actions and advances the game by one move.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.config.TickRate, m.gen)
	restart := m.inputFrame.Has(core.ActionRestart)
	pause := m.inputFrame.Has(core.ActionPause)
	m.inputFrame.Clear()

	if restart {
		m.game.Reset()
		m.paused = false
		m.runID = uuid.NewString()
		return m, next
	}

	won := m.game.Won()
	if pause && !won {
		m.paused = !m.paused
	}
	if m.paused || won {
		return m, next
	}

	res := m.game.Move()
	switch {
	case res.Died:
		if res.FinalScore > 0 {
			m.saveRun(res.FinalScore, res.FinalLength, string(res.Cause))
		}
		m.runID = uuid.NewString()
	case res.Won:
		m.saveRun(res.Score, res.Length, storage.CauseWin)
	}
	m.best = core.Max(m.best, res.Score)

	return m, next
}

// saveRun records a finished run. Storage errors are logged, not fatal.
func (m *GameModel) saveRun(score, length int, cause string) {
	m.best = core.Max(m.best, score)
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		RunID:  m.runID,
		Player: m.opts.Player,
		Score:  score,
		Length: length,
		Cause:  cause,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("run saved", "run", m.runID, "score", score, "cause", cause)
}

// saveScreenshot writes the current screen to a text file and returns its path.
func (m *GameModel) saveScreenshot() (string, error) {
	m.render()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the current game state into the screen buffer.
func (m *GameModel) render() {
	snake.Render(m.screen, m.game.Snapshot(), snake.HUD{Best: m.best, Paused: m.paused}, m.opts.Theme)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.render()

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether the game is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// Best returns the best score known to this model.
func (m GameModel) Best() int {
	return m.best
}

// Run starts the Bubble Tea program for one game.
// It returns true if the player asked to go back to the menu.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	opts.Embedded = false
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
