package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.GridW, cfg.GridH = 20, 15
	cfg.Seed = 7
	return cfg
}

func newTestModel(t *testing.T, opts GameOptions) (GameModel, *snake.Game) {
	t.Helper()
	cfg := testConfig()
	game := NewSnakeGame(cfg, nil)
	return NewGameModel(game, cfg, opts), game
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	require.NotNil(t, cmd, "every tick schedules the next one")
	return m
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey("a"), core.ActionLeft},
		{runeKey("w"), core.ActionUp},
		{runeKey("d"), core.ActionRight},
		{runeKey("s"), core.ActionDown},
		{runeKey("h"), core.ActionLeft},
		{runeKey("k"), core.ActionUp},
		{runeKey("l"), core.ActionRight},
		{runeKey("j"), core.ActionDown},
		{runeKey("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey("r"), core.ActionRestart},
		{runeKey("b"), core.ActionBack},
		{runeKey("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{runeKey("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			require.Equal(t, tc.expected, keys.Action(tc.msg))
		})
	}
}

func TestDirectionForAction(t *testing.T) {
	require.Equal(t, snake.DirLeft, DirectionForAction(core.ActionLeft))
	require.Equal(t, snake.DirUp, DirectionForAction(core.ActionUp))
	require.Equal(t, snake.DirRight, DirectionForAction(core.ActionRight))
	require.Equal(t, snake.DirDown, DirectionForAction(core.ActionDown))
	require.Equal(t, snake.DirNone, DirectionForAction(core.ActionPause))
}

func TestGridForWindow(t *testing.T) {
	g := GridForWindow(80, 24)
	require.Equal(t, 39, g.Width())
	require.Equal(t, 19, g.Height())

	small := GridForWindow(20, 8)
	require.Equal(t, minDerivedGridW, small.Width())
	require.Equal(t, minDerivedGridH, small.Height())
}

func TestNewSnakeGameUsesConfiguredGrid(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.GridW, cfg.GridH = 12, 7

	game := NewSnakeGame(cfg, nil)
	require.Equal(t, 12, game.Grid().Width())
	require.Equal(t, 7, game.Grid().Height())
}

func TestGameModelQueuesMovementImmediately(t *testing.T) {
	m, game := newTestModel(t, GameOptions{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Nil(t, cmd)
	m, _ = update(t, m, runeKey("w"))

	require.Equal(t, []snake.Direction{snake.DirUp, snake.DirLeft}, game.Snapshot().Pending)
	require.False(t, m.Paused())
}

func TestGameModelTickMovesGame(t *testing.T) {
	m, game := newTestModel(t, GameOptions{})

	m = tick(t, m)
	require.Equal(t, uint64(1), game.Snapshot().Tick)

	// Ticks scheduled by another model are ignored.
	m, cmd := update(t, m, TickMsg{Gen: m.gen + 1000})
	require.Nil(t, cmd)
	require.Equal(t, uint64(1), game.Snapshot().Tick)
}

func TestGameModelPause(t *testing.T) {
	m, game := newTestModel(t, GameOptions{})

	m, _ = update(t, m, runeKey("p"))
	m = tick(t, m)
	require.True(t, m.Paused())
	require.Zero(t, game.Snapshot().Tick)

	// Steering is ignored while paused.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Empty(t, game.Snapshot().Pending)

	m = tick(t, m)
	require.Zero(t, game.Snapshot().Tick)
	require.Contains(t, m.View(), "Paused")

	m, _ = update(t, m, runeKey("p"))
	m = tick(t, m)
	require.False(t, m.Paused())
	require.Equal(t, uint64(1), game.Snapshot().Tick)
}

func TestGameModelRestart(t *testing.T) {
	m, game := newTestModel(t, GameOptions{})
	start := game.Snapshot().Head

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	require.NotEqual(t, start, game.Snapshot().Head)

	firstRun := m.runID
	m, _ = update(t, m, runeKey("r"))
	m = tick(t, m)

	snap := game.Snapshot()
	require.Equal(t, start, snap.Head)
	require.Equal(t, snake.InitialLength, snap.Length)
	require.Zero(t, snap.Score)
	require.NotEqual(t, firstRun, m.runID)
}

func TestGameModelSavesFinishedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg := testConfig()
	cfg.GridW, cfg.GridH = 10, 10
	game := NewSnakeGame(cfg, nil)
	m := NewGameModel(game, cfg, GameOptions{Store: store, Player: "tester"})

	var scores []storage.ScoreEntry
	for i := 0; i < 20000 && len(scores) == 0; i++ {
		game.QueueDirection(snake.Steer(game.Snapshot()))
		m = tick(t, m)
		if i%50 == 0 {
			scores, err = store.TopScores(10)
			require.NoError(t, err)
		}
	}

	require.NotEmpty(t, scores, "autopilot should finish a run with points")
	require.Equal(t, "tester", scores[0].Player)
	require.NotEmpty(t, scores[0].RunID)
	require.Positive(t, scores[0].Score)
	require.GreaterOrEqual(t, m.Best(), scores[0].Score)
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _ := newTestModel(t, GameOptions{Embedded: true})
	m, cmd := update(t, m, runeKey("b"))
	require.True(t, m.BackToMenu())
	require.Nil(t, cmd, "embedded models leave quitting to the session")

	standalone, _ := newTestModel(t, GameOptions{})
	standalone, cmd = update(t, standalone, runeKey("b"))
	require.True(t, standalone.BackToMenu())
	require.NotNil(t, cmd)

	quitter, _ := newTestModel(t, GameOptions{})
	quitter, cmd = update(t, quitter, runeKey("q"))
	require.True(t, quitter.IsQuitting())
	require.NotNil(t, cmd)
	require.Empty(t, quitter.View())
}

func TestGameModelResizeKeepsGrid(t *testing.T) {
	m, game := newTestModel(t, GameOptions{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	require.Equal(t, 20, game.Grid().Width())
	require.Equal(t, 15, game.Grid().Height())
	require.Equal(t, 120, m.screen.Width())
	require.Equal(t, 50-helpHeight, m.screen.Height())
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, GameOptions{ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "snake_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	require.Contains(t, string(data), "Score: 0")
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, GameOptions{})
	view := m.View()
	require.Contains(t, view, "Score: 0")
	require.Contains(t, view, "pause")
}
