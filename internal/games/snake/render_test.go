package snake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGridForScreen(t *testing.T) {
	g := GridForScreen(80, 24)
	require.Equal(t, 39, g.Width())
	require.Equal(t, 20, g.Height())

	// The board always fits the screen it was derived from.
	boardW := g.Width()*tileWidth + 2
	boardH := g.Height() + 2 + hudHeight
	require.LessOrEqual(t, boardW, 80)
	require.LessOrEqual(t, boardH, 24)

	tiny := GridForScreen(1, 1)
	require.Zero(t, tiny.Width())
	require.Zero(t, tiny.Height())
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(10, 10)
	placeApple(g, Position{X: 1, Y: 1})
	snap := g.Snapshot()

	screen := core.NewScreen(40, 20)
	Render(screen, snap, HUD{Best: 30}, DefaultTheme())

	require.Contains(t, screen.Row(0), "Score: 0")
	require.Contains(t, screen.Row(0), "Best: 30")
	require.Contains(t, screen.Row(0), "Length: 5")

	// Board is 22 wide and centered: border at x=9, first tile column at x=10.
	left, top := 10, hudHeight+1
	require.Equal(t, '┌', screen.Get(left-1, top-1))

	headX := left + snap.Head.X*tileWidth
	headY := top + snap.Head.Y
	require.Equal(t, '█', screen.Get(headX, headY))
	require.Equal(t, core.ColorBrightGreen, screen.GetCell(headX, headY).Color)

	tail := snap.Body[len(snap.Body)-1]
	require.Equal(t, '▓', screen.Get(left+tail.X*tileWidth, top+tail.Y))

	require.Equal(t, '(', screen.Get(left+1*tileWidth, top+1))
	require.Equal(t, ')', screen.Get(left+1*tileWidth+1, top+1))
}

func TestRenderWindowTooSmall(t *testing.T) {
	g := newTestGame(30, 30)
	screen := core.NewScreen(30, 12)

	Render(screen, g.Snapshot(), HUD{}, DefaultTheme())

	require.Contains(t, screen.String(), "Window too small")
	require.Contains(t, screen.String(), "Need 62x34")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(10, 10)
	screen := core.NewScreen(40, 20)

	Render(screen, g.Snapshot(), HUD{Paused: true}, DefaultTheme())
	require.Contains(t, screen.String(), "Paused")

	snap := g.Snapshot()
	snap.Won = true
	snap.Score = 80
	Render(screen, snap, HUD{Paused: true}, DefaultTheme())
	out := screen.String()
	require.Contains(t, out, "You Win!")
	require.Contains(t, out, "Score: 80 - R to restart")
	require.False(t, strings.Contains(out, "Press P to continue"), "win overlay takes precedence over pause")
}
