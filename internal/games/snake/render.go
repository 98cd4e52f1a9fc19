package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // Score line + separator
	tileWidth = 2 // Terminal cells are roughly twice as tall as wide
)

// Theme holds the glyphs and colors used to draw the board.
// Glyphs are drawn tileWidth cells wide; shorter strings are padded with spaces.
type Theme struct {
	Head        string
	Body        string
	Apple       string
	HeadColor   core.Color
	BodyColor   core.Color
	AppleColor  core.Color
	BorderColor core.Color
	HUDColor    core.Color
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		Head:        "██",
		Body:        "▓▓",
		Apple:       "()",
		HeadColor:   core.ColorBrightGreen,
		BodyColor:   core.ColorGreen,
		AppleColor:  core.ColorBrightRed,
		BorderColor: core.ColorGray,
		HUDColor:    core.ColorBrightWhite,
	}
}

// HUD carries presentation-only values shown next to the score label.
type HUD struct {
	Best   int
	Paused bool
}

// GridForScreen returns the largest grid that fits a screen of w x h
// characters together with the HUD and the board border.
func GridForScreen(w, h int) Grid {
	return NewGrid(core.Max((w-2)/tileWidth, 0), core.Max(h-hudHeight-2, 0))
}

// Render draws the snapshot into dst.
func Render(dst *core.Screen, snap Snapshot, hud HUD, theme Theme) {
	dst.Clear()
	renderHUD(dst, snap, hud, theme)

	boardW := snap.Width*tileWidth + 2
	boardH := snap.Height + 2
	if boardW > dst.Width() || boardH+hudHeight > dst.Height() {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	board := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH)
	dst.DrawBox(board, theme.BorderColor)

	if snap.HasApple {
		drawTile(dst, board, snap.Apple, theme.Apple, theme.AppleColor)
	}
	for _, p := range snap.Body {
		drawTile(dst, board, p, theme.Body, theme.BodyColor)
	}
	drawTile(dst, board, snap.Head, theme.Head, theme.HeadColor)

	switch {
	case snap.Won:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d - R to restart", snap.Score))
	case hud.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the score label and separator.
func renderHUD(dst *core.Screen, snap Snapshot, hud HUD, theme Theme) {
	label := fmt.Sprintf(" Snake — Score: %d  Best: %d  Length: %d", snap.Score, core.Max(hud.Best, snap.Score), snap.Length)
	dst.DrawTextColored(0, 0, label, theme.HUDColor)
	dst.DrawHLine(0, 1, dst.Width(), '─', theme.BorderColor)
}

// drawTile draws glyph at grid position p inside the board border.
// Positions outside the grid are skipped.
func drawTile(dst *core.Screen, board core.Rect, p Position, glyph string, c core.Color) {
	if p.X < 0 || p.Y < 0 || p.X*tileWidth >= board.W-2 || p.Y >= board.H-2 {
		return
	}
	x := board.X + 1 + p.X*tileWidth
	y := board.Y + 1 + p.Y

	runes := []rune(glyph)
	for i := 0; i < tileWidth; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		dst.SetColored(x+i, y, r, c)
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
