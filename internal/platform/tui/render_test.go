package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'X', core.ColorBrightGreen)
	s.SetColored(3, 0, 'Y', core.ColorBrightGreen)
	s.DrawText(0, 1, "snake!")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}

	// Styles may add escape codes, but the text content must survive.
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "XY") {
		t.Errorf("Row 0 = %q, expected it to contain \"ab\" and \"XY\"", lines[0])
	}
	if !strings.Contains(lines[1], "snake!") {
		t.Errorf("Row 1 = %q, expected it to contain \"snake!\"", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("styleFor(unknown).Render() = %q, expected default style", got)
	}
}
