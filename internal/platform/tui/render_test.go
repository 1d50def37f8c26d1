package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestRenderScreenKeepsGeometry(t *testing.T) {
	scr := core.NewScreen(12, 3)
	scr.DrawText(0, 0, "Player - 0")
	scr.DrawHLine(0, 1, 12, pong.WallChar, core.ColorGray)
	scr.SetColored(5, 2, pong.BallChar, core.ColorBrightYellow)

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")

	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d is %d cells wide, expected 12", i, w)
		}
	}
	if !strings.Contains(lines[0], "Player - 0") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], string(pong.BallChar)) {
		t.Errorf("ball missing from line 2: %q", lines[2])
	}
}

func TestColorANSI(t *testing.T) {
	if core.ColorDefault.ANSI() != "" {
		t.Error("default colour should not set a foreground")
	}
	for _, c := range []core.Color{core.ColorGray, core.ColorBrightCyan, core.ColorBrightRed, core.ColorBrightYellow} {
		if c.ANSI() == "" {
			t.Errorf("colour %d has no ANSI code", c)
		}
	}
}
