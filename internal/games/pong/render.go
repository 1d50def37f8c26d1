package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
	WallChar   = '─'
)

// Colours of the court elements
const (
	colorLines  = core.ColorGray
	colorPlayer = core.ColorBrightCyan
	colorCPU    = core.ColorBrightRed
	colorBall   = core.ColorBrightYellow
)

// viewport maps world coordinates onto screen cells.
// Row 0 holds the scores and the last row holds the key hints.
type viewport struct {
	left, right float64 // World x shown at the first and last column
	top, bottom int     // Rows of the top and bottom walls
	width       int
}

func newViewport(w, h int) viewport {
	edge := CourtHalfWidth + PaddleWidth
	return viewport{
		left:   -edge,
		right:  edge,
		top:    1,
		bottom: max(2, h-2),
		width:  w,
	}
}

func (v viewport) col(x float64) int {
	t := (x - v.left) / (v.right - v.left)
	return int(math.Round(t * float64(v.width-1)))
}

func (v viewport) row(y float64) int {
	t := (CourtHeight - y) / (2 * CourtHeight)
	return v.top + int(math.Round(t*float64(v.bottom-v.top)))
}

// Render draws the current session into dst. Nothing is drawn in the menu.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()
	w := s.world
	if w == nil {
		return
	}

	vp := newViewport(dst.Width(), dst.Height())

	// Court lines
	dst.DrawHLine(0, vp.top, dst.Width(), WallChar, colorLines)
	dst.DrawHLine(0, vp.bottom, dst.Width(), WallChar, colorLines)
	centerX := vp.col(0)
	for y := vp.top + 1; y < vp.bottom; y += 2 {
		dst.SetColored(centerX, y, NetChar, colorLines)
	}

	drawPaddle(dst, vp, *w.Left(), colorPlayer)
	drawPaddle(dst, vp, *w.Right(), colorCPU)

	// The ball is drawn even past the paddles so the miss is visible
	ballRow := core.Clamp(vp.row(w.Ball.Pos.Y), vp.top+1, vp.bottom-1)
	dst.SetColored(vp.col(w.Ball.Pos.X), ballRow, BallChar, colorBall)

	// Scores
	playerText := fmt.Sprintf("Player - %d", s.score.Player)
	computerText := fmt.Sprintf("Computer - %d", s.score.Computer)
	dst.DrawTextColored(centerX-len(playerText)-4, 0, playerText, colorPlayer)
	dst.DrawTextColored(centerX+4, 0, computerText, colorCPU)

	// Hints
	if dst.Height() > vp.bottom+1 {
		dst.DrawText(1, vp.bottom+1, "Play/Pause (space)")
		hint := "Menu (esc)"
		dst.DrawText(dst.Width()-len(hint)-1, vp.bottom+1, hint)
	}

	if s.states.Playing == PlayingStatePaused {
		drawCenteredMessage(dst, "PAUSED", "Press space to play")
	}
}

// drawPaddle fills every row the paddle covers.
func drawPaddle(dst *core.Screen, vp viewport, p Paddle, c core.Color) {
	x := vp.col(p.Pos.X)
	from := core.Clamp(vp.row(p.Pos.Y+PaddleHeight/2), vp.top+1, vp.bottom-1)
	to := core.Clamp(vp.row(p.Pos.Y-PaddleHeight/2), vp.top+1, vp.bottom-1)
	dst.DrawVLine(x, from, to-from+1, PaddleChar, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
