// Package tui provides the Bubble Tea shell around the pong simulation:
// menu, court and history screens, the tick loop, key handling and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameDelta caps the simulated time of one tick. A stalled terminal or a
// suspended process must not teleport the ball through a paddle.
const MaxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks, clamped to
// [0, MaxFrameDelta]. The first tick of a session (zero prev) advances nothing.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	return min(now.Sub(prev), MaxFrameDelta).Seconds()
}
