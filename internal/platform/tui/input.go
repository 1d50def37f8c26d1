package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// inputState collects key presses between ticks and turns them into one
// core.InputFrame per tick.
type inputState struct {
	hold  *core.HoldTracker
	edges map[core.Action]bool // Just-pressed actions since the last frame
}

func newInputState(repeatDelay, window time.Duration) *inputState {
	return &inputState{
		hold:  core.NewHoldTracker(repeatDelay, window),
		edges: make(map[core.Action]bool),
	}
}

// press registers a key press. Auto-repeats of a held key are not edges.
func (s *inputState) press(a core.Action, now time.Time) {
	// Opposite directions cancel each other so a reversal takes effect at once
	switch a {
	case core.ActionUp:
		s.hold.Release(core.ActionDown)
	case core.ActionDown:
		s.hold.Release(core.ActionUp)
	}
	if s.hold.Press(a, now) {
		s.edges[a] = true
	}
}

// frame builds the input for a tick at now and consumes the pending edges.
func (s *inputState) frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a := range s.edges {
		f.Set(a)
		delete(s.edges, a)
	}

	up := s.hold.Held(core.ActionUp, now)
	down := s.hold.Held(core.ActionDown, now)
	switch {
	case up && !down:
		f.SetMovement(core.V(0, 1))
	case down && !up:
		f.SetMovement(core.V(0, -1))
	}
	return f
}

// reset drops every held key and pending edge.
func (s *inputState) reset() {
	s.hold.Reset()
	for a := range s.edges {
		delete(s.edges, a)
	}
}
