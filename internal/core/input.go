package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move paddle up
	ActionDown           // S, J, Down arrow - move paddle down
	ActionPause          // Space, P - toggle pause
	ActionEscape         // Esc - leave the court / quit from menu
	ActionConfirm        // Enter - confirm selection in menu
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionEscape:
		return "Escape"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the normalized input for one simulation tick.
//
// Actions holds edge-triggered actions (just pressed this tick).
// Movement is the level-triggered paddle intent and is only meaningful
// while Moving is true.
type InputFrame struct {
	Actions  map[Action]bool
	Movement Vec2
	Moving   bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as just pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetMovement records a held movement intent.
func (f *InputFrame) SetMovement(v Vec2) {
	f.Movement = v
	f.Moving = true
}

// Intent returns the movement intent and whether one is present.
func (f InputFrame) Intent() (Vec2, bool) {
	return f.Movement, f.Moving
}

// Clear resets all actions and the movement intent for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Movement = Vec2{}
	f.Moving = false
}

// HoldTracker turns a stream of key presses into held/just-pressed state.
//
// Terminals report presses (and auto-repeats) but never releases. After the
// first press the terminal stays silent for its repeat delay, then repeats
// quickly. An action therefore counts as held for the repeat delay after
// its first press, and for the shorter window after every repeat.
type HoldTracker struct {
	delay  time.Duration
	window time.Duration
	keys   map[Action]holdState
}

type holdState struct {
	last     time.Time
	repeated bool // A repeat arrived since the first press
}

// NewHoldTracker creates a tracker. delay covers the gap between a first
// press and its first auto-repeat; window covers the gap between repeats.
func NewHoldTracker(delay, window time.Duration) *HoldTracker {
	return &HoldTracker{
		delay:  max(delay, window),
		window: window,
		keys:   make(map[Action]holdState),
	}
}

// Press registers a press of a at now.
// It returns true when a was not already held, i.e. this press is an edge.
func (h *HoldTracker) Press(a Action, now time.Time) bool {
	edge := !h.Held(a, now)
	h.keys[a] = holdState{last: now, repeated: !edge}
	return edge
}

// Held reports whether a is considered held at now.
func (h *HoldTracker) Held(a Action, now time.Time) bool {
	st, ok := h.keys[a]
	if !ok {
		return false
	}
	limit := h.delay
	if st.repeated {
		limit = h.window
	}
	return now.Sub(st.last) <= limit
}

// Release forgets any held state for a.
func (h *HoldTracker) Release(a Action) {
	delete(h.keys, a)
}

// Reset forgets all held actions.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}

// RepeatDelay returns how long a first press is held without repeats.
func (h *HoldTracker) RepeatDelay() time.Duration {
	return h.delay
}

// Window returns the hold window between repeats.
func (h *HoldTracker) Window() time.Duration {
	return h.window
}
