package pong

// GameState is the process-wide screen state. The app shell owns transitions.
type GameState int

const (
	GameStateMenu GameState = iota
	GameStatePlaying
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case GameStateMenu:
		return "Menu"
	case GameStatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// PlayingState is the round state nested inside GameStatePlaying.
// The zero value is Paused.
type PlayingState int

const (
	PlayingStatePaused PlayingState = iota
	PlayingStatePlaying
)

// String returns a human-readable name for the state.
func (s PlayingState) String() string {
	switch s {
	case PlayingStatePaused:
		return "Paused"
	case PlayingStatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// States is the two-level state machine that gates which systems run.
type States struct {
	Game    GameState
	Playing PlayingState
}

// TogglePause flips between Paused and Playing.
func (s *States) TogglePause() {
	if s.Playing == PlayingStatePaused {
		s.Playing = PlayingStatePlaying
	} else {
		s.Playing = PlayingStatePaused
	}
}

// InPlay reports whether the court is open.
func (s States) InPlay() bool {
	return s.Game == GameStatePlaying
}

// Running reports whether the motion systems should run.
func (s States) Running() bool {
	return s.Game == GameStatePlaying && s.Playing == PlayingStatePlaying
}
