// Package pong implements the simulation core of a one-player Pong against a
// scripted opponent. The human controls the left paddle, the computer the
// right one. The package is pure: no terminal, clock or storage access.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// TickResult reports what happened during one tick.
type TickResult struct {
	RoundsEnded   []RoundEnd // Rounds scored this tick, in order
	PauseToggled  bool       // The pause edge flipped PlayingState
	MenuRequested bool       // The escape edge asked the app shell for the menu
}

// Simulation owns the state machine, the entities of the current session,
// the round end queue and the score.
type Simulation struct {
	tuning Tuning
	states States
	world  *World // nil outside GameStatePlaying
	score  Score
	events RoundEvents
	tick   uint64
	rounds int // Rounds completed in the current session
}

// New creates a simulation in the menu with a zero score.
func New(t Tuning) *Simulation {
	return &Simulation{tuning: t}
}

// Tuning returns the speed constants in use.
func (s *Simulation) Tuning() Tuning {
	return s.tuning
}

// EnterPlaying opens a session: spawns the ball and paddles and starts paused.
// Entering while already playing is a no-op.
func (s *Simulation) EnterPlaying() {
	if s.states.Game == GameStatePlaying {
		return
	}
	s.states = States{Game: GameStatePlaying, Playing: PlayingStatePaused}
	s.world = spawnWorld(s.tuning)
	s.events = RoundEvents{}
	s.tick = 0
	s.rounds = 0
}

// ExitPlaying closes the session and despawns every entity. The score survives.
func (s *Simulation) ExitPlaying() {
	s.states = States{Game: GameStateMenu}
	s.world = nil
	s.events = RoundEvents{}
}

// Tick advances the simulation by dt seconds.
//
// Order: pause and escape edges, player paddle, AI paddle, ball, round ends.
// Nothing happens outside GameStatePlaying; the motion systems additionally
// need PlayingStatePlaying, while round ends are handled regardless so that
// a queued signal never leaks into a later tick.
func (s *Simulation) Tick(in core.InputFrame, dt float64) TickResult {
	var res TickResult
	if !s.states.InPlay() || s.world == nil {
		return res
	}

	if in.Has(core.ActionPause) {
		s.states.TogglePause()
		res.PauseToggled = true
	}
	if in.Has(core.ActionEscape) {
		res.MenuRequested = true
	}

	if s.states.Running() {
		s.tick++
		intent, moving := in.Intent()
		movePlayer(s.world.Left(), intent, moving, s.tuning.PaddleSpeed, dt)
		moveAI(s.world.Right(), s.world.Ball.Pos.Y, s.tuning.AISpeed, dt)
		moveBall(s.world, dt, &s.events)
	}

	res.RoundsEnded = handleRoundEnds(s.world, &s.score, &s.states, &s.events, s.tuning.serveVelocity())
	s.rounds += len(res.RoundsEnded)
	return res
}

// States returns the current state machine values.
func (s *Simulation) States() States {
	return s.states
}

// World returns the entities of the current session, or nil in the menu.
// Callers must treat it as read-only.
func (s *Simulation) World() *World {
	return s.world
}

// Score returns the current score.
func (s *Simulation) Score() Score {
	return s.score
}

// ResetScore zeroes both counters. This is the only way a score goes down.
func (s *Simulation) ResetScore() {
	s.score = Score{}
}

// Rounds returns the number of rounds completed in the current session.
func (s *Simulation) Rounds() int {
	return s.rounds
}

// Ticks returns the number of running ticks in the current session.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}
