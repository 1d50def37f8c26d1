package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Side identifies a paddle, and the winner of a round.
type Side int

const (
	SideLeft  Side = iota // Human player
	SideRight             // Computer
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Velocity is a unit direction plus a scalar speed.
type Velocity struct {
	Direction core.Vec2
	Speed     float64
}

// Ball is the single ball in play.
type Ball struct {
	Pos     core.Vec2
	Initial core.Vec2 // Spawn position, restored at round end
	Vel     Velocity
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.AABB {
	return core.BoxAround(b.Pos, ballExtent)
}

// Paddle is one of the two vertically moving paddles.
// Its x never changes after spawn.
type Paddle struct {
	Side    Side
	Pos     core.Vec2
	Initial core.Vec2
}

// Bounds returns the paddle's bounding box.
func (p Paddle) Bounds() core.AABB {
	return core.BoxAround(p.Pos, paddleExtent)
}

// World holds every entity of a playing session.
// Paddles are stored in collision order: Left first, then Right.
type World struct {
	Ball    Ball
	Paddles [2]Paddle
}

// Left returns the human-controlled paddle.
func (w *World) Left() *Paddle {
	return &w.Paddles[SideLeft]
}

// Right returns the computer-controlled paddle.
func (w *World) Right() *Paddle {
	return &w.Paddles[SideRight]
}

// spawnWorld creates the ball and both paddles at their spawn positions.
func spawnWorld(t Tuning) *World {
	return &World{
		Ball: Ball{
			Pos:     BallSpawn,
			Initial: BallSpawn,
			Vel:     t.serveVelocity(),
		},
		Paddles: [2]Paddle{
			{Side: SideLeft, Pos: LeftPaddleSpawn, Initial: LeftPaddleSpawn},
			{Side: SideRight, Pos: RightPaddleSpawn, Initial: RightPaddleSpawn},
		},
	}
}

// resetPositions moves every entity back to where it spawned.
func (w *World) resetPositions() {
	w.Ball.Pos = w.Ball.Initial
	for i := range w.Paddles {
		w.Paddles[i].Pos = w.Paddles[i].Initial
	}
}

// Score counts rounds won by each side. It outlives sessions.
type Score struct {
	Player   int
	Computer int
}

// Award credits a round to the winner.
func (s *Score) Award(winner Side) {
	switch winner {
	case SideLeft:
		s.Player++
	case SideRight:
		s.Computer++
	}
}

// IsZero reports whether no round has been scored.
func (s Score) IsZero() bool {
	return s.Player == 0 && s.Computer == 0
}
