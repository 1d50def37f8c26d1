package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Court geometry. World units, origin at the court centre, Y up.
const (
	CourtHeight    = 300.0 // Vertical half-height; walls sit at ±CourtHeight
	CourtHalfWidth = 600.0 // Ball past ±CourtHalfWidth ends the round

	PaddleWidth  = 20.0
	PaddleHeight = 100.0
	BallSize     = 20.0

	// PaddleLimit bounds paddle centres so the paddle never crosses a wall.
	PaddleLimit = CourtHeight - PaddleHeight/2
)

// Paddle bounce response.
const (
	DeflectRange = PaddleHeight / 2 // Offset from paddle centre mapped to full deflection
	MaxDeflect   = 0.8              // Bound on the pre-normalization Y component
)

// Default speeds in world units per second.
const (
	DefaultBallSpeed   = 550.0
	DefaultPaddleSpeed = 500.0
	DefaultAISpeed     = 250.0
)

// Spawn positions.
var (
	BallSpawn        = core.V(0, 0)
	LeftPaddleSpawn  = core.V(-CourtHalfWidth, 0)
	RightPaddleSpawn = core.V(CourtHalfWidth, 0)
)

var (
	ballExtent   = core.V(BallSize, BallSize)
	paddleExtent = core.V(PaddleWidth, PaddleHeight)
)

// ServeDirection is the unit direction the ball takes at every serve.
func ServeDirection() core.Vec2 {
	return core.V(-1, 0.25).NormalizeOr(core.V(-1, 0))
}

// clampPaddleY keeps a paddle centre inside the court.
func clampPaddleY(y float64) float64 {
	return core.ClampF(y, -PaddleLimit, PaddleLimit)
}

// Tuning holds the speed constants of a simulation.
// They are fixed for the lifetime of a Simulation.
type Tuning struct {
	BallSpeed   float64
	PaddleSpeed float64
	AISpeed     float64
}

// DefaultTuning returns the classic speed constants.
func DefaultTuning() Tuning {
	return Tuning{
		BallSpeed:   DefaultBallSpeed,
		PaddleSpeed: DefaultPaddleSpeed,
		AISpeed:     DefaultAISpeed,
	}
}

// serveVelocity is the ball velocity at spawn and after every round.
func (t Tuning) serveVelocity() Velocity {
	return Velocity{Direction: ServeDirection(), Speed: t.BallSpeed}
}
