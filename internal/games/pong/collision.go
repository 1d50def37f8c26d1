package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// bounceWalls reflects the ball off the top and bottom walls.
// Returns true if a bounce happened.
func bounceWalls(b *Ball) bool {
	if b.Pos.Y <= CourtHeight && b.Pos.Y >= -CourtHeight {
		return false
	}
	b.Pos.Y = core.Signum(b.Pos.Y) * CourtHeight
	b.Vel.Direction.Y = -b.Vel.Direction.Y
	return true
}

// bouncePaddle reflects the ball off p if their boxes overlap.
// Returns true if a bounce happened.
func bouncePaddle(b *Ball, p Paddle) bool {
	if !b.Bounds().Overlaps(p.Bounds()) {
		return false
	}

	// Push the ball out to the face on the side its centre is on
	push := PaddleWidth/2 + BallSize/2
	if b.Pos.X < p.Pos.X {
		b.Pos.X = p.Pos.X - push
	} else {
		b.Pos.X = p.Pos.X + push
	}

	prev := b.Vel.Direction
	dir := prev
	dir.X = -dir.X
	// Angle depends on where the ball meets the paddle
	dir.Y = core.ClampF((b.Pos.Y-p.Pos.Y)/DeflectRange, -MaxDeflect, MaxDeflect)
	b.Vel.Direction = dir.NormalizeOr(prev)
	return true
}

// collidePaddles bounces the ball off the first overlapping paddle.
// Paddles are checked in order and at most one bounce happens per call.
func collidePaddles(b *Ball, paddles []Paddle) (Side, bool) {
	for _, p := range paddles {
		if bouncePaddle(b, p) {
			return p.Side, true
		}
	}
	return 0, false
}
