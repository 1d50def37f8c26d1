package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// movePlayer applies the human movement intent to the left paddle.
// No intent means no movement.
func movePlayer(p *Paddle, intent core.Vec2, moving bool, speed, dt float64) {
	if !moving {
		return
	}
	p.Pos.Y = clampPaddleY(p.Pos.Y + intent.Y*speed*dt)
}

// moveAI steps the right paddle towards the ball's height at a fixed speed.
//
// The step is never shortened to the remaining distance, so a paddle close to
// the ball can hop across it by up to one step per tick. At equal height it
// does not move.
func moveAI(p *Paddle, ballY, speed, dt float64) {
	step := core.Signum(ballY-p.Pos.Y) * speed * dt
	p.Pos.Y = clampPaddleY(p.Pos.Y + step)
}

// moveBall integrates the ball, resolves wall and paddle bounces and emits a
// round end when the ball has left the court past a paddle.
func moveBall(w *World, dt float64, events *RoundEvents) {
	b := &w.Ball
	b.Pos = b.Pos.Add(b.Vel.Direction.Scale(b.Vel.Speed * dt))

	bounceWalls(b)
	collidePaddles(b, w.Paddles[:])

	// The winner is the side the ball did not get past
	switch {
	case b.Pos.X > CourtHalfWidth:
		events.Emit(RoundEnd{Winner: SideLeft})
	case b.Pos.X < -CourtHalfWidth:
		events.Emit(RoundEnd{Winner: SideRight})
	}
}
