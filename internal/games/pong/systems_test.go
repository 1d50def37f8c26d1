package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name   string
		startY float64
		intent core.Vec2
		moving bool
		dt     float64
		wantY  float64
	}{
		{"no intent", 0, core.V(0, 1), false, 0.5, 0},
		{"up", 0, core.V(0, 1), true, 0.1, 50},
		{"down", 0, core.V(0, -1), true, 0.25, -125},
		{"clamped at top", 240, core.V(0, 1), true, 1, PaddleLimit},
		{"clamped at bottom", -240, core.V(0, -1), true, 1, -PaddleLimit},
		{"zero intent", 30, core.V(0, 0), true, 1, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{Side: SideLeft, Pos: core.V(LeftPaddleSpawn.X, tc.startY)}
			movePlayer(&p, tc.intent, tc.moving, DefaultPaddleSpeed, tc.dt)
			if !approx(p.Pos.Y, tc.wantY) {
				t.Errorf("y = %v, expected %v", p.Pos.Y, tc.wantY)
			}
			if p.Pos.X != LeftPaddleSpawn.X {
				t.Errorf("x moved to %v", p.Pos.X)
			}
		})
	}
}

func TestMoveAIStep(t *testing.T) {
	tests := []struct {
		name   string
		startY float64
		ballY  float64
		wantY  float64
	}{
		{"towards ball above", 0, 100, 25},
		{"towards ball below", 0, -100, -25},
		{"equal height stays", 40, 40, 40},
		{"overshoots when close", 0, 10, 25},
		{"clamped at top", 240, 300, PaddleLimit},
		{"clamped at bottom", -240, -300, -PaddleLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{Side: SideRight, Pos: core.V(RightPaddleSpawn.X, tc.startY)}
			moveAI(&p, tc.ballY, DefaultAISpeed, 0.1)
			if !approx(p.Pos.Y, tc.wantY) {
				t.Errorf("y = %v, expected %v", p.Pos.Y, tc.wantY)
			}
		})
	}
}

func TestMoveAIConvergesAndHolds(t *testing.T) {
	// 200 u/s * 1/8 s = 25 per step: lands exactly on 100 after four ticks
	const (
		speed = 200.0
		dt    = 0.125
		ballY = 100.0
	)
	p := Paddle{Side: SideRight, Pos: RightPaddleSpawn}

	prev := p.Pos.Y
	for i := 0; i < 4; i++ {
		moveAI(&p, ballY, speed, dt)
		if p.Pos.Y <= prev {
			t.Fatalf("tick %d: y = %v did not increase from %v", i, p.Pos.Y, prev)
		}
		prev = p.Pos.Y
	}
	if p.Pos.Y != ballY {
		t.Fatalf("y = %v after 4 ticks, expected %v", p.Pos.Y, ballY)
	}

	for i := 0; i < 10; i++ {
		moveAI(&p, ballY, speed, dt)
		if p.Pos.Y != ballY {
			t.Fatalf("paddle left the ball height: y = %v", p.Pos.Y)
		}
	}
}

func TestMoveAIOvershootBounded(t *testing.T) {
	// With the default speed the step never divides the distance evenly,
	// so the paddle hops around the target but never further than one step.
	const dt = 1.0 / 60
	step := DefaultAISpeed * dt
	p := Paddle{Side: SideRight, Pos: RightPaddleSpawn}

	prev := p.Pos.Y
	reached := false
	for i := 0; i < 600; i++ {
		moveAI(&p, 100, DefaultAISpeed, dt)
		if !reached && p.Pos.Y < prev {
			t.Fatalf("tick %d: paddle moved away before reaching the ball", i)
		}
		if p.Pos.Y >= 100 {
			reached = true
		}
		if math.Abs(p.Pos.Y-100) > step+eps {
			if reached {
				t.Fatalf("tick %d: y = %v strayed more than one step from 100", i, p.Pos.Y)
			}
		}
		prev = p.Pos.Y
	}
	if !reached {
		t.Fatal("paddle never reached the ball height")
	}
}

func TestMoveBallIntegrates(t *testing.T) {
	w := spawnWorld(DefaultTuning())
	var events RoundEvents

	dir := w.Ball.Vel.Direction
	moveBall(w, 0.1, &events)

	want := dir.Scale(DefaultBallSpeed * 0.1)
	if !approx(w.Ball.Pos.X, want.X) || !approx(w.Ball.Pos.Y, want.Y) {
		t.Errorf("pos = %+v, expected %+v", w.Ball.Pos, want)
	}
	if events.Len() != 0 {
		t.Errorf("unexpected round end: %d queued", events.Len())
	}
}

func TestMoveBallWallBounceWithZeroDt(t *testing.T) {
	w := spawnWorld(DefaultTuning())
	w.Ball.Pos = core.V(0, 301)
	w.Ball.Vel.Direction = core.V(0, 1)
	var events RoundEvents

	moveBall(w, 0, &events)

	if w.Ball.Pos.Y != CourtHeight {
		t.Errorf("y = %v, expected %v", w.Ball.Pos.Y, CourtHeight)
	}
	if w.Ball.Vel.Direction.Y != -1 {
		t.Errorf("direction.y = %v, expected -1", w.Ball.Vel.Direction.Y)
	}
}

func TestMoveBallPaddleBounce(t *testing.T) {
	w := spawnWorld(DefaultTuning())
	w.Ball.Pos = core.V(w.Left().Pos.X+PaddleWidth/2, 0)
	w.Ball.Vel = Velocity{Direction: core.V(-1, 0), Speed: DefaultBallSpeed}
	var events RoundEvents

	moveBall(w, 0, &events)

	if w.Ball.Pos.X != w.Left().Pos.X+20 {
		t.Errorf("x = %v, expected %v", w.Ball.Pos.X, w.Left().Pos.X+20)
	}
	if w.Ball.Vel.Direction.X != 1 {
		t.Errorf("direction.x = %v, expected 1", w.Ball.Vel.Direction.X)
	}
	if events.Len() != 0 {
		t.Error("bounce should not end the round")
	}
}

func TestMoveBallRoundEnd(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		dirX   float64
		winner Side
	}{
		{"past the computer", 601, 1, SideLeft},
		{"past the player", -601, -1, SideRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := spawnWorld(DefaultTuning())
			// Out of paddle reach vertically
			w.Ball.Pos = core.V(tc.x, 200)
			w.Ball.Vel.Direction = core.V(tc.dirX, 0)
			var events RoundEvents

			moveBall(w, 0, &events)

			got := events.Drain()
			if len(got) != 1 || got[0].Winner != tc.winner {
				t.Fatalf("events = %+v, expected one RoundEnd{%s}", got, tc.winner)
			}
		})
	}
}

func TestMoveBallOnBoundaryIsNotOut(t *testing.T) {
	w := spawnWorld(DefaultTuning())
	w.Ball.Pos = core.V(CourtHalfWidth, 200)
	var events RoundEvents

	moveBall(w, 0, &events)
	if events.Len() != 0 {
		t.Error("x == 600 should not end the round")
	}
}
