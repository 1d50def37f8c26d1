package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRoundEventsDrain(t *testing.T) {
	var q RoundEvents
	if got := q.Drain(); got != nil {
		t.Errorf("Drain() on empty queue = %+v, expected nil", got)
	}

	q.Emit(RoundEnd{Winner: SideLeft})
	q.Emit(RoundEnd{Winner: SideRight})
	got := q.Drain()

	if len(got) != 2 || got[0].Winner != SideLeft || got[1].Winner != SideRight {
		t.Fatalf("Drain() = %+v, expected [Left Right]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after drain", q.Len())
	}

	// The drained slice must not alias the queue
	q.Emit(RoundEnd{Winner: SideRight})
	if got[0].Winner != SideLeft {
		t.Error("drained events were overwritten by a later Emit")
	}
}

func TestHandleRoundEndsScoresEveryEvent(t *testing.T) {
	w := spawnWorld(DefaultTuning())
	w.Ball.Pos = core.V(700, 10)
	w.Left().Pos.Y = 200
	var (
		score  Score
		states = States{Game: GameStatePlaying, Playing: PlayingStatePlaying}
		events RoundEvents
	)
	events.Emit(RoundEnd{Winner: SideLeft})
	events.Emit(RoundEnd{Winner: SideRight})

	ended := handleRoundEnds(w, &score, &states, &events, DefaultTuning().serveVelocity())

	if len(ended) != 2 {
		t.Fatalf("handled %d events, expected 2", len(ended))
	}
	if score != (Score{Player: 1, Computer: 1}) {
		t.Errorf("score = %+v", score)
	}
	if w.Ball.Pos != BallSpawn || w.Left().Pos != LeftPaddleSpawn {
		t.Errorf("positions not reset: ball %+v, left %+v", w.Ball.Pos, w.Left().Pos)
	}
	if states.Playing != PlayingStatePaused {
		t.Errorf("playing state = %s, expected Paused", states.Playing)
	}
}

func TestHandleRoundEndsWithoutEvents(t *testing.T) {
	w := spawnWorld(DefaultTuning())
	w.Ball.Pos = core.V(12, 34)
	var (
		score  Score
		states = States{Game: GameStatePlaying, Playing: PlayingStatePlaying}
		events RoundEvents
	)

	if ended := handleRoundEnds(w, &score, &states, &events, DefaultTuning().serveVelocity()); ended != nil {
		t.Errorf("handled %+v, expected nothing", ended)
	}
	if w.Ball.Pos != core.V(12, 34) || states.Playing != PlayingStatePlaying || !score.IsZero() {
		t.Error("state changed without a round end")
	}
}

func TestScoreAward(t *testing.T) {
	var s Score
	s.Award(SideLeft)
	s.Award(SideLeft)
	s.Award(SideRight)

	if s.Player != 2 || s.Computer != 1 {
		t.Errorf("score = %+v, expected 2-1", s)
	}
	if s.IsZero() {
		t.Error("IsZero() = true for a non-zero score")
	}
}
