package pong

// RoundEnd is emitted when the ball leaves the court.
type RoundEnd struct {
	Winner Side
}

// RoundEvents is the append-only round end queue owned by the tick driver.
type RoundEvents struct {
	pending []RoundEnd
}

// Emit queues a round end.
func (q *RoundEvents) Emit(e RoundEnd) {
	q.pending = append(q.pending, e)
}

// Len returns the number of queued round ends.
func (q *RoundEvents) Len() int {
	return len(q.pending)
}

// Drain returns every queued round end and empties the queue.
func (q *RoundEvents) Drain() []RoundEnd {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]RoundEnd, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// handleRoundEnds consumes every queued round end: it scores the round,
// puts the entities back on their spawn positions, re-serves the ball and
// pauses play. Returns the handled events.
func handleRoundEnds(w *World, score *Score, states *States, events *RoundEvents, serve Velocity) []RoundEnd {
	ended := events.Drain()
	for _, e := range ended {
		score.Award(e.Winner)
		w.resetPositions()
		w.Ball.Vel = serve
		states.Playing = PlayingStatePaused
	}
	return ended
}
