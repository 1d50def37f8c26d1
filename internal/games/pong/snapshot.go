package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot contains the complete state of a simulation.
// Uses value types only for stable comparison and logging.
type Snapshot struct {
	Tick      uint64
	Game      GameState
	Playing   PlayingState
	BallX     float64
	BallY     float64
	BallDirX  float64
	BallDirY  float64
	BallSpeed float64
	LeftY     float64
	RightY    float64
	Player    int
	Computer  int
	Rounds    int
}

// Snapshot returns the current simulation state.
// Entity fields are zero while in the menu.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		Game:     s.states.Game,
		Playing:  s.states.Playing,
		Player:   s.score.Player,
		Computer: s.score.Computer,
		Rounds:   s.rounds,
	}
	if w := s.world; w != nil {
		snap.BallX = w.Ball.Pos.X
		snap.BallY = w.Ball.Pos.Y
		snap.BallDirX = w.Ball.Vel.Direction.X
		snap.BallDirY = w.Ball.Vel.Direction.Y
		snap.BallSpeed = w.Ball.Vel.Speed
		snap.LeftY = w.Left().Pos.Y
		snap.RightY = w.Right().Pos.Y
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot.
// Two simulations fed the same inputs produce the same hash.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}

	writeU64(snap.Tick)
	writeU64(uint64(snap.Game))    //nolint:gosec // enum values are non-negative
	writeU64(uint64(snap.Playing)) //nolint:gosec // enum values are non-negative
	for _, f := range []float64{
		snap.BallX, snap.BallY,
		snap.BallDirX, snap.BallDirY, snap.BallSpeed,
		snap.LeftY, snap.RightY,
	} {
		writeU64(math.Float64bits(f))
	}
	writeU64(uint64(max(0, snap.Player)))   //nolint:gosec // clamped non-negative
	writeU64(uint64(max(0, snap.Computer))) //nolint:gosec // clamped non-negative
	writeU64(uint64(max(0, snap.Rounds)))   //nolint:gosec // clamped non-negative
	return h.Sum64()
}
