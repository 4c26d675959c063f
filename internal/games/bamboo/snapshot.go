package bamboo

import "math"

// Snapshot is a flat copy of the session state for determinism checks.
type Snapshot struct {
	Tick            uint64
	Resets          int
	State           StateKind
	Won             bool
	PaddleX         float64
	BallX, BallY    float64
	BallVX, BallVY  float64
	BlocksRemaining int
	BlockIDs        []EntityID
	RNGState        uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	ball := s.w.Ball()
	blocks := s.w.Blocks()
	ids := make([]EntityID, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	st := s.m.State()
	return Snapshot{
		Tick:            s.tick,
		Resets:          s.resets,
		State:           st.Kind,
		Won:             st.Outcome.Won,
		PaddleX:         s.w.Paddle().Pos.X,
		BallX:           ball.Pos.X,
		BallY:           ball.Pos.Y,
		BallVX:          ball.Velocity.X,
		BallVY:          ball.Velocity.Y,
		BlocksRemaining: len(blocks),
		BlockIDs:        ids,
		RNGState:        s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Resets) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)
	if snap.Won {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation

	for _, id := range snap.BlockIDs {
		h = h*31 + uint64(id)
	}

	h = h*31 + snap.RNGState

	return h
}
