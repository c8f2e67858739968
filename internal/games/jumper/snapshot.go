package jumper

import "math"

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Tick          int
	Phase         Phase
	Score         int
	HighScore     int
	PlayerX       float64
	PlayerY       float64
	PlayerVY      float64
	PlatformCount int
	TouchedCount  int
	PlatformData  []float64 // x, y, w per platform in slice order
}

// Snapshot returns the current simulation snapshot. Decorations are excluded.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.tickCount,
		Phase:         s.phase,
		Score:         s.score,
		HighScore:     s.highScore,
		PlayerX:       s.player.X,
		PlayerY:       s.player.Y,
		PlayerVY:      s.player.VY,
		PlatformCount: len(s.platforms),
		PlatformData:  make([]float64, 0, len(s.platforms)*3),
	}
	for _, p := range s.platforms {
		if p.Touched {
			snap.TouchedCount++
		}
		snap.PlatformData = append(snap.PlatformData, p.X, p.Y, p.W)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)          //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVY)
	h = h*31 + uint64(snap.PlatformCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TouchedCount)  //#nosec G115 -- hash computation

	for _, v := range snap.PlatformData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
