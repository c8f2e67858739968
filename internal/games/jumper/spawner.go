package jumper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bubble-jump/internal/config"
)

// Spawner produces platforms at random horizontal positions.
type Spawner struct {
	rng *rand.Rand
	cfg config.JumperPlatforms
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, cfg config.JumperPlatforms) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// SpawnPlatform creates an untouched platform at height y. x is sampled
// uniformly from [0, viewW - defaultWidth], even when width overrides the
// default.
func (s *Spawner) SpawnPlatform(viewW, y float64, width ...float64) Platform {
	w := s.cfg.Width
	if len(width) > 0 {
		w = width[0]
	}
	span := math.Max(viewW-s.cfg.Width, 0)
	return Platform{
		X: s.rng.Float64() * span,
		Y: y,
		W: w,
		H: s.cfg.Height,
	}
}

// GenerateInitialSet builds a fresh platform field: a wide start platform
// centered near the bottom, then InitialCount platforms stacked Spacing apart
// above it.
func (s *Spawner) GenerateInitialSet(viewW, viewH float64) []Platform {
	platforms := make([]Platform, 0, s.cfg.InitialCount+1)
	platforms = append(platforms, Platform{
		X:     viewW/2 - s.cfg.StartWidth/2,
		Y:     viewH - s.cfg.StartOffset,
		W:     s.cfg.StartWidth,
		H:     s.cfg.Height,
		Start: true,
	})

	for i := 0; i < s.cfg.InitialCount; i++ {
		y := viewH - s.cfg.FirstGap - float64(i)*s.cfg.Spacing
		platforms = append(platforms, s.SpawnPlatform(viewW, y))
	}
	return platforms
}

// SpawnAbove creates a platform Spacing above the highest one in platforms.
// With no platforms it spawns at the top edge.
func (s *Spawner) SpawnAbove(platforms []Platform, viewW float64) Platform {
	if len(platforms) == 0 {
		return s.SpawnPlatform(viewW, 0)
	}
	top := platforms[0].Y
	for _, p := range platforms[1:] {
		if p.Y < top {
			top = p.Y
		}
	}
	return s.SpawnPlatform(viewW, top-s.cfg.Spacing)
}
