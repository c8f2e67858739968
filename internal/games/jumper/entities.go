package jumper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bubble-jump/internal/core"
)

// Player is the bouncing character. Y grows downward; negative VY is upward.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
}

// Rect returns the player hitbox.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// Platform is a horizontal ledge the player can land on from above.
type Platform struct {
	X, Y    float64
	W, H    float64
	Touched bool // scored already; never reset for the platform's lifetime
	Start   bool // the wide platform the run begins on
}

// Rect returns the platform box.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Facing is the horizontal direction the player sprite looks.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Sprite is a decorative creature unlocked in the market. It drifts down the
// field in a sine wave and wraps to the top. It never interacts with play.
type Sprite struct {
	ItemID    string
	Glyph     rune
	X, Y      float64
	Size      float64
	Speed     float64 // fall per tick
	Amplitude float64 // horizontal swing in world units
	Angle     float64 // oscillation phase
}

// Update advances the sprite by one tick. x follows
// Amplitude*(1-cos(Angle)), so its per-tick change is Amplitude*sin(Angle)*phaseStep.
func (s *Sprite) Update(phaseStep, viewW, viewH float64, rng *rand.Rand) {
	s.Angle += phaseStep
	s.X += math.Sin(s.Angle) * s.Amplitude * phaseStep
	s.Y += s.Speed

	if s.Y > viewH+s.Size {
		s.Y = -s.Size
		s.X = rng.Float64() * math.Max(viewW-s.Size, 0)
	}
}

// Bubble is an ambient background particle rising through the field.
type Bubble struct {
	X, Y         float64
	Size         float64
	Speed        float64 // rise per tick
	Opacity      float64 // 0.2..0.7, picks the glyph
	WobbleSpeed  float64
	WobbleAmount float64
	Angle        float64
}

// DrawX returns the horizontal position including wobble.
func (b Bubble) DrawX() float64 {
	return b.X + math.Sin(b.Angle)*b.WobbleAmount
}

// Update moves the bubble up one tick, wrapping it below the field when it
// leaves the top.
func (b *Bubble) Update(viewW, viewH float64, rng *rand.Rand) {
	b.Y -= b.Speed
	b.Angle += b.WobbleSpeed
	if b.Y < -b.Size {
		b.Y = viewH + b.Size
		b.X = rng.Float64() * viewW
	}
}
