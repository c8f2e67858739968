// Package config provides YAML-based tuning for the jumper game. Values are
// in world units (the 400x600 play field) and per-tick rates.
package config

import "errors"

// ErrInvalidConfig is returned by Validate for configurations that would
// break the simulation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// JumperConfig contains all tunable parameters of the game.
type JumperConfig struct {
	Viewport  JumperViewport  `yaml:"viewport"`
	Physics   JumperPhysics   `yaml:"physics"`
	Player    JumperPlayer    `yaml:"player"`
	Platforms JumperPlatforms `yaml:"platforms"`
	Scoring   JumperScoring   `yaml:"scoring"`
	Sprites   JumperSprites   `yaml:"sprites"`
	Bubbles   JumperBubbles   `yaml:"bubbles"`
	Shop      JumperShop      `yaml:"shop"`
}

// JumperViewport is the size of the simulated play field.
type JumperViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperPhysics defines per-tick motion constants.
type JumperPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // added to vy every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // vy after a landing (negative = up)
	MoveSpeed   float64 `yaml:"move_speed"`   // horizontal speed while a direction is held
}

// JumperPlayer defines the player hitbox.
type JumperPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperPlatforms controls generation and recycling.
type JumperPlatforms struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartWidth   float64 `yaml:"start_width"`
	StartOffset  float64 `yaml:"start_offset"` // start platform top = viewport height - offset
	FirstGap     float64 `yaml:"first_gap"`    // first generated platform = viewport height - gap
	Spacing      float64 `yaml:"spacing"`      // vertical distance between consecutive platforms
	InitialCount int     `yaml:"initial_count"`
	MinCount     int     `yaml:"min_count"`
}

// JumperScoring defines score rewards.
type JumperScoring struct {
	Reward int `yaml:"reward"` // points for the first touch of a platform
}

// JumperSprites defines the falling decorative sprites unlocked in the market.
type JumperSprites struct {
	Size           float64 `yaml:"size"`
	MinSpeed       float64 `yaml:"min_speed"`
	SpeedRange     float64 `yaml:"speed_range"`
	MinAmplitude   float64 `yaml:"min_amplitude"`
	AmplitudeRange float64 `yaml:"amplitude_range"`
	PhaseStep      float64 `yaml:"phase_step"`
}

// JumperBubbles defines the ambient background bubbles.
type JumperBubbles struct {
	Count           int     `yaml:"count"`
	MinSize         float64 `yaml:"min_size"`
	SizeRange       float64 `yaml:"size_range"`
	MinSpeed        float64 `yaml:"min_speed"`
	SpeedRange      float64 `yaml:"speed_range"`
	MaxWobbleSpeed  float64 `yaml:"max_wobble_speed"`
	MaxWobbleAmount float64 `yaml:"max_wobble_amount"`
}

// JumperShop defines the market catalog.
type JumperShop struct {
	AlertSeconds float64    `yaml:"alert_seconds"`
	Items        []ShopItem `yaml:"items"`
}

// ShopItem is one purchasable decoration.
type ShopItem struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
	Emoji string `yaml:"emoji"`
	Glyph string `yaml:"glyph"` // single-width rune drawn in the terminal
}

// GlyphRune returns the first rune of Glyph, or '*' when it is empty.
func (it ShopItem) GlyphRune() rune {
	for _, r := range it.Glyph {
		return r
	}
	return '*'
}
