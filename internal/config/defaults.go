package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in tuning. It matches
// defaults/jumper.yaml and is used when the embedded file cannot be parsed
// and as the base that partial YAML files are laid over.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Viewport: JumperViewport{
			Width:  400,
			Height: 600,
		},
		Physics: JumperPhysics{
			Gravity:     0.4,
			JumpImpulse: -13,
			MoveSpeed:   4,
		},
		Player: JumperPlayer{
			Width:  40,
			Height: 40,
		},
		Platforms: JumperPlatforms{
			Width:        70,
			Height:       15,
			StartWidth:   120,
			StartOffset:  50,
			FirstGap:     150,
			Spacing:      100,
			InitialCount: 8,
			MinCount:     8,
		},
		Scoring: JumperScoring{
			Reward: 10,
		},
		Sprites: JumperSprites{
			Size:           30,
			MinSpeed:       0.2,
			SpeedRange:     0.5,
			MinAmplitude:   10,
			AmplitudeRange: 20,
			PhaseStep:      0.02,
		},
		Bubbles: JumperBubbles{
			Count:           50,
			MinSize:         2,
			SizeRange:       4,
			MinSpeed:        1,
			SpeedRange:      2,
			MaxWobbleSpeed:  0.03,
			MaxWobbleAmount: 1,
		},
		Shop: JumperShop{
			AlertSeconds: 2,
			Items:        defaultShopItems(),
		},
	}
}

func defaultShopItems() []ShopItem {
	return []ShopItem{
		{ID: "fish", Name: "Fish", Price: 100, Emoji: "🐟", Glyph: "∝"},
		{ID: "dolphin", Name: "Dolphin", Price: 200, Emoji: "🐬", Glyph: "ↄ"},
		{ID: "turtle", Name: "Turtle", Price: 350, Emoji: "🐢", Glyph: "Ө"},
		{ID: "octopus", Name: "Octopus", Price: 500, Emoji: "🐙", Glyph: "Ѫ"},
		{ID: "whale", Name: "Whale", Price: 750, Emoji: "🐋", Glyph: "ω"},
		{ID: "shark", Name: "Shark", Price: 1000, Emoji: "🦈", Glyph: "⋀"},
		{ID: "mermaid", Name: "Mermaid", Price: 1500, Emoji: "🧜", Glyph: "§"},
	}
}
