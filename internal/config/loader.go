package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const jumperConfigFile = "jumper.yaml"

// LoadJumper loads the game configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadJumper(customPath string) (JumperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseJumper(data)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return JumperConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(jumperConfigFile),
		filepath.Join("configs", jumperConfigFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseJumper(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parseJumper(defaultJumperYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultJumperConfig(), nil
	}
	return cfg, nil
}

// parseJumper unmarshals data over the hard-coded defaults.
func parseJumper(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config location, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c JumperConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Width > c.Viewport.Width:
		return fmt.Errorf("%w: player wider than viewport", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative", ErrInvalidConfig)
	case c.Platforms.Width <= 0 || c.Platforms.Height <= 0:
		return fmt.Errorf("%w: platform size must be positive", ErrInvalidConfig)
	case c.Platforms.Width > c.Viewport.Width || c.Platforms.StartWidth > c.Viewport.Width:
		return fmt.Errorf("%w: platform wider than viewport", ErrInvalidConfig)
	case c.Platforms.StartWidth <= 0:
		return fmt.Errorf("%w: start_width must be positive", ErrInvalidConfig)
	case c.Platforms.Spacing <= 0:
		return fmt.Errorf("%w: spacing must be positive", ErrInvalidConfig)
	case c.Platforms.MinCount < 1:
		return fmt.Errorf("%w: min_count must be at least 1", ErrInvalidConfig)
	case c.Platforms.InitialCount < 0:
		return fmt.Errorf("%w: initial_count must not be negative", ErrInvalidConfig)
	case c.Scoring.Reward < 0:
		return fmt.Errorf("%w: reward must not be negative", ErrInvalidConfig)
	case c.Sprites.Size <= 0:
		return fmt.Errorf("%w: sprite size must be positive", ErrInvalidConfig)
	case c.Bubbles.Count < 0:
		return fmt.Errorf("%w: bubble count must not be negative", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Shop.Items))
	for _, it := range c.Shop.Items {
		if it.ID == "" {
			return fmt.Errorf("%w: shop item without id", ErrInvalidConfig)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate shop item %q", ErrInvalidConfig, it.ID)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: shop item %q has negative price", ErrInvalidConfig, it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}
