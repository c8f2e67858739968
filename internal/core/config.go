package core

// RuntimeConfig is passed to the session at construction.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible session state.
type GameState struct {
	Score      int
	HighScore  int
	Started    bool
	Paused     bool
	GameOver   bool
	MarketOpen bool
}

// Events reports what happened during a single tick.
type Events struct {
	Bounced      bool // the player landed on a platform
	Scored       bool // a platform was touched for the first time
	NewHighScore bool // the high score was raised this tick
	GameOver     bool // the run ended this tick
	Started      bool // a new run began this tick
	Overlaps     int  // extra platforms that also matched the landing test
}

// StepResult is returned by every tick.
type StepResult struct {
	State  GameState
	Events Events
}
