// Package jumper implements a vertical platform jumper. The player bounces
// off platforms, the world scrolls down as the player climbs, and every
// platform pays a fixed reward the first time it is landed on.
//
// Session is the single owner of all game state. The host feeds it one
// input snapshot per tick through Step and draws the result of Frame.
package jumper

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bubble-jump/internal/config"
	"github.com/vovakirdan/bubble-jump/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the best score across process restarts.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// Session holds the state of one player's game across runs.
type Session struct {
	cfg     config.JumperConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	store   HighScoreStore

	viewW, viewH float64

	spawner *Spawner
	decoRng *rand.Rand // sprites and bubbles, separate from the platform stream

	player    Player
	facing    Facing
	platforms []Platform
	sprites   []Sprite
	bubbles   []Bubble

	phase      Phase
	marketOpen bool
	score      int
	highScore  int
	runID      string
	tickCount  int
}

// NewSession creates a session in the NotStarted phase. store and logger may
// be nil. A failing store yields a high score of zero.
func NewSession(cfg config.JumperConfig, rt core.RuntimeConfig, store HighScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		store:   store,
		viewW:   cfg.Viewport.Width,
		viewH:   cfg.Viewport.Height,
		spawner: NewSpawner(rt.Seed, cfg.Platforms),
		decoRng: rand.New(rand.NewSource(rt.Seed + 1)),
		facing:  FacingRight,
	}

	if store != nil {
		hs, err := store.HighScore()
		if err != nil {
			logger.Warn("failed to load high score, starting from zero", "error", err)
		} else if hs > 0 {
			s.highScore = hs
		}
	}

	s.initBubbles()
	s.reset()
	return s
}

// reset starts a fresh run: new platforms, player on the start platform,
// score zero. Decorations are kept but scattered.
func (s *Session) reset() {
	s.platforms = s.spawner.GenerateInitialSet(s.viewW, s.viewH)
	s.refill()

	start := s.platforms[0]
	s.player = Player{
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
	s.player.X = start.X + start.W/2 - s.player.W/2
	s.player.Y = start.Y - s.player.H
	s.facing = FacingRight

	s.score = 0
	s.tickCount = 0
	s.runID = uuid.NewString()

	for i := range s.sprites {
		s.sprites[i].X = s.decoRng.Float64() * math.Max(s.viewW-s.sprites[i].Size, 0)
		s.sprites[i].Y = s.decoRng.Float64() * s.viewH
	}
}

// Start begins the first run. It only succeeds from NotStarted.
func (s *Session) Start() bool {
	if s.phase != PhaseNotStarted {
		return false
	}
	s.reset()
	s.phase = PhaseRunning
	s.logger.Info("run started", "run", s.runID, "high_score", s.highScore)
	return true
}

// Restart begins a new run after game over.
func (s *Session) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}
	s.reset()
	s.phase = PhaseRunning
	s.logger.Info("run restarted", "run", s.runID)
	return true
}

// TogglePause switches between Running and Paused.
func (s *Session) TogglePause() bool {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// ToggleMarket opens or closes the market panel. Ignored before the first start.
func (s *Session) ToggleMarket() bool {
	if s.phase == PhaseNotStarted {
		return false
	}
	s.marketOpen = !s.marketOpen
	return true
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	var ev core.Events

	if in.Has(core.ActionConfirm) && s.Start() {
		ev.Started = true
	}
	if in.Has(core.ActionRestart) && s.Restart() {
		ev.Started = true
	}
	if in.Has(core.ActionMarket) {
		s.ToggleMarket()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	s.updateBubbles()
	if s.Started() {
		s.updateSprites()
	}

	// A run that began this tick is shown at its reset position first.
	if s.phase == PhaseRunning && !ev.Started {
		s.tickCount++
		s.applyMovement(in)
		s.integrate()
		s.resolveLandings(&ev)
		s.scroll()

		if s.player.Y > s.viewH {
			s.phase = PhaseGameOver
			ev.GameOver = true
			s.logger.Info("run over", "run", s.runID, "score", s.score, "ticks", s.tickCount)
		}
	}

	return core.StepResult{State: s.State(), Events: ev}
}

// Started reports whether the first run has begun.
func (s *Session) Started() bool {
	return s.phase != PhaseNotStarted
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// RunID identifies the current run.
func (s *Session) RunID() string {
	return s.runID
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// State returns the externally visible state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:      s.score,
		HighScore:  s.highScore,
		Started:    s.Started(),
		Paused:     s.phase == PhasePaused,
		GameOver:   s.phase == PhaseGameOver,
		MarketOpen: s.marketOpen,
	}
}

// AddDecoration adds a sprite for a market item. Repeated calls with the
// same item return the existing sprite and false.
func (s *Session) AddDecoration(itemID string, glyph rune) (Sprite, bool) {
	for _, sp := range s.sprites {
		if sp.ItemID == itemID {
			return sp, false
		}
	}

	sc := s.cfg.Sprites
	sp := Sprite{
		ItemID:    itemID,
		Glyph:     glyph,
		Size:      sc.Size,
		X:         s.decoRng.Float64() * math.Max(s.viewW-sc.Size, 0),
		Y:         s.decoRng.Float64() * s.viewH,
		Speed:     s.decoRng.Float64()*sc.SpeedRange + sc.MinSpeed,
		Amplitude: s.decoRng.Float64()*sc.AmplitudeRange + sc.MinAmplitude,
		Angle:     s.decoRng.Float64() * 2 * math.Pi,
	}
	s.sprites = append(s.sprites, sp)
	s.logger.Debug("decoration added", "item", itemID, "count", len(s.sprites))
	return sp, true
}

func (s *Session) updateSprites() {
	for i := range s.sprites {
		s.sprites[i].Update(s.cfg.Sprites.PhaseStep, s.viewW, s.viewH, s.decoRng)
	}
}

func (s *Session) initBubbles() {
	bc := s.cfg.Bubbles
	s.bubbles = make([]Bubble, bc.Count)
	for i := range s.bubbles {
		s.bubbles[i] = Bubble{
			X:            s.decoRng.Float64() * s.viewW,
			Y:            s.viewH + s.decoRng.Float64()*s.viewH,
			Size:         s.decoRng.Float64()*bc.SizeRange + bc.MinSize,
			Speed:        s.decoRng.Float64()*bc.SpeedRange + bc.MinSpeed,
			Opacity:      s.decoRng.Float64()*0.5 + 0.2,
			WobbleSpeed:  s.decoRng.Float64() * bc.MaxWobbleSpeed,
			WobbleAmount: s.decoRng.Float64() * bc.MaxWobbleAmount,
			Angle:        s.decoRng.Float64() * 2 * math.Pi,
		}
	}
}

func (s *Session) updateBubbles() {
	for i := range s.bubbles {
		s.bubbles[i].Update(s.viewW, s.viewH, s.decoRng)
	}
}

// Frame is a copy of everything the host needs to draw one tick.
type Frame struct {
	Player    Player
	Facing    Facing
	Platforms []Platform
	Sprites   []Sprite
	Bubbles   []Bubble
	State     core.GameState
	ViewW     float64
	ViewH     float64
}

// Frame returns a render snapshot. The slices are copies.
func (s *Session) Frame() Frame {
	return Frame{
		Player:    s.player,
		Facing:    s.facing,
		Platforms: append([]Platform(nil), s.platforms...),
		Sprites:   append([]Sprite(nil), s.sprites...),
		Bubbles:   append([]Bubble(nil), s.bubbles...),
		State:     s.State(),
		ViewW:     s.viewW,
		ViewH:     s.viewH,
	}
}
