package jumper

import (
	"math"
	"testing"

	"github.com/vovakirdan/bubble-jump/internal/config"
	"github.com/vovakirdan/bubble-jump/internal/core"
)

func newTestSession(seed int64) *Session {
	return NewSession(config.DefaultJumperConfig(), core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}, nil, nil)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestLandingOnUntouchedPlatform(t *testing.T) {
	s := newTestSession(1)
	s.platforms = []Platform{{X: 100, Y: 400, W: 70, H: 15}}
	s.player = Player{X: 110, Y: 362, VY: 5, W: 40, H: 40} // bottom = 402

	var ev core.Events
	s.resolveLandings(&ev)

	if s.player.Y != 360 {
		t.Errorf("player y = %f, expected snap to 360", s.player.Y)
	}
	if s.player.VY != -13 {
		t.Errorf("vy = %f, expected jump impulse -13", s.player.VY)
	}
	if !s.platforms[0].Touched {
		t.Error("platform should be touched")
	}
	if s.score != 10 {
		t.Errorf("score = %d, expected 10", s.score)
	}
	if !ev.Bounced || !ev.Scored {
		t.Errorf("events = %+v, expected bounce and score", ev)
	}
}

func TestLandingOnTouchedPlatformDoesNotScore(t *testing.T) {
	s := newTestSession(1)
	s.platforms = []Platform{{X: 100, Y: 400, W: 70, H: 15, Touched: true}}
	s.player = Player{X: 110, Y: 362, VY: 5, W: 40, H: 40}

	var ev core.Events
	s.resolveLandings(&ev)

	if !ev.Bounced {
		t.Error("touched platforms still bounce")
	}
	if ev.Scored || s.score != 0 {
		t.Errorf("touched platform scored: score=%d", s.score)
	}
}

func TestLandingPredicate(t *testing.T) {
	p := Platform{X: 100, Y: 400, W: 70, H: 15}

	tests := []struct {
		name   string
		player Player
		want   bool
	}{
		{"falling into band", Player{X: 110, Y: 362, VY: 5, W: 40, H: 40}, true},
		{"moving up", Player{X: 110, Y: 362, VY: -5, W: 40, H: 40}, false},
		{"standing still", Player{X: 110, Y: 362, VY: 0, W: 40, H: 40}, false},
		{"bottom exactly at top", Player{X: 110, Y: 360, VY: 5, W: 40, H: 40}, false},
		{"bottom exactly at band end", Player{X: 110, Y: 375, VY: 5, W: 40, H: 40}, false},
		{"below band", Player{X: 110, Y: 380, VY: 5, W: 40, H: 40}, false},
		{"touching left edge", Player{X: 60, Y: 362, VY: 5, W: 40, H: 40}, false},
		{"touching right edge", Player{X: 170, Y: 362, VY: 5, W: 40, H: 40}, false},
		{"one unit of overlap", Player{X: 169, Y: 362, VY: 5, W: 40, H: 40}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := landsOn(tc.player, p); got != tc.want {
				t.Errorf("landsOn() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestOverlappingPlatformsLastWins(t *testing.T) {
	s := newTestSession(1)
	s.platforms = []Platform{
		{X: 100, Y: 400, W: 70, H: 15},
		{X: 100, Y: 395, W: 70, H: 15},
	}
	s.player = Player{X: 110, Y: 362, VY: 5, W: 40, H: 40} // bottom 402 is inside both bands

	var ev core.Events
	s.resolveLandings(&ev)

	if s.player.Y != 355 {
		t.Errorf("player y = %f, expected snap onto the last match (355)", s.player.Y)
	}
	if ev.Overlaps != 1 {
		t.Errorf("Overlaps = %d, expected 1", ev.Overlaps)
	}
	if s.platforms[0].Touched || !s.platforms[1].Touched {
		t.Error("only the applied platform should be touched")
	}
	if s.score != 10 {
		t.Errorf("score = %d, expected one reward", s.score)
	}
}

func TestHorizontalMovementAndClamp(t *testing.T) {
	tests := []struct {
		name    string
		startX  float64
		in      core.InputFrame
		wantX   float64
		wantVX  float64
		wantFac Facing
	}{
		{"left", 100, input(core.ActionLeft), 96, -4, FacingLeft},
		{"right", 100, input(core.ActionRight), 104, 4, FacingRight},
		{"none", 100, input(), 100, 0, FacingRight},
		{"left beats right", 100, input(core.ActionLeft, core.ActionRight), 96, -4, FacingLeft},
		{"clamped at left wall", 2, input(core.ActionLeft), 0, -4, FacingLeft},
		{"clamped at right wall", 358, input(core.ActionRight), 360, 4, FacingRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(1)
			s.player.X = tc.startX
			s.applyMovement(tc.in)

			if s.player.X != tc.wantX {
				t.Errorf("x = %f, expected %f", s.player.X, tc.wantX)
			}
			if s.player.VX != tc.wantVX {
				t.Errorf("vx = %f, expected %f", s.player.VX, tc.wantVX)
			}
			if s.facing != tc.wantFac {
				t.Errorf("facing = %d, expected %d", s.facing, tc.wantFac)
			}
		})
	}
}

func TestGravityIsUnconditional(t *testing.T) {
	s := newTestSession(1)
	s.player.Y = 100
	s.player.VY = -13

	s.integrate()

	if math.Abs(s.player.VY-(-12.6)) > 1e-9 {
		t.Errorf("vy = %f, expected -12.6", s.player.VY)
	}
	if math.Abs(s.player.Y-87.4) > 1e-9 {
		t.Errorf("y = %f, expected 87.4", s.player.Y)
	}
}

type memStore struct {
	value   int
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) HighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.value, nil
}

func (m *memStore) SetHighScore(score int) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = score
	return nil
}

func TestHighScoreTracksScore(t *testing.T) {
	store := &memStore{value: 15}
	s := NewSession(config.DefaultJumperConfig(), core.RuntimeConfig{Seed: 1}, store, nil)

	if s.highScore != 15 {
		t.Fatalf("high score = %d, expected persisted 15", s.highScore)
	}

	var ev core.Events
	s.addScore(10, &ev)
	if ev.NewHighScore || store.saves != 0 {
		t.Error("10 does not beat 15")
	}

	ev = core.Events{}
	s.addScore(10, &ev)
	if !ev.NewHighScore {
		t.Error("20 beats 15")
	}
	if s.highScore != 20 || store.value != 20 {
		t.Errorf("high score = %d, stored = %d, expected 20", s.highScore, store.value)
	}
}
