package jumper

import (
	"github.com/vovakirdan/bubble-jump/internal/core"
)

// applyMovement resolves horizontal intent and keeps the player inside the field.
// Left wins when both directions are held.
func (s *Session) applyMovement(in core.InputFrame) {
	speed := s.cfg.Physics.MoveSpeed
	switch {
	case in.Has(core.ActionLeft):
		s.player.VX = -speed
		s.facing = FacingLeft
	case in.Has(core.ActionRight):
		s.player.VX = speed
		s.facing = FacingRight
	default:
		s.player.VX = 0
	}

	s.player.X += s.player.VX
	s.player.X = core.ClampF(s.player.X, 0, s.viewW-s.player.W)
}

// integrate applies gravity and moves the player vertically.
func (s *Session) integrate() {
	s.player.VY += s.cfg.Physics.Gravity
	s.player.Y += s.player.VY
}

// landsOn reports whether a falling player's feet are inside the platform
// band this tick with horizontal overlap.
func landsOn(pl Player, p Platform) bool {
	if pl.VY <= 0 {
		return false
	}
	bottom := pl.Bottom()
	if bottom <= p.Y || bottom >= p.Y+p.H {
		return false
	}
	return pl.Rect().OverlapsX(p.Rect())
}

// resolveLandings tests the player against every platform. All platforms are
// tested against the same pre-landing state and the last match in slice
// order is applied. Extra matches are reported in ev.Overlaps.
func (s *Session) resolveLandings(ev *core.Events) {
	landed := -1
	matches := 0
	for i := range s.platforms {
		if landsOn(s.player, s.platforms[i]) {
			landed = i
			matches++
		}
	}
	if landed < 0 {
		return
	}

	if matches > 1 {
		ev.Overlaps = matches - 1
		s.logger.Debug("overlapping platforms matched in one tick",
			"matches", matches, "applied", landed, "tick", s.tickCount)
	}

	p := &s.platforms[landed]
	s.player.Y = p.Y - s.player.H
	s.player.VY = s.cfg.Physics.JumpImpulse
	ev.Bounced = true

	if !p.Touched {
		p.Touched = true
		s.addScore(s.cfg.Scoring.Reward, ev)
	}
}

// addScore raises the score and the high score when it is beaten.
func (s *Session) addScore(points int, ev *core.Events) {
	if points <= 0 {
		return
	}
	s.score += points
	ev.Scored = true

	if s.score > s.highScore {
		s.highScore = s.score
		ev.NewHighScore = true
		if s.store != nil {
			if err := s.store.SetHighScore(s.highScore); err != nil {
				s.logger.Warn("failed to persist high score", "score", s.highScore, "error", err)
			}
		}
	}
}
