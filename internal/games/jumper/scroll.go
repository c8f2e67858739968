package jumper

// scroll keeps the player at or below the vertical midpoint by moving the
// world down, then recycles platforms that fell off the bottom.
func (s *Session) scroll() {
	mid := s.viewH / 2
	if s.player.Y < mid {
		diff := mid - s.player.Y
		s.player.Y = mid
		for i := range s.platforms {
			s.platforms[i].Y += diff
		}
	}
	s.recycle()
}

// recycle drops platforms below the field and refills to the minimum count.
func (s *Session) recycle() {
	valid := s.platforms[:0]
	for _, p := range s.platforms {
		if p.Y < s.viewH {
			valid = append(valid, p)
		}
	}
	s.platforms = valid
	s.refill()
}

// refill stacks new platforms above the topmost until MinCount are active.
func (s *Session) refill() {
	for len(s.platforms) < s.cfg.Platforms.MinCount {
		s.platforms = append(s.platforms, s.spawner.SpawnAbove(s.platforms, s.viewW))
	}
}
