package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	synth       *Synth
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewSpeaker creates an uninitialized speaker player.
func NewSpeaker(synth *Synth, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Speaker{
		synth:  synth,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the audio device and starts the mixer.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	rate := s.synth.Rate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues the cue on the mixer.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := s.synth.Streamer(c)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
	s.logger.Debug("cue", "name", c)
}

// Close drops any queued cues.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// NewPlayer returns a Speaker when enabled and the device opens, and Silent
// otherwise. Device failures are logged, not returned.
func NewPlayer(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Silent{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sp := NewSpeaker(NewSynth(DefaultSampleRate, volume), logger)
	if err := sp.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return Silent{}
	}
	return sp
}
