// Package audio synthesizes short procedural sound cues for game events.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/bubble-jump/internal/core"
)

// DefaultSampleRate is used when a Synth is created with a zero rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueBounce Cue = iota
	CueScore
	CueHighScore
	CuePurchase
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueScore:
		return "score"
	case CueHighScore:
		return "high_score"
	case CuePurchase:
		return "purchase"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CuesFor maps tick events to the cues that should play, loudest event last.
func CuesFor(ev core.Events) []Cue {
	var cues []Cue
	if ev.Bounced && !ev.Scored {
		cues = append(cues, CueBounce)
	}
	if ev.Scored {
		cues = append(cues, CueScore)
	}
	if ev.NewHighScore {
		cues = append(cues, CueHighScore)
	}
	if ev.GameOver {
		cues = append(cues, CueGameOver)
	}
	return cues
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator returns a finite streamer of the given wave. sweep bends the
// frequency linearly over time.
func NewOscillator(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		sweep:  sweep,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewSource(int64(freq) + 1)), //nolint:gosec // noise, not crypto
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = -1
			if o.phase < 0.5 {
				v = 1
			}
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies a linear attack and release to s.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Synth builds cue streamers at a fixed sample rate and master volume.
type Synth struct {
	Rate   beep.SampleRate
	Volume float64 // 0..1
}

// NewSynth creates a synth. A zero rate selects DefaultSampleRate.
func NewSynth(rate beep.SampleRate, volume float64) *Synth {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Synth{Rate: rate, Volume: core.ClampF(volume, 0, 1)}
}

func (s *Synth) tone(freq, sweep float64, d time.Duration, wave Wave) beep.Streamer {
	osc := NewOscillator(freq, sweep, d, wave, s.Rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, s.Rate)
}

// Streamer returns a fresh, finite streamer for the cue, or nil for an
// unknown cue.
func (s *Synth) Streamer(c Cue) beep.Streamer {
	var out beep.Streamer
	switch c {
	case CueBounce:
		// short upward chirp
		out = s.tone(330, 2400, 90*time.Millisecond, WaveTriangle)
	case CueScore:
		out = beep.Seq(
			s.tone(660, 0, 50*time.Millisecond, WaveSquare),
			s.tone(990, 0, 70*time.Millisecond, WaveSquare),
		)
		out = withVolume(out, 0.5)
	case CueHighScore:
		out = beep.Mix(
			beep.Seq(
				s.tone(523.25, 0, 80*time.Millisecond, WaveSine),
				s.tone(659.25, 0, 80*time.Millisecond, WaveSine),
				s.tone(783.99, 0, 160*time.Millisecond, WaveSine),
			),
			withVolume(s.tone(1046.5, 0, 320*time.Millisecond, WaveSine), 0.3),
		)
	case CuePurchase:
		out = beep.Seq(
			s.tone(987.77, 0, 60*time.Millisecond, WaveSquare),
			s.tone(1318.51, 0, 180*time.Millisecond, WaveSquare),
		)
		out = withVolume(out, 0.4)
	case CueGameOver:
		out = beep.Mix(
			s.tone(392, -500, 500*time.Millisecond, WaveTriangle),
			withVolume(s.tone(0, 0, 250*time.Millisecond, WaveNoise), 0.2),
		)
	default:
		return nil
	}
	return withVolume(out, s.Volume)
}
