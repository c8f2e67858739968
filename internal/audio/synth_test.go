package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/bubble-jump/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain streams s to exhaustion and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if v := smp[0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	waves := []Wave{WaveSine, WaveSquare, WaveTriangle, WaveNoise}
	for _, w := range waves {
		osc := NewOscillator(440, 0, 50*time.Millisecond, w, testRate)
		n, peak := drain(t, osc)
		if n != testRate.N(50*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", w, n, testRate.N(50*time.Millisecond))
		}
		if peak > 1.0 || peak == 0 {
			t.Errorf("wave %d: peak = %f, expected (0, 1]", w, peak)
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 0, 20*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %f, expected +-1", i, v)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, 0, d, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 at attack start", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %f, expected 1", mid)
	}
	if last := buf[n-1][0]; last >= 0.2 {
		t.Errorf("last sample = %f, expected released", last)
	}
}

func TestSynthCues(t *testing.T) {
	synth := NewSynth(testRate, 1)
	cues := []Cue{CueBounce, CueScore, CueHighScore, CuePurchase, CueGameOver}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := synth.Streamer(c)
			if s == nil {
				t.Fatal("Streamer() returned nil")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("cue produced no samples")
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
			if n > testRate.N(time.Second) {
				t.Errorf("cue lasts %d samples, expected under a second", n)
			}
		})
	}

	if synth.Streamer(Cue(99)) != nil {
		t.Error("unknown cue should return nil")
	}
}

func TestSynthMutedVolume(t *testing.T) {
	synth := NewSynth(testRate, 0)
	_, peak := drain(t, synth.Streamer(CueBounce))
	if peak != 0 {
		t.Errorf("muted synth peak = %f, expected 0", peak)
	}
}

func TestNewSynthDefaults(t *testing.T) {
	s := NewSynth(0, 3)
	if s.Rate != DefaultSampleRate {
		t.Errorf("Rate = %d, expected %d", s.Rate, DefaultSampleRate)
	}
	if s.Volume != 1 {
		t.Errorf("Volume = %f, expected clamp to 1", s.Volume)
	}
}

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name string
		ev   core.Events
		want []Cue
	}{
		{"nothing", core.Events{}, nil},
		{"plain bounce", core.Events{Bounced: true}, []Cue{CueBounce}},
		{"scoring bounce", core.Events{Bounced: true, Scored: true}, []Cue{CueScore}},
		{"record", core.Events{Bounced: true, Scored: true, NewHighScore: true}, []Cue{CueScore, CueHighScore}},
		{"game over", core.Events{GameOver: true}, []Cue{CueGameOver}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CuesFor(tc.ev)
			if len(got) != len(tc.want) {
				t.Fatalf("CuesFor() = %v, expected %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("cue %d = %v, expected %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestNewPlayerDisabledIsSilent(t *testing.T) {
	p := NewPlayer(false, 1, nil)
	if _, ok := p.(Silent); !ok {
		t.Fatalf("NewPlayer(false) = %T, expected Silent", p)
	}
	p.Play(CueBounce)
	p.Close()
}

func TestSpeakerUninitializedIsNoop(t *testing.T) {
	sp := NewSpeaker(NewSynth(testRate, 1), nil)
	sp.Play(CueScore)
	if sp.mixer.Len() != 0 {
		t.Error("uninitialized speaker should not queue cues")
	}
	sp.Close()
}
