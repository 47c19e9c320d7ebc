package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/galton/parameter"
)

var testRate = beep.SampleRate(parameter.AudioSampleRate)

// drain streams s to completion or until limit samples, returning the count and the absolute peak
func drain(s beep.Streamer, limit int) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for n < limit {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			peak = math.Max(peak, math.Abs(buf[i][1]))
		}
		n += k
		if !ok || k == 0 {
			break
		}
	}
	return n, peak
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	n, peak := drain(osc, 1<<20)

	if want := testRate.N(100 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak > 1.0 || peak < 0.99 {
		t.Errorf("Expected unit amplitude, got %f", peak)
	}
}

func TestOscillatorSinePhase(t *testing.T) {
	// 441 Hz at 44.1 kHz is 100 samples per period
	osc := NewOscillator(441, 10*time.Millisecond, WaveSine, testRate)
	buf := make([][2]float64, 100)
	osc.Stream(buf)

	if math.Abs(buf[0][0]) > 1e-9 {
		t.Errorf("Expected sine to start at 0, got %f", buf[0][0])
	}
	if math.Abs(buf[25][0]-1) > 1e-9 {
		t.Errorf("Expected peak at quarter period, got %f", buf[25][0])
	}
	if buf[25][0] != buf[25][1] {
		t.Error("Expected identical left and right channels")
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant 1
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, testRate)

	total := testRate.N(d)
	buf := make([][2]float64, total)
	n, _ := env.Stream(buf)
	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if mid := buf[total/2][0]; mid != 1 {
		t.Errorf("Expected full sustain, got %f", mid)
	}
	if last := buf[total-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("Expected release to end near silence, got %f", last)
	}
}

func TestLandSound(t *testing.T) {
	n, peak := drain(NewLandSound(1, 0.5, testRate), 1<<20)

	if want := testRate.N(parameter.LandSoundDuration); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak <= 0 || peak > 0.5+1e-9 {
		t.Errorf("Expected peak in (0, 0.5], got %f", peak)
	}
}

func TestLandSoundSilentAtZeroVolume(t *testing.T) {
	_, peak := drain(NewLandSound(3, 0, testRate), 1<<20)
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}

func TestSemitone(t *testing.T) {
	if got := semitone(440, 12); math.Abs(got-880) > 1e-9 {
		t.Errorf("Expected 880, got %f", got)
	}
	if got := semitone(440, 0); got != 440 {
		t.Errorf("Expected 440, got %f", got)
	}
}

func TestChimeSound(t *testing.T) {
	want := testRate.N(parameter.ChimeNote1Duration) + testRate.N(parameter.ChimeNote2Duration)
	n, peak := drain(NewChimeSound(1, testRate), want*2)

	if n < want {
		t.Errorf("Expected at least %d samples, got %d", want, n)
	}
	if peak <= 0 {
		t.Error("Expected audible chime")
	}
}
