package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-menu/parameter"
)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not terminate")
	return nil
}

// TestOscillatorSine verifies sine samples stay in range and the length matches the duration
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(t, osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Fatalf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d invalid: %v", i, s)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave values
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(t, osc) {
		if s[0] != -1.0 && s[0] != 1.0 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
	}
}

// TestOscillatorDrainedReportsDone verifies the streamer contract after the last sample
func TestOscillatorDrainedReportsDone(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(10, 10*time.Millisecond, WaveSaw, rate)

	buf := make([][2]float64, 64)
	n, ok := osc.Stream(buf)
	if n != 10 || !ok {
		t.Fatalf("Expected 10 samples and ok, got %d %v", n, ok)
	}
	n, ok = osc.Stream(buf)
	if n != 0 || ok {
		t.Fatalf("Expected drained stream, got %d %v", n, ok)
	}
}

// TestEnvelopeShape verifies silence at the start of attack and near the end of release
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(t, env)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}

	// zero-frequency square holds at 1, the envelope is visible directly
	if samples[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("Attack midpoint should be 0.5, got %f", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain should be full, got %f", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Release midpoint should be 0.5, got %f", samples[90][0])
	}
}

// TestCueStreams verifies every cue terminates and zero volume is silent
func TestCueStreams(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)

	for _, cue := range []Cue{CueMove, CueAccept, CueCancel} {
		t.Run(cue.String(), func(t *testing.T) {
			loud := drain(t, GetSoundEffect(cue, 1, rate))
			if len(loud) == 0 {
				t.Fatal("Expected samples")
			}
			peak := 0.0
			for _, s := range loud {
				peak = max(peak, s[0], -s[0])
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Peak out of range: %f", peak)
			}

			for i, s := range drain(t, GetSoundEffect(cue, 0, rate)) {
				if s[0] != 0 || s[1] != 0 {
					t.Fatalf("Silent cue sample %d not zero: %v", i, s)
				}
			}
		})
	}

	if GetSoundEffect(Cue(99), 1, rate) != nil {
		t.Error("Unknown cue should have no stream")
	}
}
