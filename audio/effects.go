package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-menu/parameter"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waves map a phase in [0, 1) to a sample in [-1, 1]
var waves = [...]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64) float64 { return 2*p - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

type oscillator struct {
	shape func(float64) float64
	step  float64
	phase float64
	left  int
}

// NewOscillator creates a finite mono streamer of the given wave, copied to
// both channels
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape := waves[WaveSine]
	if int(wave) >= 0 && int(wave) < len(waves) {
		shape = waves[wave]
	}
	return &oscillator{
		shape: shape,
		step:  freq / float64(rate),
		left:  rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	n = min(len(samples), o.left)
	for i := range n {
		v := o.shape(o.phase)
		samples[i] = [2]float64{v, v}
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	o.left -= n
	return n, n > 0
}

func (o *oscillator) Err() error { return nil }

// envelope is a linear attack, flat sustain, linear release gain
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
	// first sample of the release ramp, which overrides attack when they overlap
	releaseAt int
}

// NewEnvelope shapes s over duration, sustain fills what attack and
// release leave, the stream ends at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, att, rel := rate.N(duration), rate.N(attack), rate.N(release)
	return &envelope{
		streamer:  s,
		total:     total,
		attack:    att,
		release:   rel,
		releaseAt: att + max(total-att-rel, 0),
	}
}

func (e *envelope) gain(pos int) float64 {
	switch {
	case e.release > 0 && pos >= e.releaseAt:
		return max(float64(e.total-pos)/float64(e.release), 0)
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	left := e.total - e.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := range n {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with linear gain vol
// math.Log2(0) is -Inf, zero volume is silenced instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue is a menu sound
type Cue uint8

const (
	CueMove Cue = iota
	CueAccept
	CueCancel
)

func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueAccept:
		return "accept"
	case CueCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// CreateMoveSound is a short tick for selection changes
func CreateMoveSound(vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.MoveSoundFreq, parameter.MoveSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.MoveSoundDuration, parameter.MoveSoundAttack, parameter.MoveSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CreateAcceptSound is a rising fifth for actions
func CreateAcceptSound(vol float64, rate beep.SampleRate) beep.Streamer {
	half := parameter.AcceptSoundDuration / 2

	n1 := NewOscillator(parameter.AcceptSoundFreq, half, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, half, parameter.AcceptSoundAttack, half/2, rate)

	n2 := NewOscillator(parameter.AcceptSoundFreq*1.5, half, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, half, parameter.AcceptSoundAttack, parameter.AcceptSoundRelease/2, rate)

	// Square is harsh at full gain
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.5)
}

// CreateCancelSound is a low saw blip for cancel
func CreateCancelSound(vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.CancelSoundFreq, parameter.CancelSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.CancelSoundDuration, parameter.CancelSoundAttack, parameter.CancelSoundRelease, rate)
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for c, nil for unknown cues
func GetSoundEffect(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueMove:
		return CreateMoveSound(vol, rate)
	case CueAccept:
		return CreateAcceptSound(vol, rate)
	case CueCancel:
		return CreateCancelSound(vol, rate)
	default:
		return nil
	}
}
