// Package audio synthesizes menu sound cues with beep
//
// Cues are short generated streams mixed into one speaker stream. Every
// operation is a no-op until Initialize succeeds, so hosts without an audio
// device run silently.
package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-menu/component"
	"github.com/lixenwraith/vi-menu/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cues plays menu feedback sounds
type Cues struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	volume  float64

	// play hands a stream to the output, nil until Initialize
	play func(beep.Streamer)
}

// NewCues creates a cue player with linear volume 0..1
func NewCues(enabled bool, volume float64) *Cues {
	return &Cues{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  min(max(volume, 0), 1),
	}
}

// Initialize opens the speaker, disabled players stay silent without error
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.play != nil || !c.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(c.mixer)

	mixer := c.mixer
	c.play = func(s beep.Streamer) {
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
	}
	log.Printf("[audio] speaker at %d Hz, volume %.2f", sampleRate, c.volume)
	return nil
}

// Cleanup drops queued cues and detaches from the speaker
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.play == nil {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close, clearing the mixer leaves it silent
	c.play = nil
}

// SetVolume changes the gain for cues played from now on
func (c *Cues) SetVolume(v float64) {
	c.mu.Lock()
	c.volume = min(max(v, 0), 1)
	c.mu.Unlock()
}

// SetEnabled mutes or unmutes future cues
func (c *Cues) SetEnabled(enabled bool) {
	c.mu.Lock()
	c.enabled = enabled
	c.mu.Unlock()
}

// Play queues cue q
func (c *Cues) Play(q Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.play == nil || !c.enabled {
		return
	}
	if s := GetSoundEffect(q, c.volume, sampleRate); s != nil {
		c.play(s)
	}
}

// PlayMove plays the selection change tick
func (c *Cues) PlayMove() { c.Play(CueMove) }

// PlayAccept plays the action chime
func (c *Cues) PlayAccept() { c.Play(CueAccept) }

// PlayCancel plays the cancel blip
func (c *Cues) PlayCancel() { c.Play(CueCancel) }

// Bind plays cues for the selection, action, and cancel events of list
func (c *Cues) Bind(t *component.Tree, list component.Handle) {
	t.OnSelected(list, func(component.SelectedEvent) { c.PlayMove() })
	t.OnAction(list, func(component.SelectedEvent) { c.PlayAccept() })
	t.OnCancel(list, func(component.CancelEvent) { c.PlayCancel() })
}
