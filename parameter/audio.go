package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the linear gain applied to every cue
	AudioDefaultVolume = 0.6
)

// Move Cue
const (
	MoveSoundFreq     = 880.0
	MoveSoundDuration = 40 * time.Millisecond
	MoveSoundAttack   = 2 * time.Millisecond
	MoveSoundRelease  = 30 * time.Millisecond
)

// Accept Cue
const (
	AcceptSoundFreq     = 660.0
	AcceptSoundDuration = 160 * time.Millisecond
	AcceptSoundAttack   = 5 * time.Millisecond
	AcceptSoundRelease  = 120 * time.Millisecond
)

// Cancel Cue
const (
	CancelSoundFreq     = 220.0
	CancelSoundDuration = 120 * time.Millisecond
	CancelSoundAttack   = 5 * time.Millisecond
	CancelSoundRelease  = 60 * time.Millisecond
)
