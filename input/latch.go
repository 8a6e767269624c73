package input

import "time"

// Latch turns discrete key press events into held state
//
// Terminals report presses and autorepeats but never releases, so a key
// counts as held for window after its most recent press event. Backends
// that see real releases call Release directly.
type Latch struct {
	window time.Duration
	keys   map[Key]time.Time
}

// NewLatch creates a latch with the given hold window
func NewLatch(window time.Duration) *Latch {
	return &Latch{
		window: window,
		keys:   make(map[Key]time.Time),
	}
}

// SetWindow changes the hold window for subsequent samples
func (l *Latch) SetWindow(window time.Duration) {
	l.window = window
}

// Press records a press or autorepeat of k at time at
func (l *Latch) Press(k Key, at time.Time) {
	if k == KeyNone {
		return
	}
	l.keys[k] = at
}

// Release drops k immediately
func (l *Latch) Release(k Key) {
	delete(l.keys, k)
}

// Reset drops every held key
func (l *Latch) Reset() {
	clear(l.keys)
}

// Sample returns the keys still inside their hold window at now
// Expired entries are discarded
func (l *Latch) Sample(now time.Time) *DeviceState {
	d := &DeviceState{}
	for k, at := range l.keys {
		if now.Sub(at) > l.window {
			delete(l.keys, k)
			continue
		}
		d.PressKey(k)
	}
	return d
}
