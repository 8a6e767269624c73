package cell

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-menu/input"
)

// Signal is what the host should do after an event
type Signal uint8

const (
	SignalNone Signal = iota
	SignalQuit
	SignalResize
)

var tcellKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// TranslateKey maps a tcell key event to a menu key
func TranslateKey(ev *tcell.EventKey) (input.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		return input.KeyForRune(ev.Rune())
	}
	k, ok := tcellKeys[ev.Key()]
	return k, ok
}

// Keyboard turns terminal key events into held state
// Terminals send presses and autorepeats only, so a key stays down for the
// latch window after its last event
type Keyboard struct {
	latch *input.Latch
}

// NewKeyboard creates a keyboard with the given hold window
func NewKeyboard(window time.Duration) *Keyboard {
	return &Keyboard{latch: input.NewLatch(window)}
}

// SetWindow changes the hold window
func (k *Keyboard) SetWindow(window time.Duration) {
	k.latch.SetWindow(window)
}

// Handle records ev at now and reports what the host should do
func (k *Keyboard) Handle(ev tcell.Event, now time.Time) Signal {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			return SignalQuit
		}
		if key, ok := TranslateKey(e); ok {
			k.Press(key, now)
		}
	case *tcell.EventResize:
		return SignalResize
	case *tcell.EventFocus:
		if !e.Focused {
			k.latch.Reset()
		}
	}
	return SignalNone
}

// Press records a press or autorepeat of key
func (k *Keyboard) Press(key input.Key, now time.Time) {
	k.latch.Press(key, now)
}

// Snapshot returns the keyboard as device slot 0
func (k *Keyboard) Snapshot(now time.Time) input.Snapshot {
	return input.NewSnapshot(k.latch.Sample(now))
}
