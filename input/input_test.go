package input

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNames(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"right", KeyRight},
		{"ENTER", KeyEnter},
		{"esc", KeyEscape},
		{"f12", KeyF12},
		{"2", Key2},
		{"z", KeyZ},
		{" space ", KeySpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := KeyByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, k)
		})
	}

	_, ok := KeyByName("hyper")
	assert.False(t, ok)
	assert.Equal(t, "f10", KeyF10.String())
	assert.Equal(t, "7", Key7.String())
}

func TestKeyForRune(t *testing.T) {
	k, ok := KeyForRune('Q')
	require.True(t, ok)
	assert.Equal(t, KeyQ, k)

	k, ok = KeyForRune('2')
	require.True(t, ok)
	assert.Equal(t, Key2, k)

	_, ok = KeyForRune('!')
	assert.False(t, ok)
}

func TestButtonNames(t *testing.T) {
	b, ok := ButtonByName("DPad_Left")
	require.True(t, ok)
	assert.Equal(t, ButtonDPadLeft, b)
	assert.Equal(t, "left_stick_right", ButtonLeftStickRight.String())

	_, ok = ButtonByName("none")
	assert.False(t, ok)
}

func TestDeviceState(t *testing.T) {
	d := NewDeviceState(KeyLeft, KeyZ)
	d.PressButton(ButtonA)

	assert.True(t, d.IsKeyDown(KeyLeft))
	assert.True(t, d.IsKeyDown(KeyZ))
	assert.False(t, d.IsKeyDown(KeyRight))
	assert.True(t, d.IsButtonDown(ButtonA))
	assert.Equal(t, []Key{KeyLeft, KeyZ}, d.Keys())

	d.ReleaseKey(KeyLeft)
	d.ReleaseKey(KeyZ)
	d.ReleaseButton(ButtonA)
	assert.True(t, d.Idle())

	var absent *DeviceState
	assert.False(t, absent.IsKeyDown(KeyLeft))
	assert.True(t, absent.Idle())
}

func TestSnapshotSlots(t *testing.T) {
	s := NewSnapshot(nil, NewDeviceState(KeyUp))
	assert.Nil(t, s.Device(0))
	assert.True(t, s.Device(1).IsKeyDown(KeyUp))
	assert.Nil(t, s.Device(-1))
	assert.Nil(t, s.Device(9))
	assert.Equal(t, 1, s.Present())
}

func TestBindingsFind(t *testing.T) {
	b := HorizontalBindings()

	pad := &DeviceState{}
	pad.PressButton(ButtonLeftStickRight)
	s := NewSnapshot(NewDeviceState(KeyEnter), pad)

	trig, ok := b.Find(ControlNext, 1, s.Device(1))
	require.True(t, ok)
	assert.Equal(t, Trigger{Device: 1, Button: ButtonLeftStickRight}, trig)
	assert.True(t, trig.Held(s))

	trig, ok = b.Find(ControlAction, 0, s.Device(0))
	require.True(t, ok)
	assert.Equal(t, KeyEnter, trig.Key)

	_, ok = b.Find(ControlPrevious, 0, s.Device(0))
	assert.False(t, ok)

	assert.True(t, b.AnyHeld(s))
	assert.False(t, b.AnyHeld(NewSnapshot(NewDeviceState(KeyQ))))
	assert.False(t, trig.Held(NewSnapshot()))
}

func TestBindingsMerge(t *testing.T) {
	var over Bindings
	over.Keys[ControlNext] = []Key{KeyD}

	merged := VerticalBindings().Merge(over)
	assert.Equal(t, []Key{KeyD}, merged.Keys[ControlNext])
	assert.Equal(t, []Key{KeyUp}, merged.Keys[ControlPrevious])
	assert.Equal(t, []Button{ButtonDPadDown, ButtonLeftStickDown}, merged.Buttons[ControlNext])
}

func TestParseKeymap(t *testing.T) {
	data := []byte(`
[horizontal]
next = ["l", "right"]
previous = ["h"]

[vertical]
cancel_buttons = ["back"]
`)
	km, err := ParseKeymap(data)
	require.NoError(t, err)

	assert.Equal(t, []Key{KeyL, KeyRight}, km.Horizontal.Keys[ControlNext])
	assert.Equal(t, []Key{KeyH}, km.Horizontal.Keys[ControlPrevious])
	assert.Equal(t, []Key{KeyEnter}, km.Horizontal.Keys[ControlAction])
	assert.Equal(t, []Button{ButtonBack}, km.Vertical.Buttons[ControlCancel])
	assert.Equal(t, []Key{KeyDown}, km.Vertical.Keys[ControlNext])
}

func TestParseKeymapErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[horizontal]\nnext = [\"hyper\"]\n"},
		{"unknown button", "[vertical]\naction_buttons = [\"turbo\"]\n"},
		{"unknown field", "[horizontal]\njump = [\"a\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeymap([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownKey))
		})
	}

	_, err := ParseKeymap([]byte("[horizontal\n"))
	assert.Error(t, err)
}

func TestLatchHoldWindow(t *testing.T) {
	l := NewLatch(80 * time.Millisecond)
	t0 := time.Unix(100, 0)

	l.Press(KeyRight, t0)
	assert.True(t, l.Sample(t0.Add(50*time.Millisecond)).IsKeyDown(KeyRight))

	// Autorepeat extends the hold
	l.Press(KeyRight, t0.Add(70*time.Millisecond))
	assert.True(t, l.Sample(t0.Add(140*time.Millisecond)).IsKeyDown(KeyRight))

	assert.False(t, l.Sample(t0.Add(200*time.Millisecond)).IsKeyDown(KeyRight))

	l.Press(KeyEnter, t0)
	l.Release(KeyEnter)
	assert.True(t, l.Sample(t0).Idle())
}
