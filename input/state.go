package input

import "github.com/lixenwraith/vi-menu/parameter"

// DeviceState is what one device slot reports as held this tick
type DeviceState struct {
	keys    KeySet
	buttons ButtonSet
}

// NewDeviceState builds a state with the given keys held
func NewDeviceState(keys ...Key) *DeviceState {
	d := &DeviceState{}
	for _, k := range keys {
		d.PressKey(k)
	}
	return d
}

// PressKey marks k held
func (d *DeviceState) PressKey(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	d.keys.Add(k)
}

// ReleaseKey marks k released
func (d *DeviceState) ReleaseKey(k Key) {
	if k >= keyCount {
		return
	}
	d.keys.Remove(k)
}

// PressButton marks b held
func (d *DeviceState) PressButton(b Button) {
	if b == ButtonNone || b >= buttonCount {
		return
	}
	d.buttons.Add(b)
}

// ReleaseButton marks b released
func (d *DeviceState) ReleaseButton(b Button) {
	if b >= buttonCount {
		return
	}
	d.buttons.Remove(b)
}

// IsKeyDown reports whether k is held
func (d *DeviceState) IsKeyDown(k Key) bool {
	if d == nil || k >= keyCount {
		return false
	}
	return d.keys.Has(k)
}

// IsButtonDown reports whether b is held
func (d *DeviceState) IsButtonDown(b Button) bool {
	if d == nil || b >= buttonCount {
		return false
	}
	return d.buttons.Has(b)
}

// Idle reports whether nothing is held
func (d *DeviceState) Idle() bool {
	return d == nil || (d.keys.Empty() && d.buttons == 0)
}

// Keys lists held keys in enum order
func (d *DeviceState) Keys() []Key {
	if d == nil {
		return nil
	}
	var out []Key
	for k := KeyNone + 1; k < keyCount; k++ {
		if d.keys.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Snapshot is the per-tick input handed to the tree
// A nil slot means no device was present in that slot this tick
type Snapshot struct {
	Devices [parameter.MaxDevices]*DeviceState
}

// NewSnapshot fills slots in order, extra states are dropped
func NewSnapshot(states ...*DeviceState) Snapshot {
	var s Snapshot
	for i, st := range states {
		if i >= parameter.MaxDevices {
			break
		}
		s.Devices[i] = st
	}
	return s
}

// Device returns slot i, nil if absent or out of range
func (s Snapshot) Device(i int) *DeviceState {
	if i < 0 || i >= len(s.Devices) {
		return nil
	}
	return s.Devices[i]
}

// Present counts populated slots
func (s Snapshot) Present() int {
	n := 0
	for _, d := range s.Devices {
		if d != nil {
			n++
		}
	}
	return n
}
