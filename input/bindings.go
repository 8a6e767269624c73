package input

// Control is a list navigation command, declared in dispatch priority order
type Control uint8

const (
	ControlNext Control = iota
	ControlPrevious
	ControlAction
	ControlCancel

	controlCount
)

// Controls lists every control in priority order
var Controls = [controlCount]Control{ControlNext, ControlPrevious, ControlAction, ControlCancel}

func (c Control) String() string {
	switch c {
	case ControlNext:
		return "next"
	case ControlPrevious:
		return "previous"
	case ControlAction:
		return "action"
	case ControlCancel:
		return "cancel"
	}
	return "none"
}

// Bindings maps each control to the keys and buttons that trigger it
type Bindings struct {
	Keys    [controlCount][]Key
	Buttons [controlCount][]Button
}

// Trigger names the physical input that fired a control
type Trigger struct {
	Device int
	Key    Key
	Button Button
}

// HorizontalBindings is the preset for left/right lists
func HorizontalBindings() Bindings {
	var b Bindings
	b.Keys[ControlNext] = []Key{KeyRight}
	b.Keys[ControlPrevious] = []Key{KeyLeft}
	b.Buttons[ControlNext] = []Button{ButtonDPadRight, ButtonLeftStickRight}
	b.Buttons[ControlPrevious] = []Button{ButtonDPadLeft, ButtonLeftStickLeft}
	b.setCommon()
	return b
}

// VerticalBindings is the preset for up/down lists
func VerticalBindings() Bindings {
	var b Bindings
	b.Keys[ControlNext] = []Key{KeyDown}
	b.Keys[ControlPrevious] = []Key{KeyUp}
	b.Buttons[ControlNext] = []Button{ButtonDPadDown, ButtonLeftStickDown}
	b.Buttons[ControlPrevious] = []Button{ButtonDPadUp, ButtonLeftStickUp}
	b.setCommon()
	return b
}

func (b *Bindings) setCommon() {
	b.Keys[ControlAction] = []Key{KeyEnter}
	b.Keys[ControlCancel] = []Key{KeyBackspace}
	b.Buttons[ControlAction] = []Button{ButtonA}
	b.Buttons[ControlCancel] = []Button{ButtonB}
}

// Clone deep-copies the binding slices
func (b Bindings) Clone() Bindings {
	var out Bindings
	for c := range controlCount {
		out.Keys[c] = append([]Key(nil), b.Keys[c]...)
		out.Buttons[c] = append([]Button(nil), b.Buttons[c]...)
	}
	return out
}

// Merge replaces controls that have any override entries, others are kept
func (b Bindings) Merge(over Bindings) Bindings {
	out := b.Clone()
	for c := range controlCount {
		if len(over.Keys[c]) > 0 {
			out.Keys[c] = append([]Key(nil), over.Keys[c]...)
		}
		if len(over.Buttons[c]) > 0 {
			out.Buttons[c] = append([]Button(nil), over.Buttons[c]...)
		}
	}
	return out
}

// Find returns the first trigger of control c held in d
func (b *Bindings) Find(c Control, device int, d *DeviceState) (Trigger, bool) {
	if d == nil || c >= controlCount {
		return Trigger{}, false
	}
	for _, k := range b.Keys[c] {
		if d.IsKeyDown(k) {
			return Trigger{Device: device, Key: k}, true
		}
	}
	for _, btn := range b.Buttons[c] {
		if d.IsButtonDown(btn) {
			return Trigger{Device: device, Button: btn}, true
		}
	}
	return Trigger{}, false
}

// AnyHeld reports whether any mapped key or button is down on any present device
func (b *Bindings) AnyHeld(s Snapshot) bool {
	for i, d := range s.Devices {
		if d == nil {
			continue
		}
		for _, c := range Controls {
			if _, ok := b.Find(c, i, d); ok {
				return true
			}
		}
	}
	return false
}

// Held reports whether trigger t is still down in s
func (t Trigger) Held(s Snapshot) bool {
	d := s.Device(t.Device)
	if t.Key != KeyNone {
		return d.IsKeyDown(t.Key)
	}
	return d.IsButtonDown(t.Button)
}
