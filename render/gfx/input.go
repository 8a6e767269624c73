package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/parameter"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyBackspace:  input.KeyBackspace,
	ebiten.KeyTab:        input.KeyTab,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyHome:       input.KeyHome,
	ebiten.KeyEnd:        input.KeyEnd,
	ebiten.KeyPageUp:     input.KeyPageUp,
	ebiten.KeyPageDown:   input.KeyPageDown,
	ebiten.KeyDelete:     input.KeyDelete,

	ebiten.KeyF1: input.KeyF1, ebiten.KeyF2: input.KeyF2, ebiten.KeyF3: input.KeyF3,
	ebiten.KeyF4: input.KeyF4, ebiten.KeyF5: input.KeyF5, ebiten.KeyF6: input.KeyF6,
	ebiten.KeyF7: input.KeyF7, ebiten.KeyF8: input.KeyF8, ebiten.KeyF9: input.KeyF9,
	ebiten.KeyF10: input.KeyF10, ebiten.KeyF11: input.KeyF11, ebiten.KeyF12: input.KeyF12,

	ebiten.KeyDigit0: input.Key0, ebiten.KeyDigit1: input.Key1, ebiten.KeyDigit2: input.Key2,
	ebiten.KeyDigit3: input.Key3, ebiten.KeyDigit4: input.Key4, ebiten.KeyDigit5: input.Key5,
	ebiten.KeyDigit6: input.Key6, ebiten.KeyDigit7: input.Key7, ebiten.KeyDigit8: input.Key8,
	ebiten.KeyDigit9: input.Key9,

	ebiten.KeyA: input.KeyA, ebiten.KeyB: input.KeyB, ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD, ebiten.KeyE: input.KeyE, ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG, ebiten.KeyH: input.KeyH, ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ, ebiten.KeyK: input.KeyK, ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM, ebiten.KeyN: input.KeyN, ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP, ebiten.KeyQ: input.KeyQ, ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS, ebiten.KeyT: input.KeyT, ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV, ebiten.KeyW: input.KeyW, ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY, ebiten.KeyZ: input.KeyZ,
}

// buttonMap follows the W3C standard gamepad layout
var buttonMap = map[ebiten.StandardGamepadButton]input.Button{
	ebiten.StandardGamepadButtonLeftTop:          input.ButtonDPadUp,
	ebiten.StandardGamepadButtonLeftBottom:       input.ButtonDPadDown,
	ebiten.StandardGamepadButtonLeftLeft:         input.ButtonDPadLeft,
	ebiten.StandardGamepadButtonLeftRight:        input.ButtonDPadRight,
	ebiten.StandardGamepadButtonRightBottom:      input.ButtonA,
	ebiten.StandardGamepadButtonRightRight:       input.ButtonB,
	ebiten.StandardGamepadButtonRightLeft:        input.ButtonX,
	ebiten.StandardGamepadButtonRightTop:         input.ButtonY,
	ebiten.StandardGamepadButtonCenterRight:      input.ButtonStart,
	ebiten.StandardGamepadButtonCenterLeft:       input.ButtonBack,
	ebiten.StandardGamepadButtonFrontTopLeft:     input.ButtonLeftShoulder,
	ebiten.StandardGamepadButtonFrontTopRight:    input.ButtonRightShoulder,
	ebiten.StandardGamepadButtonFrontBottomLeft:  input.ButtonLeftTrigger,
	ebiten.StandardGamepadButtonFrontBottomRight: input.ButtonRightTrigger,
}

type stick struct {
	h, v                  ebiten.StandardGamepadAxis
	up, down, left, right input.Button
}

var sticks = [...]stick{
	{
		h: ebiten.StandardGamepadAxisLeftStickHorizontal, v: ebiten.StandardGamepadAxisLeftStickVertical,
		up: input.ButtonLeftStickUp, down: input.ButtonLeftStickDown,
		left: input.ButtonLeftStickLeft, right: input.ButtonLeftStickRight,
	},
	{
		h: ebiten.StandardGamepadAxisRightStickHorizontal, v: ebiten.StandardGamepadAxisRightStickVertical,
		up: input.ButtonRightStickUp, down: input.ButtonRightStickDown,
		left: input.ButtonRightStickLeft, right: input.ButtonRightStickRight,
	},
}

// press folds a stick position into digital directions, y grows downward
func (s stick) press(d *input.DeviceState, x, y, deadZone float64) {
	switch {
	case x <= -deadZone:
		d.PressButton(s.left)
	case x >= deadZone:
		d.PressButton(s.right)
	}
	switch {
	case y <= -deadZone:
		d.PressButton(s.up)
	case y >= deadZone:
		d.PressButton(s.down)
	}
}

// Sampler polls keyboard and standard-layout gamepads once per tick
// The keyboard shares slot 0 with the first gamepad, further pads take the
// following slots
type Sampler struct {
	DeadZone float64
	ids      []ebiten.GamepadID
}

// NewSampler creates a sampler with the default dead zone
func NewSampler() *Sampler {
	return &Sampler{DeadZone: parameter.GfxStickDeadZone}
}

// Sample reads the devices, call from ebiten's Update
func (s *Sampler) Sample() input.Snapshot {
	var slots [parameter.MaxDevices]*input.DeviceState
	slots[0] = input.NewDeviceState()
	for ek, k := range keyMap {
		if ebiten.IsKeyPressed(ek) {
			slots[0].PressKey(k)
		}
	}

	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	slot := 0
	for _, id := range s.ids {
		if slot >= len(slots) {
			break
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if slots[slot] == nil {
			slots[slot] = input.NewDeviceState()
		}
		s.readPad(id, slots[slot])
		slot++
	}
	return input.NewSnapshot(slots[:]...)
}

func (s *Sampler) readPad(id ebiten.GamepadID, d *input.DeviceState) {
	for eb, b := range buttonMap {
		if ebiten.IsStandardGamepadButtonPressed(id, eb) {
			d.PressButton(b)
		}
	}
	for _, st := range sticks {
		st.press(d,
			ebiten.StandardGamepadAxisValue(id, st.h),
			ebiten.StandardGamepadAxisValue(id, st.v),
			s.DeadZone)
	}
}
