package input

import "strings"

// Button identifies a gamepad button in the standard layout
// Stick directions are folded into digital buttons past a dead zone
type Button uint8

const (
	ButtonNone Button = iota
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonStart
	ButtonBack
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftStickUp
	ButtonLeftStickDown
	ButtonLeftStickLeft
	ButtonLeftStickRight
	ButtonRightStickUp
	ButtonRightStickDown
	ButtonRightStickLeft
	ButtonRightStickRight

	buttonCount
)

var buttonNames = [buttonCount]string{
	ButtonNone:            "none",
	ButtonDPadUp:          "dpad_up",
	ButtonDPadDown:        "dpad_down",
	ButtonDPadLeft:        "dpad_left",
	ButtonDPadRight:       "dpad_right",
	ButtonA:               "a",
	ButtonB:               "b",
	ButtonX:               "x",
	ButtonY:               "y",
	ButtonStart:           "start",
	ButtonBack:            "back",
	ButtonLeftShoulder:    "left_shoulder",
	ButtonRightShoulder:   "right_shoulder",
	ButtonLeftTrigger:     "left_trigger",
	ButtonRightTrigger:    "right_trigger",
	ButtonLeftStickUp:     "left_stick_up",
	ButtonLeftStickDown:   "left_stick_down",
	ButtonLeftStickLeft:   "left_stick_left",
	ButtonLeftStickRight:  "left_stick_right",
	ButtonRightStickUp:    "right_stick_up",
	ButtonRightStickDown:  "right_stick_down",
	ButtonRightStickLeft:  "right_stick_left",
	ButtonRightStickRight: "right_stick_right",
}

func (b Button) String() string {
	if b >= buttonCount {
		return "none"
	}
	return buttonNames[b]
}

// ButtonByName resolves a config button name, case-insensitive
func ButtonByName(name string) (Button, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b := ButtonNone + 1; b < buttonCount; b++ {
		if buttonNames[b] == name {
			return b, true
		}
	}
	return ButtonNone, false
}

// ButtonSet is a bitmask over Button
type ButtonSet uint32

// Add marks b as present
func (s *ButtonSet) Add(b Button) {
	*s |= 1 << b
}

// Remove clears b
func (s *ButtonSet) Remove(b Button) {
	*s &^= 1 << b
}

// Has reports whether b is present
func (s ButtonSet) Has(b Button) bool {
	return s&(1<<b) != 0
}
