package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownKey is returned for key, button, or field names that do not resolve
var ErrUnknownKey = errors.New("unknown key name")

// KeymapSection is the TOML shape of one bindings table
// Empty lists leave the preset for that control untouched
type KeymapSection struct {
	Next     []string `toml:"next"`
	Previous []string `toml:"previous"`
	Action   []string `toml:"action"`
	Cancel   []string `toml:"cancel"`

	NextButtons     []string `toml:"next_buttons"`
	PreviousButtons []string `toml:"previous_buttons"`
	ActionButtons   []string `toml:"action_buttons"`
	CancelButtons   []string `toml:"cancel_buttons"`
}

// Keymap holds the binding presets for both list orientations
type Keymap struct {
	Horizontal Bindings
	Vertical   Bindings
}

// DefaultKeymap returns the built-in presets
func DefaultKeymap() Keymap {
	return Keymap{Horizontal: HorizontalBindings(), Vertical: VerticalBindings()}
}

type keymapFile struct {
	Horizontal KeymapSection `toml:"horizontal"`
	Vertical   KeymapSection `toml:"vertical"`
}

// ParseKeymap parses a standalone keymap file with [horizontal] and [vertical]
// tables and layers it over the defaults
func ParseKeymap(data []byte) (Keymap, error) {
	var raw keymapFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Keymap{}, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Keymap{}, fmt.Errorf("keymap field %q: %w", undecoded[0].String(), ErrUnknownKey)
	}

	km := DefaultKeymap()
	if km.Horizontal, err = raw.Horizontal.Apply("horizontal", km.Horizontal); err != nil {
		return Keymap{}, err
	}
	if km.Vertical, err = raw.Vertical.Apply("vertical", km.Vertical); err != nil {
		return Keymap{}, err
	}
	return km, nil
}

// Apply resolves the section names and merges them over base
func (s KeymapSection) Apply(section string, base Bindings) (Bindings, error) {
	var over Bindings
	keyLists := [controlCount][]string{s.Next, s.Previous, s.Action, s.Cancel}
	buttonLists := [controlCount][]string{s.NextButtons, s.PreviousButtons, s.ActionButtons, s.CancelButtons}

	for c := range controlCount {
		keys, err := resolveKeys(section, c, keyLists[c])
		if err != nil {
			return Bindings{}, err
		}
		buttons, err := resolveButtons(section, c, buttonLists[c])
		if err != nil {
			return Bindings{}, err
		}
		over.Keys[c] = keys
		over.Buttons[c] = buttons
	}

	return base.Merge(over), nil
}

func resolveKeys(section string, c Control, names []string) ([]Key, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]Key, 0, len(names))
	for _, name := range names {
		k, ok := KeyByName(name)
		if !ok {
			return nil, fmt.Errorf("[%s] %s: key %q: %w", section, c, name, ErrUnknownKey)
		}
		out = append(out, k)
	}
	return out, nil
}

func resolveButtons(section string, c Control, names []string) ([]Button, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]Button, 0, len(names))
	for _, name := range names {
		b, ok := ButtonByName(name)
		if !ok {
			return nil, fmt.Errorf("[%s] %s_buttons: button %q: %w", section, c, strings.TrimSpace(name), ErrUnknownKey)
		}
		out = append(out, b)
	}
	return out, nil
}
