// Package input is the device boundary of the menu tree
//
// The tree never polls hardware: each tick the host hands it a Snapshot with
// one optional DeviceState per slot, holding the keys and buttons currently down.
package input

import "strings"

// Key identifies a keyboard key independent of any backend
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	keyCount
)

var specialKeyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyDelete:    "delete",
}

// Aliases accepted by KeyByName in addition to canonical names
var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"back":   KeyBackspace,
	"pgup":   KeyPageUp,
	"pgdn":   KeyPageDown,
	"del":    KeyDelete,
}

var keysByName map[string]Key

func init() {
	keysByName = make(map[string]Key, int(keyCount)+len(keyAliases))
	for k := KeyNone + 1; k < keyCount; k++ {
		keysByName[k.String()] = k
	}
	for name, k := range keyAliases {
		keysByName[name] = k
	}
}

// String returns the canonical config name of the key
func (k Key) String() string {
	switch {
	case k >= KeyF1 && k <= KeyF12:
		return "f" + itoa(int(k-KeyF1)+1)
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA)))
	}
	if name, ok := specialKeyNames[k]; ok {
		return name
	}
	return "none"
}

// KeyByName resolves a config key name, case-insensitive
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyForRune maps a printable rune to its key, letters are case-folded
func KeyForRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0'), true
	case r == ' ':
		return KeySpace, true
	}
	return KeyNone, false
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

// KeySet is a bitset over Key
type KeySet [2]uint64

// Add marks k as present
func (s *KeySet) Add(k Key) {
	s[k/64] |= 1 << (k % 64)
}

// Remove clears k
func (s *KeySet) Remove(k Key) {
	s[k/64] &^= 1 << (k % 64)
}

// Has reports whether k is present
func (s KeySet) Has(k Key) bool {
	return s[k/64]&(1<<(k%64)) != 0
}

// Empty reports whether no key is present
func (s KeySet) Empty() bool {
	return s[0] == 0 && s[1] == 0
}
