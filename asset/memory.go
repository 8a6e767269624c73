package asset

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// FixedImage is an image known only by its size
type FixedImage struct {
	W, H int
}

func (i FixedImage) Size() (int, int) { return i.W, i.H }

// MonoFont measures text on a fixed grid, wide runes take two columns
type MonoFont struct {
	CellWidth  int
	CellHeight int
}

// Measure returns the grid extent of s
func (f MonoFont) Measure(s string) (int, int) {
	if s == "" {
		return 0, 0
	}
	return runewidth.StringWidth(s) * f.CellWidth, f.CellHeight
}

// MemoryLoader serves registered images and fonts from memory
// Unregistered fonts fall back to Default when it is set
type MemoryLoader struct {
	Images  map[string]Image
	Fonts   map[string]Font
	Default Font
}

// NewMemoryLoader creates an empty loader with a 1x1 mono fallback font
func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{
		Images:  make(map[string]Image),
		Fonts:   make(map[string]Font),
		Default: MonoFont{CellWidth: 1, CellHeight: 1},
	}
}

func (m *MemoryLoader) LoadImage(path string) (Image, error) {
	if img, ok := m.Images[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("image %q: %w", path, ErrNotFound)
}

func (m *MemoryLoader) LoadFont(path string) (Font, error) {
	if f, ok := m.Fonts[path]; ok {
		return f, nil
	}
	if m.Default != nil {
		return m.Default, nil
	}
	return nil, fmt.Errorf("font %q: %w", path, ErrNotFound)
}
