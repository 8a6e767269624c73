package gfx

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/vi-menu/asset"
)

// builtin faces resolve without touching the asset root
var builtin = map[string][]byte{
	"mono":    gomono.TTF,
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
}

// Face is a sized font face
type Face struct {
	face text.Face
}

// NewFace sizes src at size pixels
func NewFace(src *text.GoTextFaceSource, size float64) *Face {
	return &Face{face: &text.GoTextFace{Source: src, Size: size}}
}

// LineSpacing is the advance between baselines
func (f *Face) LineSpacing() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the pixel extent of s rounded up
func (f *Face) Measure(s string) (int, int) {
	if s == "" {
		return 0, 0
	}
	w, h := text.Measure(s, f.face, f.LineSpacing())
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// fontSpec splits "name" or "name:size"
// A missing size yields def, a non-positive or malformed size is an error
func fontSpec(path string, def float64) (string, float64, error) {
	name, sizeStr, ok := strings.Cut(path, ":")
	if !ok {
		return path, def, nil
	}
	size, err := strconv.ParseFloat(sizeStr, 64)
	if err != nil || size <= 0 {
		return "", 0, fmt.Errorf("font %q: bad size %q", path, sizeStr)
	}
	return name, size, nil
}

func parseSource(data []byte) (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(data))
}

// loadSource resolves a builtin name or a TTF under root
func loadSource(root, name string) (*text.GoTextFaceSource, error) {
	data, ok := builtin[strings.ToLower(name)]
	if !ok {
		var err error
		if data, err = asset.ReadFile(root, name, ".ttf"); err != nil {
			return nil, fmt.Errorf("font %w", err)
		}
	}
	src, err := parseSource(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	return src, nil
}
