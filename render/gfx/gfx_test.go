package gfx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
)

func TestFontSpec(t *testing.T) {
	tests := []struct {
		path    string
		name    string
		size    float64
		wantErr bool
	}{
		{"regular", "regular", 24, false},
		{"fonts/menu:32", "fonts/menu", 32, false},
		{"bold:12.5", "bold", 12.5, false},
		{"mono:", "", 0, true},
		{"mono:-4", "", 0, true},
		{"mono:big", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, size, err := fontSpec(tt.path, 24)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.size, size)
		})
	}
}

func TestBuiltinFaceMeasures(t *testing.T) {
	l := NewLoader(t.TempDir())

	small, err := l.LoadFont("mono:10")
	require.NoError(t, err)
	large, err := l.LoadFont("mono:20")
	require.NoError(t, err)

	sw, sh := small.Measure("Foo")
	lw, lh := large.Measure("Foo")
	assert.Positive(t, sw)
	assert.Positive(t, sh)
	assert.Greater(t, lw, sw)
	assert.Greater(t, lh, sh)

	w, h := small.Measure("")
	assert.Zero(t, w)
	assert.Zero(t, h)

	// one parsed source per name
	assert.Len(t, l.sources, 1)
}

func TestLoadFontErrors(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader(dir)

	_, err := l.LoadFont("fonts/absent")
	assert.ErrorIs(t, err, asset.ErrNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.ttf"), []byte("not a font"), 0o644))
	_, err = l.LoadFont("junk")
	require.Error(t, err)
	assert.NotErrorIs(t, err, asset.ErrNotFound)
}

func TestStickDeadZone(t *testing.T) {
	st := sticks[0]
	tests := []struct {
		name string
		x, y float64
		want []input.Button
	}{
		{"rest", 0, 0, nil},
		{"inside", 0.4, -0.4, nil},
		{"left", -0.9, 0, []input.Button{input.ButtonLeftStickLeft}},
		{"down right", 0.6, 0.7, []input.Button{input.ButtonLeftStickRight, input.ButtonLeftStickDown}},
		{"up", 0.1, -0.5, []input.Button{input.ButtonLeftStickUp}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := input.NewDeviceState()
			st.press(d, tt.x, tt.y, 0.5)
			for _, b := range []input.Button{
				input.ButtonLeftStickUp, input.ButtonLeftStickDown,
				input.ButtonLeftStickLeft, input.ButtonLeftStickRight,
			} {
				assert.Equal(t, contains(tt.want, b), d.IsButtonDown(b), b.String())
			}
		})
	}
}

func contains(bs []input.Button, b input.Button) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

func TestKeyMapCoversBindableKeys(t *testing.T) {
	seen := make(map[input.Key]bool)
	for _, k := range keyMap {
		assert.False(t, seen[k], "duplicate mapping for %s", k)
		seen[k] = true
	}
	for _, k := range []input.Key{input.KeyUp, input.KeyEnter, input.KeyEscape, input.Key1, input.KeyJ, input.KeyF12} {
		assert.True(t, seen[k], k.String())
	}
}

func TestTPS(t *testing.T) {
	assert.Equal(t, 60, tps(time.Second/60))
	assert.Equal(t, 50, tps(20*time.Millisecond))
	assert.Equal(t, ebiten.DefaultTPS, tps(0))
}

func TestColorScalePremultiplied(t *testing.T) {
	cs := colorScale(core.White.Scale(0.5))
	assert.InDelta(t, 0.5, cs.R(), 0.01)
	assert.InDelta(t, 0.5, cs.A(), 0.01)
}

func TestDrawWithoutTargetIsIgnored(t *testing.T) {
	b := New(640, 480)
	w, h := b.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	b.Images().Begin()
	b.Images().Draw(nil, core.Rect{Width: 10, Height: 10}, nil, core.White)
	b.Images().End()
	b.Clear()

	b.Resize(100, 50)
	w, _ = b.Size()
	assert.Equal(t, 100, w)
}
