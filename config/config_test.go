package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/parameter"
)

func TestDefaultMatchesParameters(t *testing.T) {
	cfg := Default()
	assert.Equal(t, parameter.PixelPerSecond, cfg.Animation.PixelsPerSecond)
	assert.Equal(t, parameter.MillisPerAlpha, cfg.Animation.MillisPerAlpha)
	assert.Equal(t, parameter.MillisPerScale, cfg.Animation.MillisPerScale)
	assert.Equal(t, parameter.ImmediateTicks, cfg.Animation.ImmediateTicks)
	assert.Equal(t, parameter.MillisPerInput, cfg.Input.MillisPerInput)
	assert.Equal(t, parameter.MinMillisPerInput, cfg.Input.MinMillisPerInput)
	assert.Equal(t, parameter.InputRepeatDecel, cfg.Input.RepeatDecel)
	assert.Equal(t, parameter.KeyHoldWindow, cfg.HoldWindow())
	assert.Equal(t, parameter.VisibleRange, cfg.List.VisibleRange)
	assert.Equal(t, core.Yellow, cfg.SelectedColor())
	assert.Equal(t, parameter.SelectedColorHex, cfg.List.SelectedColor)
	assert.Equal(t, parameter.AudioDefaultVolume, cfg.Audio.Volume)
	assert.False(t, cfg.Log.Debug)

	km := cfg.Bindings()
	assert.Equal(t, input.HorizontalBindings(), km.Horizontal)
	assert.Equal(t, input.VerticalBindings(), km.Vertical)
}

func TestParseLayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[animation]
millis_per_alpha = 100

[list]
visible_range = 2
selected_color = "#008000"

[keys.vertical]
next = ["j", "down"]
previous = ["k"]
`))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Animation.MillisPerAlpha)
	assert.Equal(t, parameter.PixelPerSecond, cfg.Animation.PixelsPerSecond)
	assert.Equal(t, core.Green, cfg.SelectedColor())

	d := cfg.ComponentDefaults()
	assert.Equal(t, 100, d.MillisPerAlpha)
	assert.Equal(t, 2, d.VisibleRange)
	assert.Equal(t, core.Green, d.SelectedColor)
	assert.Equal(t, []input.Key{input.KeyJ, input.KeyDown}, d.Vertical.Keys[input.ControlNext])
	assert.Equal(t, []input.Key{input.KeyK}, d.Vertical.Keys[input.ControlPrevious])

	// untouched controls keep the preset
	assert.Equal(t, input.VerticalBindings().Keys[input.ControlAction], d.Vertical.Keys[input.ControlAction])
	assert.Equal(t, input.HorizontalBindings(), d.Horizontal)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown field", "[animation]\nspeed = 3\n", ErrUnknownKey},
		{"unknown key", "[keys.horizontal]\nnext = [\"hyper\"]\n", ErrUnknownKey},
		{"unknown button", "[keys.vertical]\naction_buttons = [\"z\"]\n", ErrUnknownKey},
		{"volume range", "[audio]\nvolume = 2.0\n", ErrInvalid},
		{"min above base", "[input]\nmin_millis_per_input = 500\n", ErrInvalid},
		{"negative range", "[list]\nvisible_range = -1\n", ErrInvalid},
		{"bad color", "[list]\nselected_color = \"yellowish\"\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("[animation\n"))
	assert.Error(t, err)
}

func TestLoadAppliesEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte("[audio]\nenabled = true\n"), 0o644))

	t.Setenv("VI_MENU_AUDIO_ENABLED", "false")
	t.Setenv("VI_MENU_VOLUME", "150")
	t.Setenv("VI_MENU_DEBUG", "yes please")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.Volume)
	assert.False(t, cfg.Log.Debug)

	_, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeRoundTripsThroughParse(t *testing.T) {
	cfg, err := Parse([]byte("[input]\nsingle_mode = true\n"))
	require.NoError(t, err)

	data, err := cfg.Encode()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, again.Input.SingleMode)
	assert.Equal(t, cfg.ComponentDefaults(), again.ComponentDefaults())
}

func TestWatchDeliversReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte("[list]\nvisible_range = 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[list]\nvisible_range = 3\n"), 0o644))
	select {
	case r := <-reloads:
		require.NoError(t, r.Err)
		assert.Equal(t, 3, r.Config.List.VisibleRange)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	require.NoError(t, os.WriteFile(path, []byte("[list]\nvisible_range = -4\n"), 0o644))
	select {
	case r := <-reloads:
		assert.ErrorIs(t, r.Err, ErrInvalid)
		assert.Nil(t, r.Config)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	cancel()
	for range reloads {
	}
}
