// Package config loads the menu tunables from TOML
//
// The built-in document (asset.DefaultConfig) is decoded first and the user
// file is layered over it, so a file only needs the fields it changes.
// Environment variables prefixed VI_MENU_ override audio and logging last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/component"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/parameter"
)

// ErrUnknownKey is returned for unknown fields, keys, and buttons
var ErrUnknownKey = input.ErrUnknownKey

// ErrInvalid is returned for values outside their range
var ErrInvalid = errors.New("invalid config value")

type Animation struct {
	PixelsPerSecond int `toml:"pixels_per_second"`
	MillisPerAlpha  int `toml:"millis_per_alpha"`
	MillisPerScale  int `toml:"millis_per_scale"`
	ImmediateTicks  int `toml:"immediate_ticks"`
}

type Input struct {
	MillisPerInput    int  `toml:"millis_per_input"`
	MinMillisPerInput int  `toml:"min_millis_per_input"`
	RepeatDecel       int  `toml:"repeat_decel"`
	SingleMode        bool `toml:"single_mode"`

	// HoldWindowMs is how long a terminal key press counts as held
	HoldWindowMs int `toml:"hold_window_ms"`
}

type List struct {
	VisibleRange  int    `toml:"visible_range"`
	SelectedColor string `toml:"selected_color"`
}

type Keys struct {
	Horizontal input.KeymapSection `toml:"horizontal"`
	Vertical   input.KeymapSection `toml:"vertical"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type Log struct {
	Debug bool `toml:"debug"`
}

// Config is the decoded document plus values resolved from it
type Config struct {
	Animation Animation `toml:"animation"`
	Input     Input     `toml:"input"`
	List      List      `toml:"list"`
	Keys      Keys      `toml:"keys"`
	Audio     Audio     `toml:"audio"`
	Log       Log       `toml:"log"`

	selected core.RGBA
	keymap   input.Keymap
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("built-in config: %v", err))
	}
	return cfg
}

// Parse layers data over the built-in document
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(asset.DefaultConfig, cfg); err != nil {
		return nil, fmt.Errorf("built-in config: %w", err)
	}

	if len(data) > 0 {
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("config parse: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config field %q: %w", undecoded[0].String(), ErrUnknownKey)
		}
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path, layers it over the defaults and applies the environment
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides audio and logging from VI_MENU_* variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(parameter.EnvPrefix + "AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// 0-100 converted to 0.0-1.0
	if v := os.Getenv(parameter.EnvPrefix + "VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(float64(n)/100, 0), 1)
		}
	}

	if v := os.Getenv(parameter.EnvPrefix + "DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		}
	}
}

func (c *Config) resolve() error {
	switch {
	case c.Input.MillisPerInput < 0:
		return fmt.Errorf("[input] millis_per_input %d: %w", c.Input.MillisPerInput, ErrInvalid)
	case c.Input.MinMillisPerInput < 0 || c.Input.MinMillisPerInput > c.Input.MillisPerInput:
		return fmt.Errorf("[input] min_millis_per_input %d: %w", c.Input.MinMillisPerInput, ErrInvalid)
	case c.Input.RepeatDecel < 0:
		return fmt.Errorf("[input] repeat_decel %d: %w", c.Input.RepeatDecel, ErrInvalid)
	case c.Input.HoldWindowMs < 0:
		return fmt.Errorf("[input] hold_window_ms %d: %w", c.Input.HoldWindowMs, ErrInvalid)
	case c.List.VisibleRange < 0:
		return fmt.Errorf("[list] visible_range %d: %w", c.List.VisibleRange, ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("[audio] volume %g: %w", c.Audio.Volume, ErrInvalid)
	}

	sel, err := core.ParseHex(c.List.SelectedColor)
	if err != nil {
		return fmt.Errorf("[list] selected_color %q: %w", c.List.SelectedColor, errors.Join(ErrInvalid, err))
	}
	c.selected = sel

	km := input.DefaultKeymap()
	if km.Horizontal, err = c.Keys.Horizontal.Apply("keys.horizontal", km.Horizontal); err != nil {
		return err
	}
	if km.Vertical, err = c.Keys.Vertical.Apply("keys.vertical", km.Vertical); err != nil {
		return err
	}
	c.keymap = km
	return nil
}

// SelectedColor returns the resolved list highlight
func (c *Config) SelectedColor() core.RGBA { return c.selected }

// Bindings returns the resolved presets for both list orientations
func (c *Config) Bindings() input.Keymap {
	return input.Keymap{
		Horizontal: c.keymap.Horizontal.Clone(),
		Vertical:   c.keymap.Vertical.Clone(),
	}
}

// HoldWindow returns how long a terminal key press counts as held
func (c *Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldWindowMs) * time.Millisecond
}

// ComponentDefaults converts the tunables into node seed values
func (c *Config) ComponentDefaults() component.Defaults {
	km := c.Bindings()
	return component.Defaults{
		PixelsPerSecond:   c.Animation.PixelsPerSecond,
		MillisPerAlpha:    c.Animation.MillisPerAlpha,
		MillisPerScale:    c.Animation.MillisPerScale,
		ImmediateTicks:    c.Animation.ImmediateTicks,
		MillisPerInput:    c.Input.MillisPerInput,
		MinMillisPerInput: c.Input.MinMillisPerInput,
		InputRepeatDecel:  c.Input.RepeatDecel,
		SingleMode:        c.Input.SingleMode,
		VisibleRange:      c.List.VisibleRange,
		SelectedColor:     c.selected,
		Horizontal:        km.Horizontal,
		Vertical:          km.Vertical,
	}
}

// Encode writes the decoded document back out as TOML
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("config encode: %w", err)
	}
	return buf.Bytes(), nil
}
