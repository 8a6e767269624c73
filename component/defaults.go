package component

import (
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/parameter"
)

// Defaults seeds every node created by a Tree
// Rates <= 0 snap instead of animating
type Defaults struct {
	PixelsPerSecond int
	MillisPerAlpha  int
	MillisPerScale  int
	ImmediateTicks  int

	MillisPerInput    int
	MinMillisPerInput int
	InputRepeatDecel  int
	SingleMode        bool

	VisibleRange  int
	SelectedColor core.RGBA

	Horizontal input.Bindings
	Vertical   input.Bindings
}

// NewDefaults returns the built-in tunables
func NewDefaults() Defaults {
	return Defaults{
		PixelsPerSecond:   parameter.PixelPerSecond,
		MillisPerAlpha:    parameter.MillisPerAlpha,
		MillisPerScale:    parameter.MillisPerScale,
		ImmediateTicks:    parameter.ImmediateTicks,
		MillisPerInput:    parameter.MillisPerInput,
		MinMillisPerInput: parameter.MinMillisPerInput,
		InputRepeatDecel:  parameter.InputRepeatDecel,
		VisibleRange:      parameter.VisibleRange,
		SelectedColor:     core.Yellow,
		Horizontal:        input.HorizontalBindings(),
		Vertical:          input.VerticalBindings(),
	}
}
