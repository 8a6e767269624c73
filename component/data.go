package component

import (
	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
)

// Kind tags the node variant
type Kind uint8

const (
	KindContainer Kind = iota
	KindHPane
	KindVPane
	KindStack
	KindList
	KindText
	KindImage
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindHPane:
		return "hpane"
	case KindVPane:
		return "vpane"
	case KindStack:
		return "stack"
	case KindList:
		return "list"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindBox:
		return "box"
	}
	return "unknown"
}

// Orientation is the main axis of a list
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// ContainerData is carried by every node that owns children
type ContainerData struct {
	children []Handle

	// Percentage of the parent (or screen, for roots) size
	// Negative derives the dimension from children
	PercentWidth  int
	PercentHeight int

	// Background texture, empty draws a solid fill
	TextureFile string
	texture     asset.Image
}

// Len returns the child count
func (c *ContainerData) Len() int {
	return len(c.children)
}

// ListData is the selection and input state of a list
type ListData struct {
	Orientation Orientation

	// Static shows every child, dynamic shows the selection plus a fading
	// neighborhood of VisibleRange entries per side
	Static       bool
	VisibleRange int

	// Circular wraps next/previous navigation at the ends
	Circular bool

	// SingleMode ignores a held control after it fired until released
	SingleMode bool

	SelectedColor core.RGBA
	Bindings      input.Bindings

	MillisPerInput    int
	MinMillisPerInput int
	InputRepeatDecel  int

	selected   int
	focused    bool
	inputTimer float64
	interval   float64
	latched    []input.Trigger

	onSelected   []func(SelectedEvent)
	onDeselected []func(SelectedEvent)
	onAction     []func(SelectedEvent)
	onCancel     []func(CancelEvent)
}

// ItemData is the selection look of a leaf
type ItemData struct {
	// SecondaryColor replaces the node color while selected
	// Zero value defers to the nearest list's SelectedColor
	SecondaryColor core.RGBA

	fade     float64
	scaleMod float64
}

// Fade returns the selection fade in [0, 1]
func (d *ItemData) Fade() float64 {
	return d.fade
}

// TextData is a font-measured string
type TextData struct {
	Text     string
	FontFile string
	font     asset.Font
}

// SetFont installs an already loaded font, Load will not replace it
func (d *TextData) SetFont(f asset.Font) {
	d.font = f
}

// ImageData is a texture with an optional source rectangle
type ImageData struct {
	ImageFile string
	Source    *core.Area
	image     asset.Image
}
