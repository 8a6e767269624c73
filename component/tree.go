// Package component is the retained menu tree
//
// Nodes live in an arena owned by a Tree and refer to each other by Handle.
// Each node is a flat record tagged with a Kind; containers, lists, and
// leaves add capability data instead of subclassing. The tree is driven
// once per tick from a single goroutine: Update runs the layout and
// animation pass followed by the input pass, then Draw fills the render
// batches. Event handlers run inline and may mutate the tree.
package component

import (
	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/parameter"
)

// Handle is the arena index of a node
type Handle int32

// None is the absent handle
const None Handle = -1

// Tree owns the node arena
type Tree struct {
	defaults Defaults
	nodes    []*Node

	loader  asset.Loader
	pending bool

	viewWidth  int
	viewHeight int

	// Total simulated seconds, drives the selection pulse
	elapsed float64
}

// NewTree creates an empty tree seeded with d
func NewTree(d Defaults) *Tree {
	return &Tree{defaults: d}
}

// Defaults returns the seed values for new nodes
func (t *Tree) Defaults() Defaults {
	return t.defaults
}

// SetDefaults replaces the seed values, existing nodes are untouched
func (t *Tree) SetDefaults(d Defaults) {
	t.defaults = d
}

// SetViewport sets the screen size that root percentages resolve against
func (t *Tree) SetViewport(w, h int) {
	t.viewWidth = w
	t.viewHeight = h
}

// Viewport returns the screen size
func (t *Tree) Viewport() (int, int) {
	return t.viewWidth, t.viewHeight
}

// Elapsed returns total simulated seconds
func (t *Tree) Elapsed() float64 {
	return t.elapsed
}

// Len returns the number of nodes ever created
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the record for h, nil if h is not a node of this tree
func (t *Tree) Node(h Handle) *Node {
	if h < 0 || int(h) >= len(t.nodes) {
		return nil
	}
	return t.nodes[h]
}

func (t *Tree) alloc(n *Node) Handle {
	t.nodes = append(t.nodes, n)
	return Handle(len(t.nodes) - 1)
}

func (t *Tree) newContainer(kind Kind, percent int, children []Handle) Handle {
	n := newNode(kind, &t.defaults)
	n.Color = core.Transparent
	n.container = &ContainerData{PercentWidth: percent, PercentHeight: percent}
	h := t.alloc(n)
	t.Add(h, children...)
	return h
}

// NewContainer creates a plain container: it fills its parent and leaves
// child positions to the caller
func (t *Tree) NewContainer(children ...Handle) Handle {
	return t.newContainer(KindContainer, parameter.PercentFill, children)
}

// NewHPane creates a row sized from its children
func (t *Tree) NewHPane(children ...Handle) Handle {
	return t.newContainer(KindHPane, parameter.PercentFromContent, children)
}

// NewVPane creates a column sized from its children
func (t *Tree) NewVPane(children ...Handle) Handle {
	return t.newContainer(KindVPane, parameter.PercentFromContent, children)
}

// NewStack creates a pane that overlays its children
func (t *Tree) NewStack(children ...Handle) Handle {
	return t.newContainer(KindStack, parameter.PercentFromContent, children)
}

func (t *Tree) newList(o Orientation, children []Handle) Handle {
	n := newNode(KindList, &t.defaults)
	n.Color = core.Transparent
	n.container = &ContainerData{PercentWidth: parameter.PercentFromContent, PercentHeight: parameter.PercentFromContent}
	l := &ListData{
		Orientation:       o,
		Static:            o == Vertical,
		VisibleRange:      t.defaults.VisibleRange,
		SingleMode:        t.defaults.SingleMode,
		SelectedColor:     t.defaults.SelectedColor,
		MillisPerInput:    t.defaults.MillisPerInput,
		MinMillisPerInput: t.defaults.MinMillisPerInput,
		InputRepeatDecel:  t.defaults.InputRepeatDecel,
		selected:          -1,
		interval:          float64(t.defaults.MillisPerInput),
	}
	if o == Horizontal {
		l.Bindings = t.defaults.Horizontal.Clone()
	} else {
		l.Bindings = t.defaults.Vertical.Clone()
	}
	n.list = l
	h := t.alloc(n)
	t.Add(h, children...)
	return h
}

// NewHList creates a dynamic left/right list
func (t *Tree) NewHList(children ...Handle) Handle {
	return t.newList(Horizontal, children)
}

// NewVList creates a static up/down list
func (t *Tree) NewVList(children ...Handle) Handle {
	return t.newList(Vertical, children)
}

// NewText creates a text item, the font is resolved on Load
func (t *Tree) NewText(text, fontFile string) Handle {
	n := newNode(KindText, &t.defaults)
	n.item = &ItemData{}
	n.text = &TextData{Text: text, FontFile: fontFile}
	return t.alloc(n)
}

// NewImage creates an image item, src overrides the texture size when set
func (t *Tree) NewImage(imageFile string, src *core.Area) Handle {
	n := newNode(KindImage, &t.defaults)
	n.item = &ItemData{}
	n.image = &ImageData{ImageFile: imageFile, Source: src}
	n.baseWidth, n.baseHeight = -1, -1
	if src != nil {
		n.baseWidth, n.baseHeight = src.Width, src.Height
	}
	return t.alloc(n)
}

// NewBox creates a solid selectable rectangle
func (t *Tree) NewBox(w, h int) Handle {
	n := newNode(KindBox, &t.defaults)
	n.item = &ItemData{}
	n.baseWidth, n.baseHeight = w, h
	return t.alloc(n)
}
