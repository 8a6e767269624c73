package component

import (
	"github.com/lixenwraith/vi-menu/anim"
	"github.com/lixenwraith/vi-menu/core"
)

// Node is the flat record shared by every kind
// Capability data is non-nil only for the kinds that use it
type Node struct {
	kind   Kind
	Name   string
	parent Handle

	attached bool
	loaded   bool
	selected bool

	pos         anim.Position
	alpha       anim.Scalar
	scale       anim.Scalar
	effectAlpha anim.Scalar
	effectScale anim.Scalar

	PixelsPerSecond int
	MillisPerAlpha  int
	MillisPerScale  int

	baseWidth  int
	baseHeight int

	HAlign core.HAlignment
	VAlign core.VAlignment

	// Managed nodes are sized and placed by their container
	Managed bool

	// DefaultScale multiplies every scale applied through ApplyScale
	DefaultScale float64

	// Color is the straight-alpha base tint, containers default to transparent
	Color core.RGBA

	// Rotation in radians, passed through to the text batch
	Rotation float64

	container *ContainerData
	list      *ListData
	item      *ItemData
	text      *TextData
	image     *ImageData

	onKeyPressed []func(KeyEvent)
}

func newNode(kind Kind, d *Defaults) *Node {
	return &Node{
		kind:            kind,
		parent:          None,
		alpha:           anim.NewScalar(0, 1),
		scale:           anim.NewScalar(0, 1),
		effectAlpha:     anim.NewScalar(0, 1),
		effectScale:     anim.NewScalar(0, 1),
		PixelsPerSecond: d.PixelsPerSecond,
		MillisPerAlpha:  d.MillisPerAlpha,
		MillisPerScale:  d.MillisPerScale,
		Managed:         true,
		DefaultScale:    1,
		Color:           core.White,
	}
}

// Kind returns the node variant
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the owning container, None for roots and detached nodes
func (n *Node) Parent() Handle { return n.parent }

// Attached reports whether the node is reachable from a mounted root
func (n *Node) Attached() bool { return n.attached }

// Container returns the child-owning capability, nil for leaves
func (n *Node) Container() *ContainerData { return n.container }

// List returns the selection capability, nil for non-lists
func (n *Node) List() *ListData { return n.list }

// Item returns the selection look capability, nil for containers
func (n *Node) Item() *ItemData { return n.item }

// Text returns the text capability, nil for non-text nodes
func (n *Node) Text() *TextData { return n.text }

// Image returns the image capability, nil for non-image nodes
func (n *Node) Image() *ImageData { return n.image }

// X returns the current horizontal position
func (n *Node) X() float64 { return n.pos.X.Current() }

// Y returns the current vertical position
func (n *Node) Y() float64 { return n.pos.Y.Current() }

// TargetX returns the horizontal position being approached
func (n *Node) TargetX() float64 { return n.pos.X.Target() }

// TargetY returns the vertical position being approached
func (n *Node) TargetY() float64 { return n.pos.Y.Target() }

// SetPosition sets the target position
func (n *Node) SetPosition(x, y float64) { n.pos.Set(x, y) }

// SetX sets the horizontal target position
func (n *Node) SetX(x float64) { n.pos.X.Set(x) }

// SetY sets the vertical target position
func (n *Node) SetY(y float64) { n.pos.Y.Set(y) }

// Immediate makes the next n position changes snap
func (n *Node) Immediate(ticks int) { n.pos.Immediate(ticks) }

// Alpha returns current alpha times current effect alpha
func (n *Node) Alpha() float64 { return n.alpha.Current() * n.effectAlpha.Current() }

// SetAlpha sets the target alpha
func (n *Node) SetAlpha(a float64) { n.alpha.Set(a) }

// TargetAlpha returns the alpha being approached
func (n *Node) TargetAlpha() float64 { return n.alpha.Target() }

// EffectAlpha returns the current effect alpha
func (n *Node) EffectAlpha() float64 { return n.effectAlpha.Current() }

// SetEffectAlpha sets the target effect alpha
func (n *Node) SetEffectAlpha(a float64) { n.effectAlpha.Set(a) }

// Scale returns the current scale
func (n *Node) Scale() float64 { return n.scale.Current() }

// SetScale sets the target scale
func (n *Node) SetScale(s float64) { n.scale.Set(s) }

// TargetScale returns the scale being approached
func (n *Node) TargetScale() float64 { return n.scale.Target() }

// EffectScale returns the current effect scale including the selection pulse
func (n *Node) EffectScale() float64 {
	if n.item != nil {
		return n.effectScale.Current() + n.item.scaleMod
	}
	return n.effectScale.Current()
}

// SetEffectScale sets the target effect scale
func (n *Node) SetEffectScale(s float64) { n.effectScale.Set(s) }

// SetDefaultScale sets the default multiplier and targets it directly
func (n *Node) SetDefaultScale(s float64) {
	n.DefaultScale = s
	n.scale.Set(s)
}

// BaseWidth returns the unscaled width, measured for text
func (n *Node) BaseWidth() int {
	if n.text != nil {
		return n.measure().w
	}
	return max(n.baseWidth, 0)
}

// BaseHeight returns the unscaled height, measured for text
func (n *Node) BaseHeight() int {
	if n.text != nil {
		return n.measure().h
	}
	return max(n.baseHeight, 0)
}

// SetSize sets the unscaled size, content-derived and percent dimensions
// of containers are overwritten on the next update
func (n *Node) SetSize(w, h int) {
	n.baseWidth = w
	n.baseHeight = h
}

// Width is the layout width: scaled for leaves, scaled for containers only
// when pinned to a percentage
func (n *Node) Width() int {
	if n.container != nil {
		if n.container.PercentWidth > 0 {
			return int(float64(n.BaseWidth()) * n.Scale())
		}
		return n.BaseWidth()
	}
	return int(float64(n.BaseWidth()) * n.Scale())
}

// Height is the layout height, see Width
func (n *Node) Height() int {
	if n.container != nil {
		if n.container.PercentHeight > 0 {
			return int(float64(n.BaseHeight()) * n.Scale())
		}
		return n.BaseHeight()
	}
	return int(float64(n.BaseHeight()) * n.Scale())
}

// Rect returns the current layout rectangle
func (n *Node) Rect() core.Rect {
	return core.Rect{X: n.X(), Y: n.Y(), Width: n.Width(), Height: n.Height()}
}

type extent struct{ w, h int }

func (n *Node) measure() extent {
	if n.text.font == nil || n.text.Text == "" {
		return extent{}
	}
	w, h := n.text.font.Measure(n.text.Text)
	return extent{w, h}
}

// advance applies one tick of every animated property
func (n *Node) advance(dtMillis float64) {
	n.pos.Advance(dtMillis, n.PixelsPerSecond)
	n.alpha.Advance(dtMillis, n.MillisPerAlpha)
	n.effectAlpha.Advance(dtMillis, n.MillisPerAlpha)
	n.scale.Advance(dtMillis, n.MillisPerScale)
	n.effectScale.Advance(dtMillis, n.MillisPerScale)
}

// settle snaps everything that feeds layout, alpha keeps animating
func (n *Node) settle() {
	n.pos.X.Snap()
	n.pos.Y.Snap()
	n.scale.Snap()
	n.effectScale.Snap()
}
