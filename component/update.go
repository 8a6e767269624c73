package component

import (
	"slices"
	"time"

	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/layout"
)

// siblings adapts a child slice to the layout rules using live sizes
type siblings struct {
	t        *Tree
	children []Handle
}

func (s siblings) Len() int { return len(s.children) }

func (s siblings) Size(i int) (int, int) {
	n := s.t.nodes[s.children[i]]
	return n.Width(), n.Height()
}

func (s siblings) Alignment(i int) (core.HAlignment, core.VAlignment) {
	n := s.t.nodes[s.children[i]]
	return n.HAlign, n.VAlign
}

// Update advances the subtree rooted at root by dt
//
// Layout and animation run first: a container resolves its own size, then
// for each child in order sizes it by percentage, places it, and recurses,
// and finally ticks its own animated properties. Sizes used for placement
// are therefore the children's values from the end of the previous tick.
// The input pass follows, pre-order, with snap as the held device state.
func (t *Tree) Update(root Handle, dt time.Duration, snap input.Snapshot) {
	if t.Node(root) == nil {
		return
	}
	ms := float64(dt) / float64(time.Millisecond)
	t.elapsed += dt.Seconds()

	t.updateNode(root, ms, false)
	t.inputNode(root, ms, snap)
}

// Layout resolves sizes and positions of the subtree without animating
// position or scale, alpha still fades on subsequent updates
func (t *Tree) Layout(root Handle) {
	if t.Node(root) == nil {
		return
	}
	passes := t.depth(root) + 2
	for range passes {
		t.updateNode(root, 0, true)
	}
}

func (t *Tree) depth(h Handle) int {
	n := t.nodes[h]
	if n.container == nil {
		return 0
	}
	d := 0
	for _, c := range n.container.children {
		d = max(d, t.depth(c)+1)
	}
	return d
}

func (t *Tree) updateNode(h Handle, ms float64, settle bool) {
	n := t.nodes[h]

	if n.container != nil {
		t.resolveSize(n)

		sib := siblings{t: t, children: n.container.children}
		for i, c := range sib.children {
			cn := t.nodes[c]
			if cn.Managed {
				t.percentSize(n, cn)
				t.place(h, n, sib, i)
				if settle {
					cn.settle()
				}
			}
			t.updateNode(c, ms, settle)
		}
	}

	if settle {
		n.settle()
		return
	}
	if n.item != nil {
		t.updateItem(h, n, ms)
	}
	n.advance(ms)
}

// resolveSize applies root percentages then content-derived dimensions
func (t *Tree) resolveSize(n *Node) {
	cd := n.container
	if n.parent == None {
		if cd.PercentWidth >= 0 {
			n.baseWidth = layout.Percent(cd.PercentWidth, t.viewWidth)
		}
		if cd.PercentHeight >= 0 {
			n.baseHeight = layout.Percent(cd.PercentHeight, t.viewHeight)
		}
	}

	if !n.Managed || (cd.PercentWidth >= 0 && cd.PercentHeight >= 0) {
		return
	}
	w, h, ok := t.contentSize(n)
	if !ok {
		return
	}
	if cd.PercentWidth < 0 {
		n.baseWidth = w
	}
	if cd.PercentHeight < 0 {
		n.baseHeight = h
	}
}

func (t *Tree) contentSize(n *Node) (int, int, bool) {
	sib := siblings{t: t, children: n.container.children}
	switch n.kind {
	case KindHPane:
		w, h := layout.HBoxSize(sib)
		return w, h, true
	case KindVPane:
		w, h := layout.VBoxSize(sib)
		return w, h, true
	case KindStack:
		w, h := layout.StackSize(sib)
		return w, h, true
	case KindList:
		var w, h int
		switch {
		case !n.list.Static:
			w, h = layout.StackSize(sib)
		case n.list.Orientation == Horizontal:
			w, h = layout.HBoxSize(sib)
		default:
			w, h = layout.VBoxSize(sib)
		}
		return w, h, true
	}
	return 0, 0, false
}

// percentSize sizes a container child from its parent's current size
func (t *Tree) percentSize(parent, child *Node) {
	cd := child.container
	if cd == nil {
		return
	}
	if cd.PercentWidth >= 0 {
		child.baseWidth = layout.Percent(cd.PercentWidth, parent.Width())
	}
	if cd.PercentHeight >= 0 {
		child.baseHeight = layout.Percent(cd.PercentHeight, parent.Height())
	}
}

// place applies the layout policy of parent h to child i
func (t *Tree) place(h Handle, n *Node, sib siblings, i int) {
	cn := t.nodes[sib.children[i]]
	r := n.Rect()

	var x, y float64
	switch n.kind {
	case KindHPane:
		x, y = layout.HAlign(r, sib, i)
	case KindVPane:
		x, y = layout.VAlign(r, sib, i)
	case KindStack:
		x, y = layout.StackAlign(r, cn.Width(), cn.Height(), cn.HAlign, cn.VAlign)
	case KindList:
		t.placeListChild(h, n, r, sib, i)
		return
	default:
		return
	}
	cn.SetPosition(x, y)
}

// placeListChild lays out a static list as a row or column; a dynamic list
// centers the selection and chains neighbors edge to edge outward from it
// with scale and effect alpha falling off by distance
func (t *Tree) placeListChild(h Handle, n *Node, r core.Rect, sib siblings, i int) {
	l := n.list
	c := sib.children[i]
	cn := t.nodes[c]
	horizontal := l.Orientation == Horizontal
	sel := l.selected

	if l.Static || sel < 0 || sel >= len(sib.children) {
		var x, y float64
		if horizontal {
			x, y = layout.HAlign(r, sib, i)
		} else {
			x, y = layout.VAlign(r, sib, i)
		}
		cn.SetPosition(x, y)
		return
	}

	if i == sel {
		if horizontal {
			cn.SetPosition(layout.CrossX(r, cn.Width(), core.HCenter), layout.CrossY(r, cn.Height(), cn.VAlign))
		} else {
			cn.SetPosition(layout.CrossX(r, cn.Width(), cn.HAlign), layout.CrossY(r, cn.Height(), core.VCenter))
		}
		t.ApplyScale(c, n.Scale())
		t.ApplyEffectAlpha(c, n.EffectAlpha())
		return
	}

	// Neighbor toward the selection, always in range since i != sel
	toward := i + 1
	if i > sel {
		toward = i - 1
	}
	other := t.nodes[sib.children[toward]]

	if horizontal {
		x := other.X() - float64(cn.Width())
		if i > sel {
			x = other.X() + float64(other.Width())
		}
		cn.SetPosition(x, layout.CrossY(r, cn.Height(), cn.VAlign))
	} else {
		y := other.Y() - float64(cn.Height())
		if i > sel {
			y = other.Y() + float64(other.Height())
		}
		cn.SetPosition(layout.CrossX(r, cn.Width(), cn.HAlign), y)
	}

	f := layout.Falloff(i-sel, l.VisibleRange)
	t.ApplyScale(c, f*n.Scale())
	t.ApplyEffectAlpha(c, f*n.EffectAlpha())
}

// inputNode runs the input pass pre-order
// Children are snapshotted so handlers may restructure the tree
func (t *Tree) inputNode(h Handle, ms float64, snap input.Snapshot) {
	n := t.nodes[h]

	if n.list != nil {
		t.listInput(h, ms, snap)
	}

	if len(n.onKeyPressed) > 0 {
		handlers := slices.Clone(n.onKeyPressed)
		for i, d := range snap.Devices {
			if d == nil {
				continue
			}
			ev := KeyEvent{Node: h, Device: i, State: d}
			for _, fn := range handlers {
				fn(ev)
			}
		}
	}

	if n.container == nil {
		return
	}
	for _, c := range slices.Clone(n.container.children) {
		if t.nodes[c].parent != h {
			continue
		}
		t.inputNode(c, ms, snap)
	}
}
