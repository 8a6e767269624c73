package component

import (
	"math"

	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/parameter"
)

// SetSelected sets the selection flag of h directly, used to mirror a
// list selection onto nodes nested below the selected child
func (t *Tree) SetSelected(h Handle, selected bool) {
	if n := t.Node(h); n != nil {
		n.selected = selected
	}
}

// IsSelected reports the selection flag of h gated by the effective focus
// of its nearest enclosing list, if any
func (t *Tree) IsSelected(h Handle) bool {
	n := t.Node(h)
	if n == nil || !n.selected {
		return false
	}
	if l := t.nearestList(h); l != None {
		return t.EffectiveFocus(l)
	}
	return true
}

// SecondaryColor resolves the selected tint of h
func (t *Tree) SecondaryColor(h Handle) core.RGBA {
	n := t.Node(h)
	if n != nil && n.item != nil && n.item.SecondaryColor != core.Transparent {
		return n.item.SecondaryColor
	}
	if l := t.nearestList(h); l != None {
		return t.nodes[l].list.SelectedColor
	}
	return t.defaults.SelectedColor
}

// Color is the premultiplied draw tint of h: the straight base or
// secondary color premultiplied by its own alpha, then by the effective alpha
func (t *Tree) Color(h Handle) core.RGBA {
	n := t.Node(h)
	if n == nil {
		return core.Transparent
	}
	c := n.Color
	if n.item != nil && t.IsSelected(h) {
		c = t.SecondaryColor(h)
	}
	return c.Premultiply().Scale(n.Alpha())
}

// updateItem ramps the selection fade and recomputes the pulse
func (t *Tree) updateItem(h Handle, n *Node, dtMillis float64) {
	d := n.item
	step := parameter.SelectionFadePerSecond * dtMillis / 1000
	if t.IsSelected(h) {
		d.fade = min(d.fade+step, 1)
	} else {
		d.fade = max(d.fade-step, 0)
	}

	pulse := math.Sin(t.elapsed*parameter.PulseFrequency) + 1
	d.scaleMod = pulse * parameter.PulseAmplitude * d.fade
}
