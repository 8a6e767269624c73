package component

import (
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/render"
)

// Draw paints the subtree pre-order into the backend batches
// Later children paint over earlier ones; fully transparent tints are skipped
func (t *Tree) Draw(root Handle, b render.Backend) {
	if t.Node(root) == nil {
		return
	}
	images, text := b.Images(), b.Text()
	images.Begin()
	text.Begin()
	t.drawNode(root, images, text)
	images.End()
	text.End()
}

func (t *Tree) drawNode(h Handle, images render.ImageBatch, text render.TextBatch) {
	n := t.nodes[h]
	tint := t.Color(h)

	switch {
	case n.container != nil:
		if !tint.IsTransparent() {
			images.Draw(n.container.texture, n.Rect(), nil, tint)
		}
		for _, c := range n.container.children {
			t.drawNode(c, images, text)
		}

	case n.text != nil:
		if tint.IsTransparent() || n.text.font == nil || n.text.Text == "" {
			return
		}
		x, y := effectOrigin(n)
		text.DrawString(n.text.font, n.text.Text, x, y, tint, n.Scale()*n.EffectScale(), n.Rotation)

	case n.image != nil:
		if tint.IsTransparent() || n.image.image == nil {
			return
		}
		images.Draw(n.image.image, effectRect(n), n.image.Source, tint)

	default:
		if !tint.IsTransparent() {
			images.Draw(nil, effectRect(n), nil, tint)
		}
	}
}

// effectOrigin shifts the origin so effect scale grows away from the
// alignment anchor
func effectOrigin(n *Node) (float64, float64) {
	es := n.EffectScale()
	w, h := float64(n.Width()), float64(n.Height())
	dx, dy := w*es-w, h*es-h

	x := n.X()
	switch n.HAlign {
	case core.HLeft:
	case core.HRight:
		x -= dx
	default:
		x -= dx / 2
	}

	y := n.Y()
	switch n.VAlign {
	case core.VTop:
	case core.VBottom:
		y -= dy
	default:
		y -= dy / 2
	}
	return x, y
}

// effectRect is the layout rect grown by effect scale around the anchor
func effectRect(n *Node) core.Rect {
	x, y := effectOrigin(n)
	es := n.EffectScale()
	return core.Rect{
		X:      x,
		Y:      y,
		Width:  int(float64(n.Width()) * es),
		Height: int(float64(n.Height()) * es),
	}
}
