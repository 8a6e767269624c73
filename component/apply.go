package component

// ApplyAlpha sets the target alpha of h and every descendant
func (t *Tree) ApplyAlpha(h Handle, alpha float64) {
	t.walk(h, func(_ Handle, n *Node) bool {
		n.alpha.Set(alpha)
		return true
	})
}

// ApplyScale sets the target scale of h and every descendant, each
// multiplied by its own DefaultScale
func (t *Tree) ApplyScale(h Handle, scale float64) {
	t.walk(h, func(_ Handle, n *Node) bool {
		n.scale.Set(scale * n.DefaultScale)
		return true
	})
}

// ApplyEffectAlpha sets the target effect alpha of h and every descendant
func (t *Tree) ApplyEffectAlpha(h Handle, alpha float64) {
	t.walk(h, func(_ Handle, n *Node) bool {
		n.effectAlpha.Set(alpha)
		return true
	})
}

// ApplyEffectScale sets the target effect scale of h and every descendant
func (t *Tree) ApplyEffectScale(h Handle, scale float64) {
	t.walk(h, func(_ Handle, n *Node) bool {
		n.effectScale.Set(scale)
		return true
	})
}
