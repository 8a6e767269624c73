package component

import "slices"

// Add appends children to parent in order
// A child owned by another container is moved; adding the same child to
// the same parent twice is allowed and keeps both entries
func (t *Tree) Add(parent Handle, children ...Handle) {
	p := t.Node(parent)
	if p == nil || p.container == nil {
		return
	}

	for _, c := range children {
		n := t.Node(c)
		if n == nil || c == parent || t.isAncestor(c, parent) {
			continue
		}
		if n.parent != None && n.parent != parent {
			t.Remove(n.parent, c)
		}

		n.parent = parent
		n.pos.Immediate(t.defaults.ImmediateTicks)
		p.container.children = append(p.container.children, c)

		if p.attached {
			t.setAttached(c, true)
			if p.loaded && !n.loaded {
				t.pending = true
			}
		}
	}
}

// Remove drops the first occurrence of each child from parent
// Absent children are ignored and the remaining order is kept
func (t *Tree) Remove(parent Handle, children ...Handle) {
	p := t.Node(parent)
	if p == nil || p.container == nil {
		return
	}

	for _, c := range children {
		i := slices.Index(p.container.children, c)
		if i < 0 {
			continue
		}
		p.container.children = slices.Delete(p.container.children, i, i+1)

		if p.list != nil {
			t.shiftSelection(parent, i, c)
		}

		if slices.Contains(p.container.children, c) {
			continue
		}
		n := t.nodes[c]
		n.parent = None
		t.setAttached(c, false)
	}
}

// Children returns a copy of the ordered children of h
func (t *Tree) Children(h Handle) []Handle {
	n := t.Node(h)
	if n == nil || n.container == nil {
		return nil
	}
	return slices.Clone(n.container.children)
}

// Child returns child i of h, None when out of range
func (t *Tree) Child(h Handle, i int) Handle {
	n := t.Node(h)
	if n == nil || n.container == nil || i < 0 || i >= len(n.container.children) {
		return None
	}
	return n.container.children[i]
}

// IndexOf returns the first position of child in h, -1 if absent
func (t *Tree) IndexOf(h, child Handle) int {
	n := t.Node(h)
	if n == nil || n.container == nil {
		return -1
	}
	return slices.Index(n.container.children, child)
}

// Parent returns the owning container of h
func (t *Tree) Parent(h Handle) Handle {
	n := t.Node(h)
	if n == nil {
		return None
	}
	return n.parent
}

// Mount attaches the subtree rooted at h to a screen
func (t *Tree) Mount(root Handle) {
	if t.Node(root) == nil {
		return
	}
	t.walk(root, func(h Handle, n *Node) bool {
		n.pos.Immediate(t.defaults.ImmediateTicks)
		return true
	})
	t.setAttached(root, true)
}

// Unmount detaches the subtree rooted at h, resources must be loaded again
// on the next mount
func (t *Tree) Unmount(root Handle) {
	if t.Node(root) == nil {
		return
	}
	t.setAttached(root, false)
	t.walk(root, func(h Handle, n *Node) bool {
		n.loaded = false
		return true
	})
}

// Pending reports whether nodes were attached to a loaded subtree since
// the last Load
func (t *Tree) Pending() bool {
	return t.pending
}

func (t *Tree) setAttached(root Handle, v bool) {
	t.walk(root, func(h Handle, n *Node) bool {
		n.attached = v
		return true
	})
}

// walk visits the subtree pre-order, fn returning false prunes below a node
func (t *Tree) walk(h Handle, fn func(Handle, *Node) bool) {
	n := t.Node(h)
	if n == nil || !fn(h, n) || n.container == nil {
		return
	}
	for _, c := range n.container.children {
		t.walk(c, fn)
	}
}

func (t *Tree) isAncestor(a, h Handle) bool {
	for cur := t.Parent(h); cur != None; cur = t.Parent(cur) {
		if cur == a {
			return true
		}
	}
	return false
}

// nearestList walks up from h to the first enclosing list, excluding h
func (t *Tree) nearestList(h Handle) Handle {
	for cur := t.Parent(h); cur != None; cur = t.Parent(cur) {
		if t.nodes[cur].list != nil {
			return cur
		}
	}
	return None
}
