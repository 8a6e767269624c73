package component

import (
	"fmt"

	"github.com/lixenwraith/vi-menu/asset"
)

// Load resolves resources for every unloaded node of the subtree
// The loader is kept for nodes attached later; the first failure aborts
// and is returned wrapped with the node that needed it
func (t *Tree) Load(root Handle, loader asset.Loader) error {
	if t.Node(root) == nil {
		return nil
	}
	if loader != nil {
		t.loader = loader
	}
	if t.loader == nil {
		return fmt.Errorf("load subtree %d: no loader: %w", root, asset.ErrNotFound)
	}

	var err error
	t.walk(root, func(h Handle, n *Node) bool {
		if err != nil {
			return false
		}
		if !n.loaded {
			if err = t.loadNode(n); err != nil {
				err = fmt.Errorf("load %s %d: %w", n.kind, h, err)
				return false
			}
			n.loaded = true
		}
		return true
	})
	if err != nil {
		return err
	}
	t.pending = false
	return nil
}

func (t *Tree) loadNode(n *Node) error {
	switch {
	case n.container != nil:
		n.container.texture = nil
		if n.container.TextureFile != "" {
			img, err := t.loader.LoadImage(n.container.TextureFile)
			if err != nil {
				return err
			}
			n.container.texture = img
		}

	case n.text != nil:
		if n.text.font == nil {
			f, err := t.loader.LoadFont(n.text.FontFile)
			if err != nil {
				return err
			}
			n.text.font = f
		}

	case n.image != nil:
		img, err := t.loader.LoadImage(n.image.ImageFile)
		if err != nil {
			return err
		}
		n.image.image = img
		if src := n.image.Source; src != nil {
			n.baseWidth, n.baseHeight = src.Width, src.Height
			break
		}
		w, h := img.Size()
		if n.baseWidth < 0 {
			n.baseWidth = w
		}
		if n.baseHeight < 0 {
			n.baseHeight = h
		}
	}
	return nil
}

// Init settles the layout of the subtree so the first frame does not
// slide in from the origin
func (t *Tree) Init(root Handle) {
	t.Layout(root)
}
