// Package render is the draw boundary of the menu tree
//
// Each frame the tree fills two independently ordered batches: images
// (textures, solid fills) and text. The backend decides how the two are
// composited; cell and pixel backends both paint images first.
package render

import (
	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
)

// ImageBatch receives textured and solid rectangles
type ImageBatch interface {
	Begin()
	// Draw paints img (nil = blank solid texture) into dst tinted by the
	// premultiplied color tint, src selects a sub-rectangle when non-nil
	Draw(img asset.Image, dst core.Rect, src *core.Area, tint core.RGBA)
	End()
}

// TextBatch receives strings
type TextBatch interface {
	Begin()
	// DrawString paints s with its top-left at x,y, scaled and rotated (radians)
	// around that origin
	DrawString(font asset.Font, s string, x, y float64, tint core.RGBA, scale, rotation float64)
	End()
}

// Backend bundles the two batches and the drawable surface size
type Backend interface {
	Images() ImageBatch
	Text() TextBatch
	Size() (w, h int)
}

// Presenter is implemented by backends that own a frame buffer
// Clear starts a frame, Present flushes it to the device
type Presenter interface {
	Clear()
	Present()
}
