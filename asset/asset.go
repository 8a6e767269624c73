// Package asset is the resource boundary of the menu tree
//
// Components ask a Loader for images and fonts once per attach. Load failures
// are returned to the caller untouched; nothing here retries or substitutes.
package asset

import "errors"

// ErrNotFound is returned by loaders for paths they cannot resolve
var ErrNotFound = errors.New("asset not found")

// Image is a loaded texture, only its pixel size matters to layout
type Image interface {
	Size() (w, h int)
}

// Font measures strings at scale 1
type Font interface {
	Measure(s string) (w, h int)
}

// Loader resolves resource paths, implemented per render backend
type Loader interface {
	LoadImage(path string) (Image, error)
	LoadFont(path string) (Font, error)
}
