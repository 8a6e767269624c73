package cell

import (
	"image"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
)

// Picture is a decoded image sampled per cell
type Picture struct {
	img  image.Image
	w, h int
}

// NewPicture wraps img
func NewPicture(img image.Image) *Picture {
	b := img.Bounds()
	return &Picture{img: img, w: b.Dx(), h: b.Dy()}
}

func (p *Picture) Size() (int, int) { return p.w, p.h }

// At returns the premultiplied pixel at x,y relative to the image origin
func (p *Picture) At(x, y int) core.RGBA {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return core.Transparent
	}
	b := p.img.Bounds()
	r, g, bl, a := p.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return core.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}
}

// modulate multiplies two premultiplied colors channel-wise
func modulate(px, tint core.RGBA) core.RGBA {
	m := func(a, b uint8) uint8 { return uint8((uint16(a)*uint16(b) + 127) / 255) }
	return core.RGBA{R: m(px.R, tint.R), G: m(px.G, tint.G), B: m(px.B, tint.B), A: m(px.A, tint.A)}
}

// Loader reads PNG images from Root, fonts are the cell grid
type Loader struct {
	Root string
	Font asset.Font
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir, Font: asset.MonoFont{CellWidth: 1, CellHeight: 1}}
}

// LoadImage decodes a PNG under Root
func (l *Loader) LoadImage(path string) (asset.Image, error) {
	img, err := asset.ReadPNG(l.Root, path)
	if err != nil {
		return nil, err
	}
	return NewPicture(img), nil
}

// LoadFont ignores path, every string is measured on the grid
func (l *Loader) LoadFont(string) (asset.Font, error) {
	return l.Font, nil
}
