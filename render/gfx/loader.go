package gfx

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/parameter"
)

// Texture is a GPU image
type Texture struct {
	img *ebiten.Image
}

// NewTexture wraps img
func NewTexture(img *ebiten.Image) *Texture { return &Texture{img: img} }

func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Loader reads PNG textures and TTF faces from Root
// Font paths are "name" or "name:size", where name is mono, regular, bold
// or a file under Root
type Loader struct {
	Root     string
	FontSize float64

	mu      sync.Mutex
	sources map[string]*text.GoTextFaceSource
}

// NewLoader creates a loader rooted at dir
func NewLoader(dir string) *Loader {
	return &Loader{
		Root:     dir,
		FontSize: parameter.GfxFontSize,
		sources:  make(map[string]*text.GoTextFaceSource),
	}
}

// LoadImage decodes a PNG under Root and uploads it
func (l *Loader) LoadImage(path string) (asset.Image, error) {
	img, err := asset.ReadPNG(l.Root, path)
	if err != nil {
		return nil, err
	}
	return NewTexture(ebiten.NewImageFromImage(img)), nil
}

// LoadFont returns a face sized per path, sources are parsed once per name
func (l *Loader) LoadFont(path string) (asset.Font, error) {
	name, size, err := fontSpec(path, l.FontSize)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	src, ok := l.sources[name]
	if !ok {
		if src, err = loadSource(l.Root, name); err != nil {
			return nil, err
		}
		l.sources[name] = src
	}
	return NewFace(src, size), nil
}
