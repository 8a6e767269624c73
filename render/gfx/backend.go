// Package gfx renders the menu tree into an ebiten window
//
// One layout unit is one pixel. Images and solid fills are drawn as
// textured quads scaled to their destination with the premultiplied tint as
// color scale; strings go through text/v2 faces and honor scale and
// rotation. Game adapts an engine.Loop to ebiten.RunGame.
package gfx

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/parameter"
	"github.com/lixenwraith/vi-menu/render"
)

// Backend implements render.Backend and render.Presenter over the frame
// ebiten hands to Game.Draw
type Backend struct {
	target *ebiten.Image
	width  int
	height int

	ClearColor core.RGBA

	images imageBatch
	text   textBatch
}

// New creates a backend for a window of the given size
func New(width, height int) *Backend {
	bg, err := core.ParseHex(parameter.GfxClearHex)
	if err != nil {
		bg = core.Black
	}
	return &Backend{width: width, height: height, ClearColor: bg}
}

// SetTarget points both batches at the frame being drawn, nil between frames
func (b *Backend) SetTarget(img *ebiten.Image) {
	b.target = img
	b.images.target = img
	b.text.target = img
}

// Resize sets the logical surface size
func (b *Backend) Resize(width, height int) {
	b.width = width
	b.height = height
}

func (b *Backend) Images() render.ImageBatch { return &b.images }

func (b *Backend) Text() render.TextBatch { return &b.text }

func (b *Backend) Size() (int, int) { return b.width, b.height }

// Clear fills the frame with ClearColor
func (b *Backend) Clear() {
	if b.target == nil {
		return
	}
	c := b.ClearColor
	b.target.Fill(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// Present is a no-op, ebiten presents when Draw returns
func (b *Backend) Present() {}

// blank is a white texel taken from the middle of a larger image so linear
// filtering never samples the transparent border
var blank = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// colorScale converts a premultiplied tint, which is what ebiten expects
func colorScale(tint core.RGBA) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255, float32(tint.A)/255)
	return cs
}

type imageBatch struct {
	target *ebiten.Image
	open   bool
}

func (ib *imageBatch) Begin() { ib.open = true }

func (ib *imageBatch) End() { ib.open = false }

// Draw stretches img, or the src part of it, over dst
func (ib *imageBatch) Draw(img asset.Image, dst core.Rect, src *core.Area, tint core.RGBA) {
	if !ib.open || ib.target == nil || tint.IsTransparent() || dst.Width <= 0 || dst.Height <= 0 {
		return
	}

	tex := blank()
	if t, ok := img.(*Texture); ok && t != nil {
		tex = t.img
		if src != nil {
			tex = tex.SubImage(image.Rect(src.X, src.Y, src.X+src.Width, src.Y+src.Height)).(*ebiten.Image)
		}
	}
	sw, sh := tex.Bounds().Dx(), tex.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Width)/float64(sw), float64(dst.Height)/float64(sh))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale = colorScale(tint)
	ib.target.DrawImage(tex, op)
}

type textBatch struct {
	target *ebiten.Image
	open   bool
}

func (tb *textBatch) Begin() { tb.open = true }

func (tb *textBatch) End() { tb.open = false }

// DrawString scales then rotates s around its top-left corner
func (tb *textBatch) DrawString(font asset.Font, s string, x, y float64, tint core.RGBA, scale, rotation float64) {
	f, ok := font.(*Face)
	if !ok || !tb.open || tb.target == nil || tint.IsTransparent() || scale <= 0 {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	op.ColorScale = colorScale(tint)
	op.LineSpacing = f.LineSpacing()
	text.Draw(tb.target, s, f.face, op)
}
