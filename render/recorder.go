package render

import (
	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
)

// OpKind tags a recorded draw call
type OpKind uint8

const (
	OpImage OpKind = iota
	OpText
)

// Op is one recorded draw call
type Op struct {
	Kind  OpKind
	Image asset.Image
	Dest  core.Rect
	Src   *core.Area

	Font     asset.Font
	Text     string
	X, Y     float64
	Scale    float64
	Rotation float64

	Tint core.RGBA
}

// Recorder is a Backend that keeps draw calls for inspection
// Draws outside Begin/End are counted in Stray instead of recorded
type Recorder struct {
	Width, Height int

	Ops   []Op
	Stray int

	images recorderImages
	text   recorderText
}

// NewRecorder creates a recorder reporting the given surface size
func NewRecorder(w, h int) *Recorder {
	r := &Recorder{Width: w, Height: h}
	r.images.r = r
	r.text.r = r
	return r
}

func (r *Recorder) Images() ImageBatch { return &r.images }

func (r *Recorder) Text() TextBatch { return &r.text }

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

// Reset drops recorded ops
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Stray = 0
}

// Texts returns recorded strings in draw order
func (r *Recorder) Texts() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

// Rects returns recorded image ops in draw order
func (r *Recorder) Rects() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpImage {
			out = append(out, op)
		}
	}
	return out
}

type recorderImages struct {
	r    *Recorder
	open bool
}

func (b *recorderImages) Begin() { b.open = true }

func (b *recorderImages) End() { b.open = false }

func (b *recorderImages) Draw(img asset.Image, dst core.Rect, src *core.Area, tint core.RGBA) {
	if !b.open {
		b.r.Stray++
		return
	}
	b.r.Ops = append(b.r.Ops, Op{Kind: OpImage, Image: img, Dest: dst, Src: src, Tint: tint})
}

type recorderText struct {
	r    *Recorder
	open bool
}

func (b *recorderText) Begin() { b.open = true }

func (b *recorderText) End() { b.open = false }

func (b *recorderText) DrawString(font asset.Font, s string, x, y float64, tint core.RGBA, scale, rotation float64) {
	if !b.open {
		b.r.Stray++
		return
	}
	b.r.Ops = append(b.r.Ops, Op{
		Kind: OpText, Font: font, Text: s,
		X: x, Y: y, Scale: scale, Rotation: rotation, Tint: tint,
	})
}
