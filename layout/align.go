// Package layout holds the pure alignment rules shared by all container kinds
//
// Children are addressed by their index in the container; order is semantic.
// Left/Top docked children stack from the leading edge in order, Right/Bottom
// docked children stack from the trailing edge in reverse order, and every
// remaining child joins a single centered run.
package layout

import "github.com/lixenwraith/vi-menu/core"

// Siblings exposes the ordered children of a container to the alignment rules
type Siblings interface {
	Len() int
	Size(i int) (w, h int)
	Alignment(i int) (core.HAlignment, core.VAlignment)
}

// Box is a plain sibling record, used where no tree is involved
type Box struct {
	Width, Height int
	H             core.HAlignment
	V             core.VAlignment
}

// Boxes adapts a slice of Box to Siblings
type Boxes []Box

func (b Boxes) Len() int { return len(b) }

func (b Boxes) Size(i int) (int, int) { return b[i].Width, b[i].Height }

func (b Boxes) Alignment(i int) (core.HAlignment, core.VAlignment) { return b[i].H, b[i].V }

// HAlign places child i of a horizontal run inside parent
func HAlign(parent core.Rect, s Siblings, i int) (x, y float64) {
	cw, ch := s.Size(i)
	ha, va := s.Alignment(i)

	switch ha {
	case core.HLeft:
		x = parent.X
		for j := 0; j < i; j++ {
			if h, _ := s.Alignment(j); h == core.HLeft {
				w, _ := s.Size(j)
				x += float64(w)
			}
		}
	case core.HRight:
		x = parent.X + float64(parent.Width-cw)
		for j := i + 1; j < s.Len(); j++ {
			if h, _ := s.Alignment(j); h == core.HRight {
				w, _ := s.Size(j)
				x -= float64(w)
			}
		}
	default:
		lw, rw := 0, 0
		for j := 0; j < s.Len(); j++ {
			if j == i {
				continue
			}
			if h, _ := s.Alignment(j); h == core.HLeft || h == core.HRight {
				continue
			}
			w, _ := s.Size(j)
			if j < i {
				lw += w
			} else {
				rw += w
			}
		}
		x = parent.X + float64(parent.Width)/2 - float64(lw+rw+cw)/2 + float64(lw)
	}

	return x, CrossY(parent, ch, va)
}

// VAlign is the transpose of HAlign
func VAlign(parent core.Rect, s Siblings, i int) (x, y float64) {
	cw, ch := s.Size(i)
	ha, va := s.Alignment(i)

	switch va {
	case core.VTop:
		y = parent.Y
		for j := 0; j < i; j++ {
			if _, v := s.Alignment(j); v == core.VTop {
				_, h := s.Size(j)
				y += float64(h)
			}
		}
	case core.VBottom:
		y = parent.Y + float64(parent.Height-ch)
		for j := i + 1; j < s.Len(); j++ {
			if _, v := s.Alignment(j); v == core.VBottom {
				_, h := s.Size(j)
				y -= float64(h)
			}
		}
	default:
		th, bh := 0, 0
		for j := 0; j < s.Len(); j++ {
			if j == i {
				continue
			}
			if _, v := s.Alignment(j); v == core.VTop || v == core.VBottom {
				continue
			}
			_, h := s.Size(j)
			if j < i {
				th += h
			} else {
				bh += h
			}
		}
		y = parent.Y + float64(parent.Height)/2 - float64(th+bh+ch)/2 + float64(th)
	}

	return CrossX(parent, cw, ha), y
}

// StackAlign docks a child directly against parent, siblings are ignored
func StackAlign(parent core.Rect, w, h int, ha core.HAlignment, va core.VAlignment) (x, y float64) {
	return CrossX(parent, w, ha), CrossY(parent, h, va)
}

// CrossX places a single child of width w horizontally inside parent
func CrossX(parent core.Rect, w int, ha core.HAlignment) float64 {
	switch ha {
	case core.HRight:
		return parent.X + float64(parent.Width-w)
	case core.HLeft:
		return parent.X
	default:
		return parent.X + float64(parent.Width)/2 - float64(w)/2
	}
}

// CrossY places a single child of height h vertically inside parent
func CrossY(parent core.Rect, h int, va core.VAlignment) float64 {
	switch va {
	case core.VBottom:
		return parent.Y + float64(parent.Height-h)
	case core.VTop:
		return parent.Y
	default:
		return parent.Y + float64(parent.Height)/2 - float64(h)/2
	}
}
