package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-menu/core"
)

// Cell is one terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB

	// cont marks the right half of a wide rune
	cont bool
}

// Canvas is a compositor over a cell array with touched tracking
// Cells whose background was never painted take Background on flush
type Canvas struct {
	cells   []Cell
	touched []bool
	width   int
	height  int

	Background core.RGB
	Foreground core.RGB
}

// NewCanvas creates a cleared canvas
func NewCanvas(width, height int, background core.RGB) *Canvas {
	c := &Canvas{Background: background, Foreground: core.RGB{R: 255, G: 255, B: 255}}
	c.Resize(width, height)
	return c
}

// Size returns the canvas dimensions in cells
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize adjusts dimensions, reallocates only if capacity is insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
		c.touched = make([]bool, size)
	} else {
		c.cells = c.cells[:size]
		c.touched = c.touched[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets all cells using exponential copy
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = Cell{Fg: c.Foreground, Bg: c.Background}
	c.touched[0] = false
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the cell at x,y with the resolved background, zero if outside
func (c *Canvas) At(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	idx := y*c.width + x
	cell := c.cells[idx]
	if !c.touched[idx] {
		cell.Bg = c.Background
	}
	return cell
}

// Fill composites the premultiplied tint over the cell background
func (c *Canvas) Fill(x, y int, tint core.RGBA) {
	if !c.inBounds(x, y) || tint.IsTransparent() {
		return
	}
	idx := y*c.width + x
	dst := c.cells[idx].Bg
	if !c.touched[idx] {
		dst = c.Background
	}
	c.cells[idx].Bg = over(dst, tint)
	c.touched[idx] = true
}

// Print writes r in fg faded toward the cell background by alpha
// Returns the number of columns used
func (c *Canvas) Print(x, y int, r rune, width int, fg core.RGB, alpha float64) int {
	if width <= 0 {
		return 0
	}
	if !c.inBounds(x, y) {
		return width
	}
	idx := y*c.width + x
	bg := c.cells[idx].Bg
	if !c.touched[idx] {
		bg = c.Background
	}

	dst := &c.cells[idx]
	if dst.cont && x > 0 {
		// overwriting the right half orphans the wide head
		c.cells[idx-1].Rune = 0
	}
	dst.Rune = r
	dst.Fg = core.BlendLab(bg, fg, alpha)
	dst.cont = false

	if c.inBounds(x+1, y) {
		next := &c.cells[idx+1]
		switch {
		case width == 2:
			next.Rune = 0
			next.cont = true
		case next.cont:
			next.cont = false
		}
	}
	return width
}

// Flush writes the canvas to screen, untouched cells get the background
func (c *Canvas) Flush(s tcell.Screen) {
	for y := range c.height {
		for x := range c.width {
			idx := y*c.width + x
			cell := c.cells[idx]
			if cell.cont {
				continue
			}
			bg := cell.Bg
			if !c.touched[idx] {
				bg = c.Background
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Fg)).
				Background(toTcell(bg))
			s.SetContent(x, y, r, nil, style)
		}
	}
}

// over is premultiplied source-over: src + dst*(1-srcAlpha)
func over(dst core.RGB, src core.RGBA) core.RGB {
	inv := 1 - src.Alpha()
	ch := func(s, d uint8) uint8 {
		return uint8(min(float64(s)+float64(d)*inv+0.5, 255))
	}
	return core.RGB{R: ch(src.R, dst.R), G: ch(src.G, dst.G), B: ch(src.B, dst.B)}
}

// straight undoes premultiplication
func straight(c core.RGBA) (core.RGB, float64) {
	a := c.Alpha()
	if a <= 0 {
		return core.RGBBlack, 0
	}
	un := func(v uint8) uint8 { return uint8(min(float64(v)/a+0.5, 255)) }
	return core.RGB{R: un(c.R), G: un(c.G), B: un(c.B)}, a
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
