// Package cell renders the menu tree into a terminal through tcell
//
// One layout unit is one cell. Solid fills and images paint cell
// backgrounds, text paints runes over them. Text cannot scale in a grid, so
// scaled strings are clipped to their scaled width and hidden below
// parameter.CellMinTextScale; rotation is ignored.
package cell

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/parameter"
	"github.com/lixenwraith/vi-menu/render"
)

// Backend implements render.Backend and render.Presenter over a tcell screen
type Backend struct {
	screen tcell.Screen
	canvas *Canvas

	images imageBatch
	text   textBatch
}

// New creates a backend on the controlling terminal
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a backend over an existing screen (for testing)
func NewWithScreen(screen tcell.Screen) *Backend {
	bg, err := core.ParseHex(parameter.CellBackgroundHex)
	if err != nil {
		bg = core.Black
	}
	b := &Backend{
		screen: screen,
		canvas: NewCanvas(0, 0, bg.RGB()),
	}
	b.images.canvas = b.canvas
	b.text.canvas = b.canvas
	return b
}

// Init initializes the screen and sizes the canvas
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	b.screen.HideCursor()
	b.screen.EnableFocus()
	b.Sync()
	return nil
}

// Fini restores the terminal
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Screen returns the underlying tcell screen
func (b *Backend) Screen() tcell.Screen { return b.screen }

// Canvas returns the compositing buffer
func (b *Backend) Canvas() *Canvas { return b.canvas }

// Sync matches the canvas to the terminal size, call on resize events
func (b *Backend) Sync() {
	w, h := b.screen.Size()
	if cw, ch := b.canvas.Size(); cw != w || ch != h {
		b.canvas.Resize(w, h)
	}
}

func (b *Backend) Images() render.ImageBatch { return &b.images }

func (b *Backend) Text() render.TextBatch { return &b.text }

func (b *Backend) Size() (int, int) { return b.canvas.Size() }

// Clear starts a frame
func (b *Backend) Clear() { b.canvas.Clear() }

// Present flushes the frame to the terminal
func (b *Backend) Present() {
	b.canvas.Flush(b.screen)
	b.screen.Show()
}

type imageBatch struct {
	canvas *Canvas
	open   bool
}

func (ib *imageBatch) Begin() { ib.open = true }

func (ib *imageBatch) End() { ib.open = false }

// Draw paints dst, sampling img per cell when it carries pixels
func (ib *imageBatch) Draw(img asset.Image, dst core.Rect, src *core.Area, tint core.RGBA) {
	if !ib.open || tint.IsTransparent() || dst.Width <= 0 || dst.Height <= 0 {
		return
	}
	x0 := int(math.Round(dst.X))
	y0 := int(math.Round(dst.Y))

	pic, ok := img.(*Picture)
	if !ok {
		for y := range dst.Height {
			for x := range dst.Width {
				ib.canvas.Fill(x0+x, y0+y, tint)
			}
		}
		return
	}

	area := core.Area{Width: pic.w, Height: pic.h}
	if src != nil {
		area = *src
	}
	for y := range dst.Height {
		sy := area.Y + y*area.Height/dst.Height
		for x := range dst.Width {
			sx := area.X + x*area.Width/dst.Width
			ib.canvas.Fill(x0+x, y0+y, modulate(pic.At(sx, sy), tint))
		}
	}
}

type textBatch struct {
	canvas *Canvas
	open   bool
}

func (tb *textBatch) Begin() { tb.open = true }

func (tb *textBatch) End() { tb.open = false }

// DrawString prints s from the cell at x,y, clipped to its scaled width
func (tb *textBatch) DrawString(font asset.Font, s string, x, y float64, tint core.RGBA, scale, rotation float64) {
	if !tb.open || tint.IsTransparent() || scale < parameter.CellMinTextScale {
		return
	}
	fg, alpha := straight(tint)

	full := runewidth.StringWidth(s)
	if font != nil {
		full, _ = font.Measure(s)
	}
	cols := int(math.Ceil(float64(full) * min(scale, 1)))

	col := int(math.Round(x))
	row := int(math.Round(y))
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > cols {
			break
		}
		used += tb.canvas.Print(col+used, row, r, w, fg, alpha)
	}
}
