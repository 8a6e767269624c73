package cell

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/core"
	"github.com/lixenwraith/vi-menu/input"
)

// fakeScreen records SetContent calls, everything else panics if reached
type fakeScreen struct {
	tcell.Screen
	w, h  int
	runes map[[2]int]rune
	shown int
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{w: w, h: h, runes: make(map[[2]int]rune)}
}

func (f *fakeScreen) Size() (int, int) { return f.w, f.h }

func (f *fakeScreen) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	f.runes[[2]int{x, y}] = r
}

func (f *fakeScreen) Show() { f.shown++ }

var black = core.RGB{}

func TestCanvasFillComposites(t *testing.T) {
	c := NewCanvas(4, 2, black)

	c.Fill(0, 0, core.White)
	assert.Equal(t, core.RGB{R: 255, G: 255, B: 255}, c.At(0, 0).Bg)

	// half-transparent premultiplied red over black
	c.Fill(1, 0, core.Red.Scale(0.5))
	assert.Equal(t, core.RGB{R: 127}, c.At(1, 0).Bg)

	// second layer over the first
	c.Fill(1, 0, core.Red.Scale(0.5))
	assert.Equal(t, core.RGB{R: 191}, c.At(1, 0).Bg)

	// straight translucent color premultiplied before compositing
	c.Fill(3, 0, core.RGBA{R: 200, A: 128}.Premultiply())
	assert.Equal(t, core.RGB{R: 100}, c.At(3, 0).Bg)

	c.Fill(9, 9, core.White)
	c.Fill(2, 0, core.Transparent)
	assert.Equal(t, black, c.At(2, 0).Bg)
	assert.Equal(t, Cell{}, c.At(9, 9))
}

func TestCanvasPrintFadesAgainstBackground(t *testing.T) {
	c := NewCanvas(4, 1, black)
	white := core.RGB{R: 255, G: 255, B: 255}

	assert.Equal(t, 1, c.Print(0, 0, 'a', 1, white, 1))
	assert.Equal(t, 'a', c.At(0, 0).Rune)
	assert.Equal(t, white, c.At(0, 0).Fg)

	c.Print(1, 0, 'b', 1, white, 0)
	assert.Equal(t, black, c.At(1, 0).Fg)

	c.Print(2, 0, 'c', 1, white, 0.5)
	fg := c.At(2, 0).Fg
	assert.Greater(t, fg.R, uint8(0))
	assert.Less(t, fg.R, uint8(255))
}

func TestCanvasWideRune(t *testing.T) {
	c := NewCanvas(3, 1, black)
	assert.Equal(t, 2, c.Print(0, 0, '世', 2, core.RGB{R: 255}, 1))

	s := newFakeScreen(3, 1)
	c.Flush(s)
	assert.Equal(t, '世', s.runes[[2]int{0, 0}])
	_, written := s.runes[[2]int{1, 0}]
	assert.False(t, written, "continuation cell must not be written")
	assert.Equal(t, ' ', s.runes[[2]int{2, 0}])

	// narrow rune over the head frees the right half
	c.Print(0, 0, 'a', 1, core.RGB{R: 255}, 1)
	s = newFakeScreen(3, 1)
	c.Flush(s)
	assert.Equal(t, 'a', s.runes[[2]int{0, 0}])
	assert.Equal(t, ' ', s.runes[[2]int{1, 0}])

	// narrow rune over the right half blanks the head
	c.Print(1, 0, '世', 2, core.RGB{R: 255}, 1)
	c.Print(2, 0, 'b', 1, core.RGB{R: 255}, 1)
	s = newFakeScreen(3, 1)
	c.Flush(s)
	assert.Equal(t, ' ', s.runes[[2]int{1, 0}])
	assert.Equal(t, 'b', s.runes[[2]int{2, 0}])
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(2, 2, black)
	c.Fill(0, 0, core.White)
	c.Resize(3, 1)
	w, h := c.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, black, c.At(0, 0).Bg)
}

func TestBackendDrawsBatches(t *testing.T) {
	s := newFakeScreen(10, 3)
	b := NewWithScreen(s)
	b.Sync()
	w, h := b.Size()
	require.Equal(t, 10, w)
	require.Equal(t, 3, h)

	font := asset.MonoFont{CellWidth: 1, CellHeight: 1}
	b.Clear()
	b.Images().Begin()
	b.Text().Begin()
	b.Images().Draw(nil, core.Rect{X: 0, Y: 0, Width: 10, Height: 1}, nil, core.Green)
	b.Text().DrawString(font, "Hi", 1, 0, core.White, 1, 0)
	b.Text().DrawString(font, "Gone", 1, 1, core.White, 0.25, 0)
	b.Text().DrawString(font, "Half", 1, 2, core.White, 0.5, 0)
	b.Images().End()
	b.Text().End()
	b.Present()

	assert.Equal(t, 1, s.shown)
	assert.Equal(t, 'H', s.runes[[2]int{1, 0}])
	assert.Equal(t, 'i', s.runes[[2]int{2, 0}])
	assert.Equal(t, core.Green.RGB(), b.Canvas().At(5, 0).Bg)

	assert.Equal(t, ' ', s.runes[[2]int{1, 1}])
	assert.Equal(t, 'H', s.runes[[2]int{1, 2}])
	assert.Equal(t, 'a', s.runes[[2]int{2, 2}])
	assert.Equal(t, ' ', s.runes[[2]int{3, 2}])
}

func TestBackendIgnoresDrawsOutsideBatch(t *testing.T) {
	b := NewWithScreen(newFakeScreen(4, 1))
	b.Sync()
	b.Images().Draw(nil, core.Rect{Width: 4, Height: 1}, nil, core.White)
	assert.Equal(t, b.Canvas().Background, b.Canvas().At(0, 0).Bg)
}

func TestPictureSampling(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := range 2 {
		for y := range 2 {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
			img.Set(x+2, y, color.RGBA{B: 255, A: 255})
		}
	}

	b := NewWithScreen(newFakeScreen(4, 1))
	b.Sync()
	b.Images().Begin()
	// right half of the picture stretched over two cells
	b.Images().Draw(NewPicture(img), core.Rect{Width: 2, Height: 1}, &core.Area{X: 2, Width: 2, Height: 2}, core.White)
	// whole picture into one cell tinted half
	b.Images().Draw(NewPicture(img), core.Rect{X: 3, Width: 1, Height: 1}, nil, core.White.Scale(0.5))
	b.Images().End()

	assert.Equal(t, core.RGB{B: 255}, b.Canvas().At(0, 0).Bg)
	assert.Equal(t, core.RGB{B: 255}, b.Canvas().At(1, 0).Bg)

	bg := b.Canvas().Background
	got := b.Canvas().At(3, 0).Bg
	assert.InDelta(t, 128+int(bg.R)/2, int(got.R), 2)
}

func TestLoaderReadsPNG(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))

	f, err := os.Create(filepath.Join(dir, "images", "thumb.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 8))))
	require.NoError(t, f.Close())

	l := NewLoader(dir)
	img, err := l.LoadImage("images/thumb")
	require.NoError(t, err)
	w, h := img.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 8, h)

	_, err = l.LoadImage("images/absent")
	assert.ErrorIs(t, err, asset.ErrNotFound)

	font, err := l.LoadFont("anything")
	require.NoError(t, err)
	fw, fh := font.Measure("abc")
	assert.Equal(t, 3, fw)
	assert.Equal(t, 1, fh)
}

func TestKeyboardHoldWindow(t *testing.T) {
	k := NewKeyboard(80 * time.Millisecond)
	t0 := time.Unix(0, 0)

	k.Press(input.KeyDown, t0)
	assert.True(t, k.Snapshot(t0.Add(50*time.Millisecond)).Device(0).IsKeyDown(input.KeyDown))

	// autorepeat extends the hold
	k.Press(input.KeyDown, t0.Add(60*time.Millisecond))
	assert.True(t, k.Snapshot(t0.Add(120*time.Millisecond)).Device(0).IsKeyDown(input.KeyDown))
	assert.False(t, k.Snapshot(t0.Add(200*time.Millisecond)).Device(0).IsKeyDown(input.KeyDown))

	assert.Equal(t, SignalResize, k.Handle(tcell.NewEventResize(80, 24), t0))
}
