package gfx

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-menu/engine"
	"github.com/lixenwraith/vi-menu/parameter"
)

// Game adapts a loop to ebiten.Game
// Updates run through the loop so posted work and the fixed step behave as
// in the terminal host; draws go straight to the host with the frame bound
type Game struct {
	backend *Backend
	loop    *engine.Loop
	host    engine.Host
	quit    atomic.Bool
}

// NewGame binds loop and its host to backend
func NewGame(backend *Backend, loop *engine.Loop, host engine.Host) *Game {
	return &Game{backend: backend, loop: loop, host: host}
}

// Quit ends RunGame after the current update, safe from any goroutine
func (g *Game) Quit() { g.quit.Store(true) }

func (g *Game) Update() error {
	if g.quit.Load() {
		return ebiten.Termination
	}
	return g.loop.Advance()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.SetTarget(screen)
	g.host.Draw()
	g.backend.SetTarget(nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until Quit or the window closes
func (g *Game) Run() error {
	w, h := g.backend.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(parameter.GfxWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps(g.loop.Interval))
	return ebiten.RunGame(g)
}

// tps matches ebiten's update rate to the loop interval
func tps(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(time.Second/interval), 1)
}
