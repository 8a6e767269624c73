package main

import (
	"time"

	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/screen"
)

// host adapts the screen manager to engine.Host
// Escape or the gamepad back button on slot 0 ends the program
type host struct {
	manager *screen.Manager
	sample  func() input.Snapshot
	quit    func()
}

func (h *host) Update(dt time.Duration) error {
	snap := h.sample()
	if d := snap.Device(0); d != nil && (d.IsKeyDown(input.KeyEscape) || d.IsButtonDown(input.ButtonBack)) {
		h.quit()
		return nil
	}
	return h.manager.Update(dt, snap)
}

func (h *host) Draw() {
	h.manager.Draw()
}
