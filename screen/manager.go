package screen

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/render"
)

// ErrNotManaged is returned when removing a screen the manager does not hold
var ErrNotManaged = errors.New("screen not managed")

// Manager stacks screens bottom to top
// Not safe for concurrent use, the host drives it from one goroutine
type Manager struct {
	backend render.Backend
	loader  asset.Loader

	screens []*Screen

	// inactive hosts (unfocused window) withhold input from every screen
	inactive bool
}

// NewManager creates an empty stack drawing into backend
func NewManager(backend render.Backend, loader asset.Loader) *Manager {
	return &Manager{backend: backend, loader: loader}
}

// Backend returns the draw target
func (m *Manager) Backend() render.Backend { return m.backend }

// SetActive marks whether the host window has focus
func (m *Manager) SetActive(active bool) { m.inactive = !active }

// Screens returns the stack bottom to top
func (m *Manager) Screens() []*Screen { return slices.Clone(m.screens) }

// Len returns the number of screens
func (m *Manager) Len() int { return len(m.screens) }

// Top returns the top-most screen, nil when empty
func (m *Manager) Top() *Screen {
	if len(m.screens) == 0 {
		return nil
	}
	return m.screens[len(m.screens)-1]
}

// Add loads and initializes s and pushes it on top
func (m *Manager) Add(s *Screen) error {
	w, h := m.backend.Size()
	s.tree.SetViewport(w, h)
	s.exiting = false
	s.position = 1
	s.state = StateTransitionOn

	if err := s.Load(m.loader); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	s.Init()
	m.screens = append(m.screens, s)
	log.Printf("[screen] add %q popup=%v depth=%d", s.Name, s.popup, len(m.screens))
	return nil
}

// Remove drops s immediately, use Screen.Exit for a transition
func (m *Manager) Remove(s *Screen) error {
	i := slices.Index(m.screens, s)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", s.Name, ErrNotManaged)
	}
	m.screens = slices.Delete(m.screens, i, i+1)
	s.Unload()
	log.Printf("[screen] remove %q depth=%d", s.Name, len(m.screens))
	return nil
}

// Focused returns the screen receiving input this tick, nil if none
func (m *Manager) Focused() *Screen {
	if m.inactive {
		return nil
	}
	for i := len(m.screens) - 1; i >= 0; i-- {
		s := m.screens[i]
		if s.state == StateTransitionOn || s.state == StateActive {
			return s
		}
	}
	return nil
}

// Update ticks every screen top to bottom
// The first screen transitioning on or active takes focus and snap; a
// non-popup screen covers everything below it
func (m *Manager) Update(dt time.Duration, snap input.Snapshot) error {
	w, h := m.backend.Size()

	otherHasFocus := m.inactive
	covered := false
	var errs []error

	stack := slices.Clone(m.screens)
	for i := len(stack) - 1; i >= 0; i-- {
		s := stack[i]
		s.tree.SetViewport(w, h)

		in := snap
		if otherHasFocus {
			in = input.Snapshot{}
		}
		if err := s.Update(dt, in, otherHasFocus, covered); err != nil {
			errs = append(errs, err)
		}

		if s.state == StateTransitionOn || s.state == StateActive {
			otherHasFocus = true
			if !s.popup {
				covered = true
			}
		}
	}

	for _, s := range stack {
		if s.done() {
			_ = m.Remove(s)
		}
	}
	return errors.Join(errs...)
}

// Draw paints every visible screen bottom to top
func (m *Manager) Draw() {
	p, framed := m.backend.(render.Presenter)
	if framed {
		p.Clear()
	}
	for _, s := range m.screens {
		if s.state == StateHidden {
			continue
		}
		s.Draw(m.backend)
	}
	if framed {
		p.Present()
	}
}
