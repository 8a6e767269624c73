// Package screen hosts menu trees
//
// A Screen owns one root of a component.Tree and drives its lifecycle:
// load, init, per-tick update, and draw. A Manager stacks screens, gives
// input to the top-most one that is not transitioning off, and runs the
// on and off transitions. Popups (dialogs) leave the screens below them
// visible but without focus.
package screen

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-menu/asset"
	"github.com/lixenwraith/vi-menu/component"
	"github.com/lixenwraith/vi-menu/input"
	"github.com/lixenwraith/vi-menu/render"
)

// State is the transition phase of a screen
type State uint8

const (
	StateTransitionOn State = iota
	StateActive
	StateTransitionOff
	StateHidden
)

func (s State) String() string {
	switch s {
	case StateTransitionOn:
		return "transition_on"
	case StateActive:
		return "active"
	case StateTransitionOff:
		return "transition_off"
	case StateHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Screen is one root of a tree plus its transition state
type Screen struct {
	Name string

	// Loader overrides the manager loader when set
	Loader asset.Loader

	// Backdrop screens stay on and keep animating under other screens,
	// they still only see input while focused
	Backdrop bool

	tree *component.Tree
	root component.Handle

	popup   bool
	onTime  time.Duration
	offTime time.Duration

	// 1 is fully off, 0 fully on
	position float64
	state    State
	exiting  bool

	alpha float64
}

// New creates a full screen over root, transitions are instant
func New(tree *component.Tree, root component.Handle) *Screen {
	return &Screen{
		tree:     tree,
		root:     root,
		position: 1,
		alpha:    1,
	}
}

// NewDialog creates a popup screen whose transitions last as long as the
// root takes to fade
func NewDialog(tree *component.Tree, root component.Handle) *Screen {
	s := New(tree, root)
	s.popup = true
	if n := tree.Node(root); n != nil {
		d := time.Duration(n.MillisPerAlpha) * time.Millisecond
		s.onTime, s.offTime = d, d
	}
	return s
}

// Tree returns the arena holding the root
func (s *Screen) Tree() *component.Tree { return s.tree }

// Root returns the main container
func (s *Screen) Root() component.Handle { return s.root }

// IsPopup reports whether screens below stay visible
func (s *Screen) IsPopup() bool { return s.popup }

// State returns the transition phase
func (s *Screen) State() State { return s.state }

// IsExiting reports whether the screen is transitioning off for removal
func (s *Screen) IsExiting() bool { return s.exiting }

// TransitionAlpha is 1 when fully on and 0 when fully off
func (s *Screen) TransitionAlpha() float64 { return 1 - s.position }

// SetTransition sets the on and off durations, zero is instant
func (s *Screen) SetTransition(on, off time.Duration) {
	s.onTime, s.offTime = on, off
}

// Alpha returns the last alpha applied to the screen
func (s *Screen) Alpha() float64 { return s.alpha }

// SetAlpha targets a on the root and every descendant
func (s *Screen) SetAlpha(a float64) {
	s.alpha = a
	s.tree.ApplyAlpha(s.root, a)
}

// Load mounts the root and resolves its resources
func (s *Screen) Load(loader asset.Loader) error {
	if s.Loader != nil {
		loader = s.Loader
	}
	s.tree.Mount(s.root)
	if err := s.tree.Load(s.root, loader); err != nil {
		return fmt.Errorf("screen %q: %w", s.Name, err)
	}
	return nil
}

// Init settles the initial layout
func (s *Screen) Init() {
	s.tree.Init(s.root)
}

// Unload detaches the root, a later Load resolves resources again
func (s *Screen) Unload() {
	s.tree.Unmount(s.root)
}

// Exit starts the off transition, the manager removes the screen when done
func (s *Screen) Exit() {
	s.exiting = true
	s.SetAlpha(0)
}

// Update advances the transition and, unless another screen has focus,
// the tree with snap as input
// Nodes attached since the last load are loaded first
func (s *Screen) Update(dt time.Duration, snap input.Snapshot, otherScreenHasFocus, covered bool) error {
	s.advanceTransition(dt, covered && !s.Backdrop)

	if s.tree.Pending() {
		if err := s.tree.Load(s.root, s.Loader); err != nil {
			return fmt.Errorf("screen %q: %w", s.Name, err)
		}
	}
	if !otherScreenHasFocus || s.Backdrop {
		s.tree.Update(s.root, dt, snap)
	}
	return nil
}

// Draw paints the tree into the backend batches
func (s *Screen) Draw(b render.Backend) {
	s.tree.Draw(s.root, b)
}

// done reports an exiting screen that has fully transitioned off
func (s *Screen) done() bool {
	return s.exiting && s.state == StateTransitionOff && s.position >= 1
}

func (s *Screen) advanceTransition(dt time.Duration, covered bool) {
	switch {
	case s.exiting:
		s.state = StateTransitionOff
		s.step(dt, s.offTime, 1)
	case covered:
		if s.step(dt, s.offTime, 1) {
			s.state = StateTransitionOff
		} else {
			s.state = StateHidden
		}
	default:
		if s.step(dt, s.onTime, -1) {
			s.state = StateTransitionOn
		} else {
			s.state = StateActive
		}
	}
}

// step moves the position toward direction, false once it reaches the end
func (s *Screen) step(dt, total time.Duration, direction float64) bool {
	delta := 1.0
	if total > 0 {
		delta = float64(dt) / float64(total)
	}
	s.position += delta * direction
	if (direction < 0 && s.position <= 0) || (direction > 0 && s.position >= 1) {
		s.position = min(max(s.position, 0), 1)
		return false
	}
	return true
}
