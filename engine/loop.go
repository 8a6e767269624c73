// Package engine drives a menu host on a fixed tick
//
// The loop owns the only goroutine that touches the tree: backend events
// and config reloads are posted to it and run between ticks.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-menu/parameter"
)

// ErrQueueFull is returned by Post when the loop is not draining
var ErrQueueFull = errors.New("loop queue full")

// Host is what the loop drives, usually a screen.Manager adapter
type Host interface {
	// Update advances one fixed step
	Update(dt time.Duration) error
	// Draw renders the current state
	Draw()
}

// Loop runs fixed steps of Interval and draws once per wake
type Loop struct {
	host  Host
	clock *PausableClock

	Interval time.Duration

	// MaxDelta caps the time made up after a stall
	MaxDelta time.Duration

	posts chan func()
	ticks atomic.Uint64

	last time.Duration
	acc  time.Duration
}

// NewLoop creates a loop over host timed by clock
func NewLoop(host Host, clock *PausableClock) *Loop {
	return &Loop{
		host:     host,
		clock:    clock,
		Interval: parameter.FrameUpdateInterval,
		MaxDelta: parameter.MaxFrameDelta,
		posts:    make(chan func(), parameter.EventQueueSize),
		last:     clock.Elapsed(),
	}
}

// Ticks returns the number of steps run
func (l *Loop) Ticks() uint64 { return l.ticks.Load() }

// Clock returns the loop time source
func (l *Loop) Clock() *PausableClock { return l.clock }

// Post queues fn to run on the loop goroutine before the next step
// Safe from any goroutine
func (l *Loop) Post(fn func()) error {
	select {
	case l.posts <- fn:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run steps the host until ctx ends or an update fails
// Cancellation is a clean stop and returns nil
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	l.last = l.clock.Elapsed()
	l.host.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case fn := <-l.posts:
			fn()

		case <-ticker.C:
			if err := l.step(); err != nil {
				return err
			}
		}
	}
}

// step advances then draws
// Paused clocks accumulate nothing, the last frame keeps being drawn
func (l *Loop) step() error {
	if err := l.Advance(); err != nil {
		return err
	}
	l.host.Draw()
	return nil
}

// Advance runs every whole interval accumulated since the last call without
// drawing, for drivers that own the frame and call Draw themselves
func (l *Loop) Advance() error {
	now := l.clock.Elapsed()
	delta := min(now-l.last, l.MaxDelta)
	l.last = now
	l.acc += max(delta, 0)

	for l.acc >= l.Interval {
		l.drainPosts()
		if err := l.host.Update(l.Interval); err != nil {
			return fmt.Errorf("tick %d: %w", l.ticks.Load(), err)
		}
		l.acc -= l.Interval
		l.ticks.Add(1)
	}
	return nil
}

func (l *Loop) drainPosts() {
	for {
		select {
		case fn := <-l.posts:
			fn()
		default:
			return
		}
	}
}
