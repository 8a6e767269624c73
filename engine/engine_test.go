package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHost struct {
	updates []time.Duration
	draws   int
	failAt  int
}

var errHost = errors.New("host failed")

func (h *countingHost) Update(dt time.Duration) error {
	h.updates = append(h.updates, dt)
	if h.failAt > 0 && len(h.updates) == h.failAt {
		return errHost
	}
	return nil
}

func (h *countingHost) Draw() { h.draws++ }

func TestPausableClockFreezes(t *testing.T) {
	src := NewManualTime(time.Unix(0, 0))
	pc := NewPausableClock(src)

	src.Advance(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, pc.Elapsed())

	pc.Pause()
	assert.True(t, pc.IsPaused())
	src.Advance(time.Second)
	assert.Equal(t, 100*time.Millisecond, pc.Elapsed())
	assert.Equal(t, time.Second, pc.TotalPauseDuration())

	pc.Resume()
	src.Advance(50 * time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, pc.Elapsed())
	assert.Equal(t, time.Second, pc.TotalPauseDuration())

	// repeated calls are idempotent
	pc.Resume()
	pc.Pause()
	pc.Pause()
	assert.Equal(t, 150*time.Millisecond, pc.Elapsed())
}

func TestStepRunsWholeIntervals(t *testing.T) {
	src := NewManualTime(time.Unix(0, 0))
	host := &countingHost{}
	l := NewLoop(host, NewPausableClock(src))
	l.Interval = 10 * time.Millisecond

	src.Advance(35 * time.Millisecond)
	require.NoError(t, l.step())
	assert.Len(t, host.updates, 3)
	assert.Equal(t, 1, host.draws)

	// remainder carries over
	src.Advance(5 * time.Millisecond)
	require.NoError(t, l.step())
	assert.Len(t, host.updates, 4)
	assert.Equal(t, uint64(4), l.Ticks())

	for _, dt := range host.updates {
		assert.Equal(t, 10*time.Millisecond, dt)
	}
}

func TestStepCapsStalls(t *testing.T) {
	src := NewManualTime(time.Unix(0, 0))
	host := &countingHost{}
	l := NewLoop(host, NewPausableClock(src))
	l.Interval = 10 * time.Millisecond
	l.MaxDelta = 50 * time.Millisecond

	src.Advance(10 * time.Second)
	require.NoError(t, l.step())
	assert.Len(t, host.updates, 5)
}

func TestStepPausedDrawsOnly(t *testing.T) {
	src := NewManualTime(time.Unix(0, 0))
	pc := NewPausableClock(src)
	host := &countingHost{}
	l := NewLoop(host, pc)
	l.Interval = 10 * time.Millisecond

	pc.Pause()
	src.Advance(time.Second)
	require.NoError(t, l.step())
	assert.Empty(t, host.updates)
	assert.Equal(t, 1, host.draws)
}

func TestPostRunsBeforeUpdate(t *testing.T) {
	src := NewManualTime(time.Unix(0, 0))
	host := &countingHost{}
	l := NewLoop(host, NewPausableClock(src))
	l.Interval = 10 * time.Millisecond

	var seenUpdates int
	require.NoError(t, l.Post(func() { seenUpdates = len(host.updates) }))
	src.Advance(20 * time.Millisecond)
	require.NoError(t, l.step())
	assert.Zero(t, seenUpdates)
	assert.Len(t, host.updates, 2)
}

func TestPostFullQueue(t *testing.T) {
	l := NewLoop(&countingHost{}, NewPausableClock(nil))
	var err error
	for range cap(l.posts) + 1 {
		err = l.Post(func() {})
	}
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestRunStopsOnHostError(t *testing.T) {
	host := &countingHost{failAt: 2}
	l := NewLoop(host, NewPausableClock(nil))
	l.Interval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := l.Run(ctx)
	assert.ErrorIs(t, err, errHost)
}

func TestRunStopsOnCancel(t *testing.T) {
	host := &countingHost{}
	l := NewLoop(host, NewPausableClock(nil))
	l.Interval = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, l.Run(ctx))
	assert.NotEmpty(t, host.updates)
	assert.Positive(t, host.draws)
}

func TestAdvanceLeavesDrawToDriver(t *testing.T) {
	src := NewManualTime(time.Unix(0, 0))
	host := &countingHost{}
	l := NewLoop(host, NewPausableClock(src))
	l.Interval = 10 * time.Millisecond

	src.Advance(25 * time.Millisecond)
	require.NoError(t, l.Advance())
	assert.Len(t, host.updates, 2)
	assert.Zero(t, host.draws)
}
