package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeSource supplies wall time, replaced by ManualTime in tests
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// SystemTime reads the monotonic system clock
var SystemTime TimeSource = systemTime{}

// PausableClock provides menu time that stops while paused
type PausableClock struct {
	mu sync.RWMutex

	src TimeSource

	realStartTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock over src, nil uses SystemTime
func NewPausableClock(src TimeSource) *PausableClock {
	if src == nil {
		src = SystemTime
	}
	return &PausableClock{src: src, realStartTime: src.Now()}
}

// Elapsed returns menu time since creation, frozen while paused
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime
	}
	return pc.src.Now().Sub(pc.realStartTime) - pc.totalPausedTime
}

// Pause stops menu time
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStartTime = pc.src.Now()
		pc.mu.Unlock()
	}
}

// Resume continues menu time, the paused span is skipped
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		pc.totalPausedTime += pc.src.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.mu.Unlock()
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.src.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// ManualTime is a TimeSource advanced by hand
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTime starts at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
