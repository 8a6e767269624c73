package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarNeverOvershoots(t *testing.T) {
	s := NewScalar(0, 1)

	// 640ms range, 100ms ticks: 7 ticks reach the target without passing it
	prev := s.Current()
	for i := 0; i < 10; i++ {
		s.Advance(100, 640)
		assert.LessOrEqual(t, s.Current(), 1.0)
		assert.GreaterOrEqual(t, s.Current(), prev)
		prev = s.Current()
	}
	assert.Equal(t, 1.0, s.Current())
	assert.True(t, s.Settled())
}

func TestScalarDescends(t *testing.T) {
	s := NewScalar(1, 0.25)
	s.Advance(320, 640)
	assert.InDelta(t, 0.5, s.Current(), 1e-9)
	s.Advance(320, 640)
	assert.Equal(t, 0.25, s.Current())
}

func TestScalarSnapOnNonPositiveRate(t *testing.T) {
	for _, rate := range []int{0, -1} {
		s := NewScalar(0, 0.75)
		s.Advance(1, rate)
		assert.Equal(t, 0.75, s.Current(), "rate %d", rate)
	}
}

func TestScalarSetKeepsCurrent(t *testing.T) {
	s := NewScalar(0.5, 0.5)
	s.Set(1)
	assert.Equal(t, 0.5, s.Current())
	assert.Equal(t, 1.0, s.Target())
}

func TestPositionConvergesAtSpeed(t *testing.T) {
	var p Position
	p.Set(100, -50)

	// 320 px/s: 100px takes 312.5ms
	elapsed := 0.0
	for elapsed < 300 {
		p.Advance(16, 320)
		elapsed += 16
		assert.LessOrEqual(t, p.X.Current(), 100.0)
		assert.GreaterOrEqual(t, p.Y.Current(), -50.0)
	}
	assert.Less(t, p.X.Current(), 100.0)

	p.Advance(16, 320)
	assert.Equal(t, 100.0, p.X.Current())
	assert.Equal(t, -50.0, p.Y.Current())
}

func TestPositionSnapOnNonPositiveSpeed(t *testing.T) {
	var p Position
	p.Set(400, 300)
	p.Advance(1, 0)
	assert.Equal(t, 400.0, p.X.Current())
	assert.Equal(t, 300.0, p.Y.Current())
}

func TestPositionGraceWindow(t *testing.T) {
	var p Position
	p.Immediate(3)

	for i := 0; i < 3; i++ {
		p.Set(float64(100*(i+1)), 0)
		p.Advance(16, 10)
		assert.Equal(t, float64(100*(i+1)), p.X.Current(), "tick %d snaps", i)
	}
	assert.Equal(t, 0, p.Pending())

	p.Set(1000, 0)
	p.Advance(100, 10)
	assert.Equal(t, 301.0, p.X.Current())
}

func TestPositionImmediateWidensOnly(t *testing.T) {
	var p Position
	p.Immediate(3)
	p.Immediate(1)
	assert.Equal(t, 3, p.Pending())
}
