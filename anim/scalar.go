// Package anim holds the per-node animated properties
//
// Every animatable value is a pair: writes set the target, reads return the
// current value, and the current value walks toward the target once per tick
// without ever passing it. A rate <= 0 is treated as infinite speed.
package anim

// Scalar is a single animated value
type Scalar struct {
	current float64
	target  float64
}

// NewScalar creates a scalar starting at current and heading for target
func NewScalar(current, target float64) Scalar {
	return Scalar{current: current, target: target}
}

// Set stores the desired value, current is untouched until the next tick
func (s *Scalar) Set(target float64) {
	s.target = target
}

// Target returns the desired value
func (s Scalar) Target() float64 {
	return s.target
}

// Current returns the interpolated value
func (s Scalar) Current() float64 {
	return s.current
}

// Settled reports whether current has reached target
func (s Scalar) Settled() bool {
	return s.current == s.target
}

// Snap moves current onto target
func (s *Scalar) Snap() {
	s.current = s.target
}

// Reset forces both current and target to v
func (s *Scalar) Reset(v float64) {
	s.current = v
	s.target = v
}

// Step moves current toward target by at most delta, clamped at target
func (s *Scalar) Step(delta float64) {
	if delta <= 0 {
		return
	}
	if s.current < s.target {
		s.current = min(s.target, s.current+delta)
	} else if s.current > s.target {
		s.current = max(s.target, s.current-delta)
	}
}

// Advance applies one tick of a duration-limited property
// millisPerUnit is the time to traverse the full 0..1 range
func (s *Scalar) Advance(dtMillis float64, millisPerUnit int) {
	if millisPerUnit <= 0 {
		s.Snap()
		return
	}
	s.Step(dtMillis / float64(millisPerUnit))
}
