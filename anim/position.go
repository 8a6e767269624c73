package anim

// Position is a speed-limited 2D coordinate with an optional grace window
// during which every tick snaps instead of sliding
type Position struct {
	X, Y      Scalar
	immediate int
}

// Set stores the target coordinate
func (p *Position) Set(x, y float64) {
	p.X.Set(x)
	p.Y.Set(y)
}

// Immediate opens a grace window of n ticks, a smaller open window is widened
func (p *Position) Immediate(n int) {
	if n > p.immediate {
		p.immediate = n
	}
}

// Pending returns the remaining grace ticks
func (p *Position) Pending() int {
	return p.immediate
}

// Advance applies one tick; axes move independently by at most speed*dt
func (p *Position) Advance(dtMillis float64, pixelsPerSecond int) {
	if p.immediate > 0 {
		p.immediate--
		p.X.Snap()
		p.Y.Snap()
		return
	}

	if pixelsPerSecond <= 0 {
		p.X.Snap()
		p.Y.Snap()
		return
	}

	step := float64(pixelsPerSecond) * dtMillis / 1000
	p.X.Step(step)
	p.Y.Step(step)
}
