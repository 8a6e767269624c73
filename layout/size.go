package layout

// HBoxSize is the content size of a row: summed widths, tallest child
func HBoxSize(s Siblings) (w, h int) {
	for i := 0; i < s.Len(); i++ {
		cw, ch := s.Size(i)
		w += cw
		h = max(h, ch)
	}
	return w, h
}

// VBoxSize is the content size of a column: widest child, summed heights
func VBoxSize(s Siblings) (w, h int) {
	for i := 0; i < s.Len(); i++ {
		cw, ch := s.Size(i)
		w = max(w, cw)
		h += ch
	}
	return w, h
}

// StackSize is the content size of a stack: widest and tallest child
func StackSize(s Siblings) (w, h int) {
	for i := 0; i < s.Len(); i++ {
		cw, ch := s.Size(i)
		w = max(w, cw)
		h = max(h, ch)
	}
	return w, h
}

// Percent resolves a percentage of a parent dimension, truncated to whole pixels
func Percent(p, of int) int {
	return int(float64(p) / 100 * float64(of))
}

// Falloff is the scale/opacity factor of a dynamic list entry at distance
// steps from the selection, reaching zero at visibleRange+1 steps
func Falloff(distance, visibleRange int) float64 {
	if distance < 0 {
		distance = -distance
	}
	visibleRange = max(visibleRange, 0)
	return 1 - min(1, float64(distance)/float64(visibleRange+1))
}

// InRange reports whether a dynamic list entry at distance is shown
func InRange(distance, visibleRange int) bool {
	if distance < 0 {
		distance = -distance
	}
	return distance <= max(visibleRange, 0)
}
