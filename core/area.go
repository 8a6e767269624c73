package core

// HAlignment is the horizontal alignment of a node within its container
// Zero value centers the node
type HAlignment uint8

const (
	HCenter HAlignment = iota
	HRight
	HLeft
)

// VAlignment is the vertical alignment of a node within its container
// Zero value centers the node
type VAlignment uint8

const (
	VCenter VAlignment = iota
	VTop
	VBottom
)

func (a HAlignment) String() string {
	switch a {
	case HLeft:
		return "left"
	case HRight:
		return "right"
	default:
		return "center"
	}
}

func (a VAlignment) String() string {
	switch a {
	case VTop:
		return "top"
	case VBottom:
		return "bottom"
	default:
		return "center"
	}
}

// Rect is a node rectangle: sub-pixel origin, whole-pixel size
type Rect struct {
	X, Y          float64
	Width, Height int
}

// Area represents an integer rectangular region (source rectangles, cells)
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the area covers nothing
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Bounds truncates the rect to whole pixels
func (r Rect) Bounds() Area {
	return Area{X: int(r.X), Y: int(r.Y), Width: r.Width, Height: r.Height}
}

// Center returns the midpoint of the rect
func (r Rect) Center() (float64, float64) {
	return r.X + float64(r.Width)/2, r.Y + float64(r.Height)/2
}
