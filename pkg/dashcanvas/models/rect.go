package models

// Rect is an axis-aligned rectangle in canvas-space units.
type Rect struct {
	// X is the left edge.
	X float64 `json:"x"`
	// Y is the top edge.
	Y float64 `json:"y"`
	// Width is the horizontal extent.
	Width float64 `json:"width"`
	// Height is the vertical extent.
	Height float64 `json:"height"`
}

// Size is the extent of a chart before it is positioned.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// At returns a rectangle of size s with its top-left corner at (x, y).
func (s Size) At(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: s.Width, Height: s.Height}
}

// Size returns the extent of r.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Overlaps reports whether r and o intersect on both axes.
// Intervals are half-open, so rectangles sharing an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}
