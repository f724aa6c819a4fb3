package world

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions in tiles
}

// RectAround returns the square of cells within radius of (cx, cy).
func RectAround(cx, cy, radius int) Rect {
	return Rect{X: cx - radius, Y: cy - radius, Width: 2*radius + 1, Height: 2*radius + 1}
}

// Intersects returns true if this rect overlaps with another rect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Clip returns the part of the rect that lies inside a width x height grid.
// The result has zero area when nothing overlaps.
func (r Rect) Clip(width, height int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.Width, width), min(r.Y+r.Height, height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty returns true if the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
