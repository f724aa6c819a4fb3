package ui

// Viewport is the window of world tiles shown on screen. Its origin always
// stays inside the world.
type Viewport struct {
	X, Y          int // Top-left world tile
	Width, Height int // Size in screen cells

	worldWidth, worldHeight int
}

// NewViewport creates a viewport of width x height cells over a world of
// the given dimensions, at the top-left corner.
func NewViewport(width, height, worldWidth, worldHeight int) *Viewport {
	return &Viewport{
		Width:       width,
		Height:      height,
		worldWidth:  worldWidth,
		worldHeight: worldHeight,
	}
}

// Move pans the viewport by the given delta, stopping at the world edges.
func (v *Viewport) Move(dx, dy int) {
	v.X += dx
	v.Y += dy
	v.clamp()
}

// CenterOn pans the viewport so that (x, y) sits in the middle of it.
func (v *Viewport) CenterOn(x, y int) {
	v.X = x - v.Width/2
	v.Y = y - v.Height/2
	v.clamp()
}

// Resize changes the viewport dimensions after a terminal resize.
func (v *Viewport) Resize(width, height int) {
	v.Width, v.Height = width, height
	v.clamp()
}

// Position returns the current top-left world tile.
func (v *Viewport) Position() (int, int) {
	return v.X, v.Y
}

func (v *Viewport) clamp() {
	v.X = min(max(v.X, 0), max(v.worldWidth-v.Width, 0))
	v.Y = min(max(v.Y, 0), max(v.worldHeight-v.Height, 0))
}
