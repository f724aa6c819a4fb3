package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terragen/internal/palette"
	"github.com/samdwyer/terragen/internal/world"
)

// Renderer draws a world to the screen.
type Renderer struct {
	screen  *Screen
	palette *palette.Palette
}

// NewRenderer creates a renderer for the given screen and palette.
func NewRenderer(screen *Screen, p *palette.Palette) *Renderer {
	return &Renderer{screen: screen, palette: p}
}

// Render draws the viewport's window of w, one screen cell per tile.
func (r *Renderer) Render(w *world.World, vp *Viewport) {
	r.screen.Begin()
	for sy := 0; sy < vp.Height; sy++ {
		for sx := 0; sx < vp.Width; sx++ {
			r.screen.Fill(sx, sy, r.palette.Color(w.Tile(vp.X+sx, vp.Y+sy)))
		}
	}
	r.renderStatus(fmt.Sprintf("%s %dx%d  x=%d y=%d", w.Size(), w.Width(), w.Height(), vp.X, vp.Y), vp.Height)
	r.screen.End()
}

// RenderOverview draws the whole world scaled down to width x height cells,
// sampling one tile per cell. It returns the sampling step.
func (r *Renderer) RenderOverview(w *world.World, width, height int) int {
	step := OverviewStep(w.Width(), w.Height(), width, height)

	r.screen.Begin()
	for sy := 0; sy*step < w.Height() && sy < height; sy++ {
		for sx := 0; sx*step < w.Width() && sx < width; sx++ {
			r.screen.Fill(sx, sy, r.palette.Color(w.Tile(sx*step, sy*step)))
		}
	}
	r.renderStatus(fmt.Sprintf("%s overview 1:%d", w.Size(), step), height)
	r.screen.End()
	return step
}

// OverviewStep returns the smallest tile step that fits a world of
// worldWidth x worldHeight into width x height cells.
func OverviewStep(worldWidth, worldHeight, width, height int) int {
	if width <= 0 || height <= 0 {
		return max(worldWidth, worldHeight, 1)
	}
	sx := (worldWidth + width - 1) / width
	sy := (worldHeight + height - 1) / height
	return max(sx, sy, 1)
}

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// renderStatus writes a one-line message at row y.
func (r *Renderer) renderStatus(msg string, y int) {
	r.screen.Text(0, y, msg, statusStyle)
}
