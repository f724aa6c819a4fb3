package gen

import (
	"math"

	"github.com/samdwyer/terragen/internal/world"
)

const (
	anthillMinWidth  = 60
	anthillMaxWidth  = 140
	anthillMinHeight = 15
	anthillMaxHeight = 40
)

// Anthill is a placed mound.
type Anthill struct {
	Span world.Rect
	Mid  Point // top of the mound at its center column
	Cave Point // interior point below the mound, reserved for anthill caves
}

// GenerateAnthills raises parabola-shaped dirt mounds capped with grass,
// avoiding spans whose ends sit on sand and the columns of earlier mounds.
func (g *Generator) GenerateAnthills(surface []int) []Anthill {
	count := g.features().anthills
	anthills := make([]Anthill, 0, count)
	taken := make([]world.Rect, 0, count)

	for i := 0; i < count; i++ {
		width := g.rng.Int(anthillMinWidth, anthillMaxWidth)
		height := g.rng.Int(anthillMinHeight, anthillMaxHeight)
		start := g.computeWithinUsableArea(surface, i, width, world.MaterialSand, taken)

		mid := g.grid.ClampX(start + width/2)
		half := float64(width) / 2

		for x := start; x <= start+width && x < g.grid.Width; x++ {
			t := float64(x-mid) / half
			rise := int(math.Round(float64(height) * (1 - t*t)))
			if rise <= 0 {
				continue
			}

			s := surface[x]
			top := s - rise
			g.grid.SetMaterial(x, top, world.MaterialGrass)
			for y := top + 1; y <= s; y++ {
				g.grid.SetMaterial(x, y, world.MaterialDirt)
				if y > top+1 {
					g.grid.SetWall(x, y, world.WallDirt)
				}
			}
		}

		span := world.Rect{X: start, Y: surface[mid] - height, Width: width + 1, Height: height}
		taken = append(taken, span)
		anthills = append(anthills, Anthill{
			Span: span,
			Mid:  Point{X: mid, Y: surface[mid] - height},
			Cave: Point{X: mid, Y: surface[mid] + height/2},
		})
	}

	g.anthills = anthills
	return anthills
}
