package gen

import "github.com/samdwyer/terragen/internal/world"

const (
	desertMinWidth = 50
	desertMaxWidth = 200
	// desertMinDepth is how far below the surface sand always reaches.
	desertMinDepth = 3
	desertMaxDepth = 60
)

var desertReplaces = setOf(world.MaterialGrass, world.MaterialDirt, world.MaterialStone)

// GenerateSandDesert caps surface spans with sand. The sand depth random-walks
// deeper over the leading third of a span and shallower over the trailing
// third, with a +-1 wander in between. It returns the number of deserts.
func (g *Generator) GenerateSandDesert(surface []int) int {
	counts := g.features().deserts
	count := g.rng.Int(counts[0], counts[1])

	for i := 0; i < count; i++ {
		width := g.rng.Int(desertMinWidth, desertMaxWidth)
		start := g.computeWithinUsableArea(surface, i, width, world.MaterialSand, nil)

		lead, trail := width/3, width-width/3
		depth := 0
		for offset := 0; offset <= width; offset++ {
			x := start + offset
			if x >= g.grid.Width {
				break
			}

			switch {
			case offset < lead:
				depth += g.rng.Int(0, 3)
			case offset >= trail:
				depth -= g.rng.Int(0, 3)
			default:
				depth += g.rng.Int(-1, 2)
			}
			depth = min(max(depth, 0), desertMaxDepth)

			s := surface[x]
			floor := s + max(depth, desertMinDepth)
			for y := s; y < floor; y++ {
				if desertReplaces.has(g.grid.Material(x, y)) {
					g.grid.SetMaterial(x, y, world.MaterialSand)
				}
			}
		}
	}
	return count
}
