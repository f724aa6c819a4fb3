package gen

import "github.com/samdwyer/terragen/internal/world"

// GenerateDepthLevels tags every row with its depth band.
func (g *Generator) GenerateDepthLevels(levels Levels) {
	for y := 0; y < g.grid.Height; y++ {
		depth := depthAt(levels, y)
		for x := 0; x < g.grid.Width; x++ {
			g.grid.SetDepth(x, y, depth)
		}
	}
}

func depthAt(levels Levels, y int) world.Depth {
	switch {
	case y < levels.Space:
		return world.DepthSpace
	case y < levels.Surface:
		return world.DepthOverworld
	case y < levels.Cavern:
		return world.DepthUnderground
	case y < levels.Underworld:
		return world.DepthCavern
	default:
		return world.DepthUnderworld
	}
}

// GenerateLayers paints the base material bands: air above dirt[x], a
// single grass row at dirt[x], dirt down to stone[x], stone down to ash and
// ash to the bottom. It returns the number of columns painted.
func (g *Generator) GenerateLayers(dirt, stone []int, ash int) int {
	height := g.grid.Height
	ash = min(max(ash, 0), height)

	for x := 0; x < g.grid.Width; x++ {
		top := g.grid.ClampY(dirt[x])
		rock := min(max(stone[x], top+1), ash)

		for y := 0; y < top; y++ {
			g.grid.SetMaterial(x, y, world.MaterialAir)
		}
		g.grid.SetMaterial(x, top, world.MaterialGrass)
		for y := top + 1; y < rock; y++ {
			g.grid.SetMaterial(x, y, world.MaterialDirt)
		}
		for y := rock; y < ash; y++ {
			g.grid.SetMaterial(x, y, world.MaterialStone)
		}
		for y := max(ash, top+1); y < height; y++ {
			g.grid.SetMaterial(x, y, world.MaterialAsh)
		}
	}
	return g.grid.Width
}
