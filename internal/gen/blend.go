package gen

import (
	"math"

	"github.com/samdwyer/terragen/internal/world"
)

// blend describes a noise-thresholded material conversion.
type blend struct {
	into    world.Material
	from    materialSet
	scaleX  float64
	scaleY  float64
	cutoff  float64
	octaves int
	ridged  bool // threshold 1-|n| instead of n, producing thin veins
}

// Tuning values: scale multiplies tile coordinates before sampling, cutoff is
// the octave sum a cell must exceed to convert.
var (
	sandPileBlend = blend{
		into: world.MaterialSand, from: setOf(world.MaterialDirt),
		scaleX: 1, scaleY: 1, cutoff: 0.2, octaves: 1,
	}
	surfaceStoneBlend = blend{
		into: world.MaterialStone, from: setOf(world.MaterialDirt),
		scaleX: 5, scaleY: 5, cutoff: 0.3, octaves: 2,
	}
	undergroundStoneBlend = blend{
		into: world.MaterialStone, from: setOf(world.MaterialDirt),
		scaleX: 6, scaleY: 6, cutoff: 0.6, octaves: 2,
	}
	cavernDirtBlend = blend{
		into: world.MaterialDirt, from: setOf(world.MaterialStone),
		scaleX: 6, scaleY: 6, cutoff: 0.6, octaves: 2,
	}
	clayBlend = blend{
		into: world.MaterialClay, from: setOf(world.MaterialDirt, world.MaterialStone),
		scaleX: 2, scaleY: 2, cutoff: 0.2, octaves: 1,
	}
	deepClayBlend = blend{
		into: world.MaterialClay, from: setOf(world.MaterialDirt, world.MaterialStone),
		scaleX: 2, scaleY: 2, cutoff: 0.1, octaves: 1,
	}
	mudBlend = blend{
		into: world.MaterialMud, from: setOf(world.MaterialDirt, world.MaterialStone),
		scaleX: 3, scaleY: 7, cutoff: 0.93, octaves: 2, ridged: true,
	}
	siltBlend = blend{
		into: world.MaterialSilt, from: setOf(world.MaterialStone, world.MaterialDirt),
		scaleX: 8, scaleY: 8, cutoff: 0.55, octaves: 3,
	}
)

// clayDeepRows extends the deep clay band below the rock line.
const clayDeepRows = 10

// apply converts matching cells with top(x) <= y < bottom(x) and returns
// the number converted. Each call draws a fresh noise offset.
func (g *Generator) apply(b blend, top, bottom func(x int) int) int {
	offset := g.noiseOffset()
	changed := 0

	for x := 0; x < g.grid.Width; x++ {
		y0 := max(top(x), 0)
		y1 := min(bottom(x), g.grid.Height)
		for y := y0; y < y1; y++ {
			if !b.from.has(g.grid.Material(x, y)) {
				continue
			}
			n := g.octaves(float64(x), float64(y), b.scaleX, b.scaleY, offset, b.octaves)
			if b.ridged {
				n = 1 - math.Abs(n)
			}
			if n > b.cutoff {
				g.grid.SetMaterial(x, y, b.into)
				changed++
			}
		}
	}
	return changed
}

func row(y int) func(int) int { return func(int) int { return y } }

func profile(p []int) func(int) int { return func(x int) int { return p[x] } }

// GenerateSandPiles scatters sand through the dirt between the surface layer and the rock line.
func (g *Generator) GenerateSandPiles(top int, bottom []int) int {
	return g.apply(sandPileBlend, row(top), profile(bottom))
}

// GenerateSurfaceStone mixes stone into the dirt between the surface and the dirt line.
func (g *Generator) GenerateSurfaceStone(surface, dirt []int) int {
	return g.apply(surfaceStoneBlend, profile(surface), profile(dirt))
}

// GenerateUndergroundStone mixes stone into the dirt between the dirt and rock lines.
func (g *Generator) GenerateUndergroundStone(dirt, rock []int) int {
	return g.apply(undergroundStoneBlend, profile(dirt), profile(rock))
}

// GenerateCavernDirt mixes dirt into the stone between the rock line and the underworld.
func (g *Generator) GenerateCavernDirt(rock []int, underworld int) int {
	return g.apply(cavernDirtBlend, profile(rock), row(underworld))
}

// GenerateClay places clay patches near the surface and, more sparsely, down to just below the rock line.
func (g *Generator) GenerateClay(surface, dirt, rock []int) int {
	n := g.apply(clayBlend, profile(surface), profile(dirt))
	n += g.apply(deepClayBlend, profile(dirt), func(x int) int { return rock[x] + clayDeepRows })
	return n
}

// GenerateGrass turns dirt exposed to open air above the surface layer into grass.
func (g *Generator) GenerateGrass(surface []int, surfaceLayer int) int {
	changed := 0
	for x := 0; x < g.grid.Width; x++ {
		top := max(surface[x]-anthillMaxHeight-1, 1)
		for y := top; y < surfaceLayer && y < g.grid.Height; y++ {
			if g.grid.Material(x, y) != world.MaterialDirt {
				continue
			}
			above := g.grid.Tile(x, y-1)
			if above.Material() == world.MaterialAir && above.Liquid() == world.LiquidNone {
				g.grid.SetMaterial(x, y, world.MaterialGrass)
				changed++
			}
		}
	}
	return changed
}

// GenerateMud threads long thin veins of mud between top and the underworld.
func (g *Generator) GenerateMud(top, underworld int) int {
	return g.apply(mudBlend, row(top), row(underworld))
}

// GenerateSilt scatters silt patches through the cavern layer.
func (g *Generator) GenerateSilt(cavern, underworld int) int {
	return g.apply(siltBlend, row(cavern), row(underworld))
}
