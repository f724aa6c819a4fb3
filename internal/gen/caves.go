package gen

import "github.com/samdwyer/terragen/internal/world"

// cave describes a two-octave anisotropic carving pass. The second octave
// samples at double frequency with half weight.
type cave struct {
	scaleX, scaleY float64
	cutoff         float64
	liquidCutoff   float64 // carved cells above this liquid noise are flooded; 0 disables
}

var (
	smallCaves = cave{scaleX: 4, scaleY: 9, cutoff: 0.75, liquidCutoff: 0.5}
	largeCaves = cave{scaleX: 1.5, scaleY: 3, cutoff: 0.6}
)

// liquidScale sets the size of flooded pockets.
const liquidScale = 2.0

// carve turns solid cells with top(x) <= y < underworld into air where the
// cave noise exceeds the cutoff. It returns the number of cells carved.
func (g *Generator) carve(c cave, top func(int) int, underworld int) int {
	first := g.noiseOffset()
	second := g.noiseOffset()
	wet := g.noiseOffset()
	carved := 0

	for x := 0; x < g.grid.Width; x++ {
		fx := float64(x)
		for y := max(top(x), 0); y < min(underworld, g.grid.Height); y++ {
			if !g.grid.Material(x, y).IsSolid() {
				continue
			}
			fy := float64(y)
			n := g.rng.Noise(fx*c.scaleX, fy*c.scaleY+first) +
				0.5*g.rng.Noise(fx*c.scaleX*2, fy*c.scaleY*2+second)
			if n <= c.cutoff {
				continue
			}

			g.grid.SetMaterial(x, y, world.MaterialAir)
			carved++

			if c.liquidCutoff > 0 && g.rng.Noise(fx*liquidScale, fy*liquidScale+wet) > c.liquidCutoff {
				liquid := world.LiquidWater
				if y >= g.levels.Lava {
					liquid = world.LiquidLava
				}
				g.grid.SetLiquid(x, y, liquid)
			}
		}
	}
	return carved
}

// GenerateCaves carves narrow winding caves below the dirt line. Some pockets
// fill with water, or lava below the lava line.
func (g *Generator) GenerateCaves(dirt []int, underworld int) int {
	return g.carve(smallCaves, profile(dirt), underworld)
}

// GenerateLargeCaves carves wide caverns below the rock line.
func (g *Generator) GenerateLargeCaves(rock []int, underworld int) int {
	return g.carve(largeCaves, profile(rock), underworld)
}
