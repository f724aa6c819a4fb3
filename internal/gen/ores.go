package gen

import (
	"math"

	"github.com/samdwyer/terragen/internal/world"
)

// oreVariation is the radial jitter applied to every ore blob cell.
const oreVariation = 0.3

// blobFillable lists the ground materials a blob may replace when not overriding.
var blobFillable = setOf(
	world.MaterialDirt, world.MaterialStone, world.MaterialClay, world.MaterialMud,
	world.MaterialSilt, world.MaterialSand, world.MaterialSlush, world.MaterialAsh,
)

// FillBlob stamps material into the cells around (cx, cy) whose normalized
// distance plus a random jitter in [-variation, variation) is below 1. Air
// is only filled with replaceAir; other blocks are only replaced when
// overrideBlocks is set or they are plain ground. The bounding box is
// clipped to the grid. It returns the number of cells changed.
func (g *Generator) FillBlob(cx, cy int, material world.Material, radius int, variation float64, replaceAir, overrideBlocks bool) int {
	if radius <= 0 {
		return 0
	}

	box := world.RectAround(cx, cy, radius).Clip(g.grid.Width, g.grid.Height)
	changed := 0

	for y := box.Y; y < box.Y+box.Height; y++ {
		for x := box.X; x < box.X+box.Width; x++ {
			dist := math.Hypot(float64(x-cx), float64(y-cy)) / float64(radius)
			dist += g.rng.Float(-variation, variation)
			if dist >= 1 {
				continue
			}

			current := g.grid.Material(x, y)
			switch {
			case current == material:
				continue
			case current == world.MaterialAir:
				if !replaceAir {
					continue
				}
			case !overrideBlocks && !blobFillable.has(current):
				continue
			}

			g.grid.SetMaterial(x, y, material)
			changed++
		}
	}
	return changed
}

// oreBand selects the rows an ore vein is stamped into.
type oreBand int

const (
	bandSurface oreBand = iota
	bandUnderground
	bandCavern
)

type oreVein struct {
	band      oreBand
	density   float64 // stamps per world cell
	minRadius int
	maxRadius int
}

type oreTier struct {
	primary   world.Material
	alternate world.Material
	veins     []oreVein
}

var oreTiers = []oreTier{
	{world.MaterialCopper, world.MaterialTin, []oreVein{
		{bandSurface, 0.0002, 2, 4},
		{bandUnderground, 0.0003, 3, 5},
		{bandCavern, 0.0003, 4, 7},
	}},
	{world.MaterialIron, world.MaterialLead, []oreVein{
		{bandSurface, 0.0001, 2, 3},
		{bandUnderground, 0.0002, 3, 5},
		{bandCavern, 0.0003, 4, 6},
	}},
	{world.MaterialSilver, world.MaterialTungsten, []oreVein{
		{bandUnderground, 0.0001, 2, 4},
		{bandCavern, 0.0002, 3, 5},
	}},
	{world.MaterialGold, world.MaterialPlatinum, []oreVein{
		{bandCavern, 0.00012, 3, 5},
	}},
}

// stamps returns the number of blobs the vein gets in a world of totalCells.
func (v oreVein) stamps(totalCells int) int {
	return int(math.Round(float64(totalCells) * v.density))
}

// stamps returns the number of blobs the whole tier gets in a world of totalCells.
func (t oreTier) stamps(totalCells int) int {
	n := 0
	for _, v := range t.veins {
		n += v.stamps(totalCells)
	}
	return n
}

// GenerateMetals stamps every ore tier into its depth bands. The surface band
// spans [surfaceTop, surfaceBottom), underground spans [surfaceBottom,
// cavern) and cavern spans [cavern, underworld). Stamp counts follow the
// cell count of the world size. Each tier's alternate metal is chosen once,
// up front. It returns the number of cells changed.
func (g *Generator) GenerateMetals(surfaceTop, surfaceBottom, cavern, underworld int) int {
	metals := make([]world.Material, len(oreTiers))
	for i, tier := range oreTiers {
		metals[i] = tier.primary
		if g.rng.Int(0, math.MaxInt32)%2 == 1 {
			metals[i] = tier.alternate
		}
	}

	bands := map[oreBand][2]int{
		bandSurface:     {surfaceTop, surfaceBottom},
		bandUnderground: {surfaceBottom, cavern},
		bandCavern:      {cavern, underworld},
	}

	width, height, err := g.size.Dimensions()
	if err != nil {
		width, height = g.grid.Width, g.grid.Height
	}
	totalCells := width * height
	changed := 0

	for i, tier := range oreTiers {
		for _, vein := range tier.veins {
			band := bands[vein.band]
			count := vein.stamps(totalCells)
			for n := 0; n < count; n++ {
				x := g.rng.Int(0, g.grid.Width)
				y := g.rng.Int(band[0], band[1])
				radius := g.rng.Int(vein.minRadius, vein.maxRadius+1)
				changed += g.FillBlob(x, y, metals[i], radius, oreVariation, false, false)
			}
			g.oreStamps[metals[i]] += count
		}
	}
	return changed
}
