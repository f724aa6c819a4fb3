package gen

import (
	"math"

	"github.com/samdwyer/terragen/internal/world"
)

const (
	tunnelMinWidth   = 40
	tunnelMaxWidth   = 120
	tunnelDepth      = 5   // rows from the surface to the tunnel roof
	tunnelSpacing    = 6.0 // nominal roof to floor distance
	tunnelWobble     = 3.0 // noise perturbation of each wall, in rows
	tunnelNoiseScale = 6.0
	tunnelFloorSeed  = 5000 // decorrelates the floor from the roof
)

// GenerateSurfaceTunnels carves grass-rimmed tubes a few rows below the
// surface and backs the gap up to the surface with dirt walls. It returns
// the number of tunnels carved.
func (g *Generator) GenerateSurfaceTunnels(surface []int) int {
	counts := g.features().tunnels
	count := g.rng.Int(counts[0], counts[1])

	for i := 0; i < count; i++ {
		width := g.rng.Int(tunnelMinWidth, tunnelMaxWidth)
		start := g.computeStartCoordinate(i, width)
		offset := g.noiseOffset()

		for x := start; x <= start+width && x < g.grid.Width; x++ {
			// Taper to nothing at both ends.
			taper := math.Sin(math.Pi * float64(x-start) / float64(width))
			s := surface[x]

			roofNoise := g.rng.Noise(float64(x)*tunnelNoiseScale, offset)
			floorNoise := g.rng.Noise(float64(x)*tunnelNoiseScale, offset+tunnelFloorSeed)

			roof := max(s+tunnelDepth+int(math.Round(roofNoise*tunnelWobble)), s+2)
			floor := roof + int(math.Round(taper*(tunnelSpacing+floorNoise*tunnelWobble)))
			if floor <= roof {
				continue
			}

			for y := s + 1; y <= floor; y++ {
				g.grid.SetWall(x, y, world.WallDirt)
			}
			for y := roof; y < floor; y++ {
				g.grid.SetMaterial(x, y, world.MaterialAir)
			}
			if g.grid.Material(x, roof-1).IsSolid() {
				g.grid.SetMaterial(x, roof-1, world.MaterialGrass)
			}
			if g.grid.Material(x, floor).IsSolid() {
				g.grid.SetMaterial(x, floor, world.MaterialGrass)
			}
		}
	}
	return count
}
