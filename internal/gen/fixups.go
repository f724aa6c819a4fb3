package gen

import "github.com/samdwyer/terragen/internal/world"

// fixupMargin is how far above and below the surface line the fixups scan.
const fixupMargin = 50

// window returns the clamped row range [top, bottom) scanned around s.
func (g *Generator) window(s int) (int, int) {
	return max(s-fixupMargin, 0), min(s+fixupMargin, g.grid.Height)
}

// FixGravitatingSand drops every sand cell resting on air until it lands on
// something. Rows are scanned bottom-up so stacked sand settles in order.
// It returns the number of cells moved.
func (g *Generator) FixGravitatingSand(surface []int) int {
	moved := 0
	for x := 0; x < g.grid.Width; x++ {
		top, bottom := g.window(surface[x])
		for y := bottom - 1; y >= top; y-- {
			if g.grid.Material(x, y) != world.MaterialSand {
				continue
			}
			landing := y
			for landing+1 < g.grid.Height && g.grid.Material(x, landing+1) == world.MaterialAir {
				landing++
			}
			if landing == y {
				continue
			}
			g.grid.SetMaterial(x, y, world.MaterialAir)
			g.grid.SetMaterial(x, landing, world.MaterialSand)
			moved++
		}
	}
	return moved
}

// FixDirtWalls clears background walls from air cells that are open to the
// sky, down to the first solid tile of each column. It returns the number of
// walls removed.
func (g *Generator) FixDirtWalls(surface []int) int {
	cleared := 0
	for x := 0; x < g.grid.Width; x++ {
		top, bottom := g.window(surface[x])
		for y := top; y < bottom; y++ {
			t := g.grid.Tile(x, y)
			if t.Material().IsSolid() {
				break
			}
			if t.Wall() != world.WallAir {
				g.grid.SetWall(x, y, world.WallAir)
				cleared++
			}
		}
	}
	return cleared
}

// FixWaterOnSand drains water from sand cells and from the unbroken column
// of water directly above them. It returns the number of cells drained.
func (g *Generator) FixWaterOnSand(surface []int) int {
	drained := 0
	for x := 0; x < g.grid.Width; x++ {
		top, bottom := g.window(surface[x])
		for y := top; y < bottom; y++ {
			if g.grid.Material(x, y) != world.MaterialSand {
				continue
			}
			if g.grid.Tile(x, y).Liquid() == world.LiquidWater {
				g.grid.SetLiquid(x, y, world.LiquidNone)
				drained++
			}
			for wy := y - 1; wy >= 0 && g.grid.Tile(x, wy).Liquid() == world.LiquidWater; wy-- {
				g.grid.SetLiquid(x, wy, world.LiquidNone)
				drained++
			}
		}
	}
	return drained
}
