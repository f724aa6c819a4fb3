package world

// Grid is the mutable tile buffer that generation passes work on.
// Cell (x, y) lives at index x + Width*y, with y growing downward.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid creates a grid filled with empty air.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

// In returns true if (x, y) addresses a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Tile returns the tile at the given position, or empty air outside the grid.
func (g *Grid) Tile(x, y int) Tile {
	if !g.In(x, y) {
		return Tile{}
	}
	return g.tiles[x+g.Width*y]
}

// Material returns the material at the given position, or air outside the grid.
func (g *Grid) Material(x, y int) Material {
	return g.Tile(x, y).material
}

// Update applies fn to the tile at (x, y). Positions outside the grid are skipped.
func (g *Grid) Update(x, y int, fn func(t *Tile)) {
	if !g.In(x, y) {
		return
	}
	fn(&g.tiles[x+g.Width*y])
}

// Put overwrites the whole tile at (x, y).
func (g *Grid) Put(x, y int, t Tile) {
	if !g.In(x, y) {
		return
	}
	g.tiles[x+g.Width*y] = t
}

// SetMaterial sets the foreground material at (x, y).
func (g *Grid) SetMaterial(x, y int, m Material) {
	if !g.In(x, y) {
		return
	}
	g.tiles[x+g.Width*y].material = m
}

// SetWall sets the background wall at (x, y).
func (g *Grid) SetWall(x, y int, w Wall) {
	if !g.In(x, y) {
		return
	}
	g.tiles[x+g.Width*y].wall = w
}

// SetLiquid fills or drains the tile at (x, y).
func (g *Grid) SetLiquid(x, y int, l Liquid) {
	if !g.In(x, y) {
		return
	}
	g.tiles[x+g.Width*y].SetLiquid(l)
}

// SetDepth sets the depth band at (x, y).
func (g *Grid) SetDepth(x, y int, d Depth) {
	if !g.In(x, y) {
		return
	}
	g.tiles[x+g.Width*y].depth = d
}

// ClampX pins a column index into the grid.
func (g *Grid) ClampX(x int) int {
	return min(max(x, 0), g.Width-1)
}

// ClampY pins a row index into the grid.
func (g *Grid) ClampY(y int) int {
	return min(max(y, 0), g.Height-1)
}

// Count returns how many cells hold the given material.
func (g *Grid) Count(m Material) int {
	n := 0
	for i := range g.tiles {
		if g.tiles[i].material == m {
			n++
		}
	}
	return n
}
