package world

import "fmt"

// World is a finished, read-only generated world.
type World struct {
	tiles  []Tile
	width  int
	height int
	size   Size
}

// New wraps a finished grid into a World. The grid's buffer is moved, not
// copied: the grid is emptied and must not be used afterwards.
func New(g *Grid, size Size) (*World, error) {
	width, height, err := size.Dimensions()
	if err != nil {
		return nil, err
	}
	if g.Width != width || g.Height != height || len(g.tiles) != width*height {
		return nil, fmt.Errorf("grid is %dx%d, %s world needs %dx%d", g.Width, g.Height, size, width, height)
	}

	w := &World{
		tiles:  g.tiles,
		width:  width,
		height: height,
		size:   size,
	}
	g.tiles = nil
	g.Width, g.Height = 0, 0
	return w, nil
}

// Width returns the world width in tiles.
func (w *World) Width() int { return w.width }

// Height returns the world height in tiles.
func (w *World) Height() int { return w.height }

// Size returns the size preset the world was generated with.
func (w *World) Size() Size { return w.size }

// Tile returns the tile at the given position, or empty air outside the world.
func (w *World) Tile(x, y int) Tile {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return Tile{}
	}
	return w.tiles[x+w.width*y]
}

// Row returns a copy of row y.
func (w *World) Row(y int) []Tile {
	if y < 0 || y >= w.height {
		return nil
	}
	row := make([]Tile, w.width)
	copy(row, w.tiles[w.width*y:w.width*(y+1)])
	return row
}

// Equal returns true if both worlds have the same size and identical tiles.
func (w *World) Equal(other *World) bool {
	if w.size != other.size || w.width != other.width || w.height != other.height {
		return false
	}
	for i := range w.tiles {
		if w.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}
