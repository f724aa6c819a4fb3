package palette

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terragen/internal/world"
)

// DefaultFile is the embedded table used by Default.
const DefaultFile = "palette.json"

// Definition is the on-disk form of a palette: hex colors keyed by enum name.
type Definition struct {
	Materials map[string]string `json:"materials"`
	Liquids   map[string]string `json:"liquids"`
	Walls     map[string]string `json:"walls"`
	Depths    map[string]string `json:"depths"`
}

// Palette resolves tiles to colors. Air, no liquid and no wall have no color
// of their own and fall through to the next layer.
type Palette struct {
	materials map[world.Material]tcell.Color
	liquids   map[world.Liquid]tcell.Color
	walls     map[world.Wall]tcell.Color
	depths    map[world.Depth]tcell.Color
}

// New builds a palette from a definition. Every depth band and every
// non-air material needs a color; unknown names are rejected.
func New(def Definition) (*Palette, error) {
	p := &Palette{}
	var err error

	if p.materials, err = resolve("material", def.Materials, world.Materials()[1:]); err != nil {
		return nil, err
	}
	if p.liquids, err = resolve("liquid", def.Liquids, world.Liquids()[1:]); err != nil {
		return nil, err
	}
	if p.walls, err = resolve("wall", def.Walls, world.Walls()[1:]); err != nil {
		return nil, err
	}
	if p.depths, err = resolve("depth", def.Depths, world.Depths()); err != nil {
		return nil, err
	}
	return p, nil
}

// resolve parses colors for the given enum values. Every value must be present.
func resolve[E interface {
	comparable
	String() string
}](kind string, colors map[string]string, values []E) (map[E]tcell.Color, error) {
	byName := make(map[string]E, len(values))
	for _, v := range values {
		byName[v.String()] = v
	}

	out := make(map[E]tcell.Color, len(values))
	for name, hex := range colors {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown %s %q", kind, name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", kind, name, err)
		}
		out[v] = c
	}

	for _, v := range values {
		if _, ok := out[v]; !ok {
			return nil, fmt.Errorf("no color for %s %s", kind, v)
		}
	}
	return out, nil
}

var (
	defaultOnce    sync.Once
	defaultPalette *Palette
)

// Default returns the embedded palette. It is built once and panics if the
// embedded table is broken.
func Default() *Palette {
	defaultOnce.Do(func() {
		p, err := New(MustLoad[Definition](DefaultFile))
		if err != nil {
			panic(err)
		}
		defaultPalette = p
	})
	return defaultPalette
}

// Color returns the color a tile is drawn with: its material, else its
// liquid, else its wall, else the background of its depth band.
func (p *Palette) Color(t world.Tile) tcell.Color {
	if t.Material() != world.MaterialAir {
		return p.materials[t.Material()]
	}
	if t.Liquid() != world.LiquidNone {
		return p.liquids[t.Liquid()]
	}
	if t.Wall() != world.WallAir {
		return p.walls[t.Wall()]
	}
	return p.depths[t.Depth()]
}
