// Package world provides the tile grid, world sizes and the finished world value.
package world

// Material is the foreground block occupying a tile.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialDirt
	MaterialGrass
	MaterialStone
	MaterialSand
	MaterialClay
	MaterialMud
	MaterialSilt
	MaterialSlush
	MaterialAsh
	MaterialCopper
	MaterialTin
	MaterialIron
	MaterialLead
	MaterialSilver
	MaterialTungsten
	MaterialGold
	MaterialPlatinum
	MaterialWeb

	materialCount
)

var materialNames = [materialCount]string{
	"air", "dirt", "grass", "stone", "sand", "clay", "mud", "silt", "slush", "ash",
	"copper", "tin", "iron", "lead", "silver", "tungsten", "gold", "platinum", "web",
}

// Materials returns every material in declaration order.
func Materials() []Material {
	all := make([]Material, materialCount)
	for i := range all {
		all[i] = Material(i)
	}
	return all
}

// String returns the material's lowercase name.
func (m Material) String() string {
	if m >= materialCount {
		return "unknown"
	}
	return materialNames[m]
}

// IsSolid returns true for anything other than air.
func (m Material) IsSolid() bool {
	return m != MaterialAir
}

// Liquid is the fluid resting in a tile.
type Liquid uint8

const (
	LiquidNone Liquid = iota
	LiquidWater
	LiquidLava
	LiquidHoney

	liquidCount
)

var liquidNames = [liquidCount]string{"none", "water", "lava", "honey"}

// Liquids returns every liquid in declaration order.
func Liquids() []Liquid {
	all := make([]Liquid, liquidCount)
	for i := range all {
		all[i] = Liquid(i)
	}
	return all
}

// String returns the liquid's lowercase name.
func (l Liquid) String() string {
	if l >= liquidCount {
		return "unknown"
	}
	return liquidNames[l]
}

// Wall is the background wall behind a tile.
type Wall uint8

const (
	WallAir Wall = iota
	WallDirt
	WallGrass

	wallCount
)

var wallNames = [wallCount]string{"air", "dirt", "grass"}

// Walls returns every wall in declaration order.
func Walls() []Wall {
	all := make([]Wall, wallCount)
	for i := range all {
		all[i] = Wall(i)
	}
	return all
}

// String returns the wall's lowercase name.
func (w Wall) String() string {
	if w >= wallCount {
		return "unknown"
	}
	return wallNames[w]
}

// Depth is the cosmetic band a tile belongs to. It only drives fallback coloring.
type Depth uint8

const (
	DepthSpace Depth = iota
	DepthOverworld
	DepthUnderground
	DepthCavern
	DepthUnderworld

	depthCount
)

var depthNames = [depthCount]string{"space", "overworld", "underground", "cavern", "underworld"}

// Depths returns every depth band from the top of the world down.
func Depths() []Depth {
	all := make([]Depth, depthCount)
	for i := range all {
		all[i] = Depth(i)
	}
	return all
}

// String returns the depth band's lowercase name.
func (d Depth) String() string {
	if d >= depthCount {
		return "unknown"
	}
	return depthNames[d]
}

// Tile represents a single world cell. The zero value is empty air.
type Tile struct {
	material    Material
	liquid      Liquid
	wall        Wall
	depth       Depth
	liquidLevel float32
}

// Material returns the tile's foreground material.
func (t Tile) Material() Material { return t.material }

// Liquid returns the fluid in the tile.
func (t Tile) Liquid() Liquid { return t.liquid }

// LiquidLevel returns the fill level in [0,1]. It is zero exactly when Liquid is LiquidNone.
func (t Tile) LiquidLevel() float32 { return t.liquidLevel }

// Wall returns the tile's background wall.
func (t Tile) Wall() Wall { return t.wall }

// Depth returns the tile's depth band.
func (t Tile) Depth() Depth { return t.depth }

// SetMaterial replaces the foreground material.
func (t *Tile) SetMaterial(m Material) { t.material = m }

// SetWall replaces the background wall.
func (t *Tile) SetWall(w Wall) { t.wall = w }

// SetDepth replaces the depth band.
func (t *Tile) SetDepth(d Depth) { t.depth = d }

// SetLiquid fills the tile with a liquid, or drains it for LiquidNone.
func (t *Tile) SetLiquid(l Liquid) {
	t.liquid = l
	if l == LiquidNone {
		t.liquidLevel = 0
	} else {
		t.liquidLevel = 1
	}
}

// SetLiquidLevel sets a partial fill. A level of zero or NaN drains the tile.
func (t *Tile) SetLiquidLevel(l Liquid, level float32) {
	if level > 1 {
		level = 1
	}
	if l == LiquidNone || !(level > 0) {
		t.liquid = LiquidNone
		t.liquidLevel = 0
		return
	}
	t.liquid = l
	t.liquidLevel = level
}
