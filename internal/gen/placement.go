package gen

import "github.com/samdwyer/terragen/internal/world"

const (
	// edgeMargin is the fraction of the world width kept free of features at each edge.
	edgeMargin = 0.05
	// maxPlacementAttempts bounds the rejection sampling in computeWithinUsableArea.
	maxPlacementAttempts = 100
)

// featureCounts holds the per-size number of placed surface features.
// Ranges are half-open [lo, hi).
type featureCounts struct {
	tunnels  [2]int
	deserts  [2]int
	anthills int
}

var featureTable = map[world.Size]featureCounts{
	world.SizeTiny:   {tunnels: [2]int{1, 3}, deserts: [2]int{2, 5}, anthills: 2},
	world.SizeSmall:  {tunnels: [2]int{3, 6}, deserts: [2]int{3, 6}, anthills: 2},
	world.SizeMedium: {tunnels: [2]int{4, 8}, deserts: [2]int{4, 7}, anthills: 3},
	world.SizeLarge:  {tunnels: [2]int{6, 10}, deserts: [2]int{5, 9}, anthills: 4},
}

func (g *Generator) features() featureCounts {
	return featureTable[g.size]
}

// computeStartCoordinate picks the first column of a featureWidth-wide span.
// Even slots land in the left half of the world and odd slots in the right
// half, so repeated features spread out. The span always fits in the grid.
func (g *Generator) computeStartCoordinate(slot, featureWidth int) int {
	width := g.grid.Width
	half := width / 2
	margin := int(float64(width) * edgeMargin)

	lo, hi := margin, half-margin
	if slot&1 == 1 {
		lo, hi = half+margin, width-margin
	}
	hi = min(hi, width-1-featureWidth)
	lo = max(0, min(lo, hi-1))

	return g.rng.Int(lo, hi)
}

// computeWithinUsableArea rejection-samples start columns until neither end
// of the span holds forbidden at its profile height and the span's columns
// are clear of every rect in taken. When every attempt is rejected the last
// candidate is used.
func (g *Generator) computeWithinUsableArea(profile []int, slot, featureWidth int, forbidden world.Material, taken []world.Rect) int {
	x := 0
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		x = g.computeStartCoordinate(slot, featureWidth)
		end := g.grid.ClampX(x + featureWidth)
		if g.grid.Material(x, profile[x]) == forbidden || g.grid.Material(end, profile[end]) == forbidden {
			continue
		}
		if g.overlapsAny(g.columns(x, featureWidth+1), taken) {
			continue
		}
		return x
	}
	return x
}

// columns returns the full-height rect covering width columns from x.
func (g *Generator) columns(x, width int) world.Rect {
	return world.Rect{X: x, Y: 0, Width: width, Height: g.grid.Height}
}

func (g *Generator) overlapsAny(r world.Rect, taken []world.Rect) bool {
	for _, t := range taken {
		if r.Intersects(g.columns(t.X, t.Width)) {
			return true
		}
	}
	return false
}

// octaves sums n noise samples, each at half the frequency and half the
// amplitude of the previous one.
func (g *Generator) octaves(x, y, scaleX, scaleY, offset float64, n int) float64 {
	sum, amp := 0.0, 1.0
	for i := 0; i < n; i++ {
		sum += g.rng.Noise(x*scaleX, y*scaleY+offset) * amp
		scaleX /= 2
		scaleY /= 2
		amp /= 2
	}
	return sum
}

// materialSet is a small lookup of materials a pass may overwrite.
type materialSet [32]bool

func setOf(materials ...world.Material) materialSet {
	var s materialSet
	for _, m := range materials {
		s[m] = true
	}
	return s
}

func (s *materialSet) has(m world.Material) bool {
	return int(m) < len(s) && s[m]
}
