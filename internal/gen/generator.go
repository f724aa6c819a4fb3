// Package gen implements the seeded world generation pipeline.
package gen

import (
	"errors"
	"fmt"

	"github.com/samdwyer/terragen/internal/random"
	"github.com/samdwyer/terragen/internal/world"
)

var (
	// ErrDegenerateTerrain is returned when a terrain walk is asked for an inverted or empty band.
	ErrDegenerateTerrain = errors.New("degenerate terrain parameters")

	// ErrNotFinished is returned by Finish when the pipeline has not run to completion.
	ErrNotFinished = errors.New("generation has not completed")
)

// Random is the source of every draw made during generation.
// random.Source is the production implementation.
type Random interface {
	Float(min, max float64) float64
	Int(min, max int) int
	Noise(x, y float64) float64
	Next() uint64
}

// Point is a cell position.
type Point struct {
	X, Y int
}

// Levels holds the depth band boundaries, as row indexes from the top of the world.
type Levels struct {
	Space      int // first row of the overworld
	Surface    int // first row of the underground
	Cavern     int // first row of the cavern layer
	Lava       int // caves below this row fill with lava instead of water
	Underworld int // first row of the underworld
}

// Generator owns the grid and random source for one generation run.
type Generator struct {
	size  world.Size
	grid  *world.Grid
	rng   Random
	stage Stage

	levels  Levels
	surface []int
	dirt    []int
	rock    []int

	anthills  []Anthill
	oreStamps map[world.Material]int
	skipped   []string
}

// New creates a generator for the given size, seeded with seed.
func New(size world.Size, seed int64) (*Generator, error) {
	return NewWithSource(size, random.New(seed))
}

// NewWithSource creates a generator drawing from rng.
func NewWithSource(size world.Size, rng Random) (*Generator, error) {
	width, height, err := size.Dimensions()
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}

	return &Generator{
		size:      size,
		grid:      world.NewGrid(width, height),
		rng:       rng,
		stage:     StageInitial,
		oreStamps: make(map[world.Material]int),
	}, nil
}

// Size returns the world size being generated.
func (g *Generator) Size() world.Size { return g.size }

// Grid exposes the working grid. It is nil once Finish has been called.
func (g *Generator) Grid() *world.Grid { return g.grid }

// Stage returns the last pipeline stage entered.
func (g *Generator) Stage() Stage { return g.stage }

// Levels returns the depth band boundaries chosen for this run.
func (g *Generator) Levels() Levels { return g.levels }

// Anthills returns the mounds placed by GenerateAnthills.
func (g *Generator) Anthills() []Anthill { return g.anthills }

// OreStamps returns how many blobs were stamped per ore material.
func (g *Generator) OreStamps() map[world.Material]int { return g.oreStamps }

// Skipped lists the pipeline passes that are not implemented yet and did nothing.
func (g *Generator) Skipped() []string { return g.skipped }

// Noise offsets are folded into offsetPeriod slots offsetStride units
// apart, which keeps lookups decorrelated and coordinates small for any seed.
const (
	offsetPeriod = 1 << 16
	offsetStride = 1000.0
)

// noiseOffset draws the coordinate offset for one family of noise lookups.
func (g *Generator) noiseOffset() float64 {
	return float64(g.rng.Next()%offsetPeriod) * offsetStride
}

// RandomHeight returns a row at a uniformly random fraction in [min, max) of the world height.
func (g *Generator) RandomHeight(min, max float64) int {
	return int(float64(g.grid.Height) * g.rng.Float(min, max))
}

// Finish hands the grid over to an immutable World. The generator cannot be used afterwards.
func (g *Generator) Finish() (*world.World, error) {
	if g.stage != StageFixups {
		return nil, fmt.Errorf("%w: stopped at %s", ErrNotFinished, g.stage)
	}

	w, err := world.New(g.grid, g.size)
	if err != nil {
		return nil, err
	}
	g.grid = nil
	g.stage = StageFinished
	return w, nil
}
