package gen

import (
	"context"
	"sync"
	"testing"

	"github.com/samdwyer/terragen/internal/random"
	"github.com/samdwyer/terragen/internal/world"
)

// stubRandom is a predictable Random. Int pops queued values first and
// returns min afterwards; Float returns the middle of its range; Noise is flat.
type stubRandom struct {
	ints    []int
	counter uint64
}

func (s *stubRandom) Float(min, max float64) float64 { return min + (max-min)/2 }

func (s *stubRandom) Int(min, max int) int {
	if len(s.ints) > 0 {
		v := s.ints[0]
		s.ints = s.ints[1:]
		return v
	}
	return min
}

func (s *stubRandom) Noise(x, y float64) float64 { return 0 }

func (s *stubRandom) Next() uint64 {
	s.counter++
	return s.counter
}

// newTestGenerator builds a generator on a custom-sized grid, so that
// size-dependent behavior can be tested without allocating a full world.
func newTestGenerator(size world.Size, width, height int, rng Random) *Generator {
	return &Generator{
		size:      size,
		grid:      world.NewGrid(width, height),
		rng:       rng,
		oreStamps: make(map[world.Material]int),
	}
}

// flat returns a constant height profile.
func flat(width, h int) []int {
	p := make([]int, width)
	for i := range p {
		p[i] = h
	}
	return p
}

// fill sets every cell of the grid to m.
func fill(g *world.Grid, m world.Material) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetMaterial(x, y, m)
		}
	}
}

var (
	tinyOnce sync.Once
	tinyGen  *Generator
	tinyErr  error
)

// tinyRun returns a Tiny generator for seed 999 that has run the whole
// pipeline but not been finished. It is shared between tests and must not be mutated.
func tinyRun(t *testing.T) *Generator {
	t.Helper()
	tinyOnce.Do(func() {
		g, err := New(world.SizeTiny, 999)
		if err != nil {
			tinyErr = err
			return
		}
		tinyErr = g.Run(context.Background())
		tinyGen = g
	})
	if tinyErr != nil {
		t.Fatalf("Tiny generation failed: %v", tinyErr)
	}
	return tinyGen
}

var _ Random = (*random.Source)(nil)
