// Package random provides the single seeded source of randomness used during generation.
package random

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// noiseFrequency scales every noise lookup so that integer tile coordinates
// land on a smoothly varying field.
const noiseFrequency = 0.01

// Source bundles a uniform generator, a coherent noise field and a
// decorrelation counter. All draws for one world go through one Source.
type Source struct {
	rng     *rand.Rand
	noise   opensimplex.Noise
	counter uint64
}

// New creates a source fully determined by seed.
func New(seed int64) *Source {
	return &Source{
		rng:     rand.New(rand.NewSource(seed)),
		noise:   opensimplex.New(seed),
		counter: uint64(seed),
	}
}

// Float returns a uniform real in [min, max).
func (s *Source) Float(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Int returns a uniform integer in [min, max). It returns min when the range is empty.
func (s *Source) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

// Noise samples the coherent noise field at (x, y). The result lies in [-1, 1].
func (s *Source) Noise(x, y float64) float64 {
	n := s.noise.Eval2(x*noiseFrequency, y*noiseFrequency)
	return math.Max(-1, math.Min(1, n))
}

// Next returns the current counter value and advances it. Feed it into noise
// coordinates to keep otherwise identical lookups from correlating.
func (s *Source) Next() uint64 {
	n := s.counter
	s.counter++
	return n
}
