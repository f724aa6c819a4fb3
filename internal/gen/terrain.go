package gen

import (
	"fmt"
	"math"
)

const (
	// goalStep bounds a single goal move, in multiples of the amplitude.
	goalStep = 4.0
	// trendBias pushes each new goal against the run of previous moves.
	trendBias = 0.35
	// velocitySmoothing is the per-column blend factor toward the desired velocity.
	velocitySmoothing = 0.12
	// jitterScale sets how quickly the surface roughness varies along x.
	jitterScale = 8.0
)

// RandomTerrain produces one height per column using a goal-seeking smoothed
// random walk kept within [minHeight, maxHeight], plus a coherent-noise
// jitter of at most amplitude on top.
//
// Draw order per goal change is timer, then delta; the jitter noise offset
// is drawn once per call.
func (g *Generator) RandomTerrain(minHeight, maxHeight int, amplitude float64, period int) ([]int, error) {
	if minHeight > maxHeight {
		return nil, fmt.Errorf("%w: min height %d above max height %d", ErrDegenerateTerrain, minHeight, maxHeight)
	}
	if period <= 0 {
		return nil, fmt.Errorf("%w: period %d must be positive", ErrDegenerateTerrain, period)
	}
	if amplitude < 0 || math.IsNaN(amplitude) {
		return nil, fmt.Errorf("%w: amplitude %v must not be negative", ErrDegenerateTerrain, amplitude)
	}

	lo, hi := float64(minHeight), float64(maxHeight)
	height := (lo + hi) / 2
	goal := height
	velocity := 0.0
	trend := 0
	goalTimer := 0

	jitterOffset := g.noiseOffset()
	heights := make([]int, g.grid.Width)

	for x := range heights {
		if goalTimer <= 0 {
			goalTimer = g.rng.Int(period-period/4, period+period/4+1)

			delta := g.rng.Float(-goalStep, goalStep)*amplitude - float64(trend)*trendBias*amplitude
			delta = math.Max(lo-goal, math.Min(hi-goal, delta))
			goal += delta

			switch {
			case delta > 0:
				trend = max(trend, 0) + 1
			case delta < 0:
				trend = min(trend, 0) - 1
			}
		}
		goalTimer--

		// Reach the goal over roughly half a period, without jumps.
		desired := (goal - height) * 2 / float64(period)
		velocity += (desired - velocity) * velocitySmoothing
		height = math.Max(lo, math.Min(hi, height+velocity))

		jitter := g.rng.Noise(float64(x)*jitterScale, jitterOffset) * amplitude
		heights[x] = int(math.Round(height + jitter))
	}

	return heights, nil
}
