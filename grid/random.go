// Package grid - deterministic random obstacle placement.
//
// Policy:
//   - seed == 0 ⇒ defaultSeed, so the zero value is still reproducible.
//   - Start and goal are never overwritten.
//   - math/rand.Rand is not goroutine-safe; a fresh source is built per call.
package grid

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// RandomObstacles turns each cell into an obstacle with probability density,
// protecting the current start and goal. Existing obstacles are kept.
// density is clamped to [0,1].
// Complexity: O(W×H).
func (g *Grid) RandomObstacles(density float64, seed int64) {
	switch {
	case density <= 0:
		return
	case density > 1:
		density = 1
	}
	rng := rngFromSeed(seed)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if rng.Float64() >= density {
				continue
			}
			p := Point{X: x, Y: y}
			if p == g.start || p == g.goal {
				continue
			}
			g.roles[g.index(x, y)] = Obstacle
		}
	}
}
