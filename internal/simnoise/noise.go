// Package simnoise wraps math/rand with the named noise-generation helpers the
// simulation packages compose into physical sensor models. Unlike a shared,
// process-wide RNG, every Generator is constructed from an explicit seed and
// never reads the wall clock, so two calls with the same seed and the same
// call sequence always produce identical output.
package simnoise

import (
	"math"
	"math/rand"
)

// Generator is a deterministic source of the random primitives the
// simulation packages need: Gaussian and uniform draws, weighted selection,
// and the mean-reverting noise path used by the degradation model.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded explicitly. The caller owns seed derivation
// (truck seed, day seed, and so on) — this type never seeds itself.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Gaussian returns a value from N(mean, stdDev^2).
func (g *Generator) Gaussian(mean, stdDev float64) float64 {
	return mean + g.rng.NormFloat64()*stdDev
}

// GaussianClamped returns a Gaussian draw clamped to [lo, hi].
func (g *Generator) GaussianClamped(mean, stdDev, lo, hi float64) float64 {
	return Clamp(g.Gaussian(mean, stdDev), lo, hi)
}

// TruncatedNormal draws from N(mid, ((hi-lo)/4)^2) clamped to [lo, hi], the
// sampling scheme used throughout the duty-cycle model so ~95% of draws land
// inside the mode's natural range without a true truncated-distribution
// rejection loop.
func (g *Generator) TruncatedNormal(lo, hi float64) float64 {
	mid := (lo + hi) / 2.0
	std := (hi - lo) / 4.0
	return g.GaussianClamped(mid, std, lo, hi)
}

// Uniform returns a uniform draw in [lo, hi).
func (g *Generator) Uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// UniformInt returns a uniform integer draw in [lo, hi] inclusive.
func (g *Generator) UniformInt(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// Bool returns true with the given probability.
func (g *Generator) Bool(probability float64) bool {
	return g.rng.Float64() < probability
}

// Float64 returns a uniform draw in [0, 1), exposed for callers that need
// the raw primitive (e.g. Bernoulli detection trials).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// SelectWeighted picks an index from weights proportional to their value.
func (g *Generator) SelectWeighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// ShuffleInts shuffles ids in place using Fisher-Yates driven by this
// generator's stream.
func (g *Generator) ShuffleInts(ids []int) {
	g.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// MeanRevertingPath precomputes an AR(1) mean-reverting noise path of length
// n (n[0]=0, n[i] = decay*n[i-1] + N(0,1)), then normalizes it into [-1, 1].
// This is the bounded random-walk noise source behind the degradation model;
// it is NOT a Wiener process, since a Wiener process has no mean-reversion
// term and would let noise accumulate without bound over a multi-thousand-hour
// simulation horizon.
func (g *Generator) MeanRevertingPath(n int, decay float64) []float64 {
	path := make([]float64, n)
	maxAbs := 1e-8
	for i := 1; i < n; i++ {
		path[i] = decay*path[i-1] + g.rng.NormFloat64()
		if a := math.Abs(path[i]); a > maxAbs {
			maxAbs = a
		}
	}
	for i := range path {
		path[i] /= maxAbs
	}
	return path
}

// ClampPositive floors a value at zero.
func ClampPositive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
