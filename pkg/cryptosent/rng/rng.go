// Package rng provides the randomness capability used by the generator.
package rng

import "math/rand/v2"

// Source is a uniform random source.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
}

// New returns a seeded PCG-backed source.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed returns a seed from the runtime's entropy source.
func RandomSeed() uint64 { return rand.Uint64() }

// Split derives n independent seeds from a master seed. The result depends only on
// master and n, so per-asset streams are stable regardless of scheduling.
func Split(master uint64, n int) []uint64 {
	r := rand.New(rand.NewPCG(master, ^master))
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64()
	}
	return out
}

// Uniform returns a value in [lo, hi).
func Uniform(s Source, lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// IntRange returns a value in [lo, hi], both inclusive.
func IntRange(s Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func Chance(s Source, p float64) bool {
	return s.Float64() < p
}
