package battle

import "math/rand/v2"

// SeededEntropy is the default Entropy implementation: a PCG source
// seeded at construction, so two engines built with the same seed value
// produce identical rolls given identical call sequences.
type SeededEntropy struct {
	rng *rand.Rand
}

// NewSeededEntropy returns a deterministic Entropy seeded from seed1/seed2.
// Use the same pair on every peer that must reproduce the same battle.
func NewSeededEntropy(seed1, seed2 uint64) *SeededEntropy {
	return &SeededEntropy{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Intn returns a pseudo-random integer in [0, n).
func (e *SeededEntropy) Intn(n int) int {
	return e.rng.IntN(n)
}

// Uint64 returns a pseudo-random uint64.
func (e *SeededEntropy) Uint64() uint64 {
	return e.rng.Uint64()
}
