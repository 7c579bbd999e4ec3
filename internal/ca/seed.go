package ca

import "math/rand/v2"

// SeedMode selects how generation zero is constructed.
type SeedMode string

const (
	// SeedCenter activates the single cell at position Cells/2.
	SeedCenter SeedMode = "center"
	// SeedRandom draws Bernoulli(0.5) bits from a seeded generator.
	SeedRandom SeedMode = "random"
)

// DefaultSeed matches the reference runs so random trajectories reproduce
// across processes.
const DefaultSeed = 42

// newRNG creates a deterministic generator for the provided seed.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// fillBinary fills buf with 0/1 values drawn from rng.
func fillBinary(rng *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(rng.IntN(2))
	}
}

// SeedRow writes generation zero into buf according to mode. Unknown modes
// fall back to SeedCenter; Simulate validates the mode before reaching here.
func SeedRow(buf []uint8, mode SeedMode, seed int64) {
	for i := range buf {
		buf[i] = 0
	}
	if len(buf) == 0 {
		return
	}
	switch mode {
	case SeedRandom:
		fillBinary(newRNG(seed), buf)
	default:
		buf[len(buf)/2] = 1
	}
}
