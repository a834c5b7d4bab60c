package domain

import "math/rand/v2"

// NewRandomSource returns a PCG-backed RandomSource. The same seed always
// yields the same draws.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed draws a non-zero seed from the process-wide generator.
func NewSeed() uint64 {
	for {
		if seed := rand.Uint64(); seed != 0 {
			return seed
		}
	}
}
