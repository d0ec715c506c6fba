package domain

import "math/rand/v2"

// Rand draws uniformly distributed integers from a closed range [lo, hi].
// Callers guarantee lo <= hi.
type Rand interface {
	IntRange(lo, hi int) int
}

// Source is a PCG-backed Rand. It is not safe for concurrent use and not
// suitable for anything security sensitive.
type Source struct {
	r *rand.Rand
}

// NewRand returns a Source seeded from the runtime's random state, so two
// runs produce different output.
func NewRand() *Source {
	return NewSeededRand(rand.Uint64())
}

// NewSeededRand returns a Source whose draws are fully determined by seed.
func NewSeededRand(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) IntRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}
