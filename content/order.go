package content

import "math/rand/v2"

// PresentationOrder returns the card IDs in display order
// A nil rng keeps deck order; otherwise a Fisher-Yates permutation drawn from rng
func PresentationOrder(n int, rng *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return order
}

// NewRand returns a deterministic generator for a seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
