package grid

import (
	"fmt"
	"math/rand"
)

// Random builds a width×height grid with costs drawn uniformly from
// [lo, hi] inclusive. The same rng seed always yields the same grid.
//
// Returns ErrEmptyGrid for a non-positive dimension and ErrNegativeCost
// if lo < 0. Panics if hi < lo or rng is nil.
// Complexity: O(W×H).
func Random(width, height, lo, hi int, rng *rand.Rand) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if lo < 0 {
		return nil, fmt.Errorf("%w: lower bound %d", ErrNegativeCost, lo)
	}
	if hi < lo {
		panic(fmt.Sprintf("grid.Random: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
		for x := range values[y] {
			values[y][x] = lo + rng.Intn(hi-lo+1)
		}
	}
	return New(values)
}
