package genome

import (
	"fmt"
	"math"
	"math/rand"
)

// stochasticRound rounds x to an adjacent integer, resolving the fractional
// part by chance: a remainder of 0.3 yields the upper integer with
// probability 0.3. Repeated rounding of the same non-integral target is
// therefore unbiased instead of a constant.
func stochasticRound(rng *rand.Rand, x float64) int {
	floor := math.Floor(x)
	n := int(floor)
	if frac := x - floor; frac > 0 && rng.Float64() < frac {
		n++
	}
	return n
}

// sampleDistinct draws k distinct indices uniformly from [0, n) without
// replacement using Floyd's algorithm, so every k-subset is equally likely.
// The result is in insertion order; callers wanting ascending order sort it.
func sampleDistinct(rng *rand.Rand, n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: cannot draw %d distinct indices from %d", ErrInvariant, k, n)
	}

	picked := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := rng.Intn(j + 1)
		if _, ok := picked[t]; ok {
			t = j
		}
		picked[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}
