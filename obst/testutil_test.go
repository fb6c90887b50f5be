package obst_test

import (
	"math/rand/v2"

	"github.com/katalvlaran/optbst/fraction"
)

// ints converts integer literals into fractions n/1.
func ints(vs ...int64) []fraction.Fraction {
	out := make([]fraction.Fraction, len(vs))
	for i, v := range vs {
		out[i] = fraction.FromInt(v)
	}
	return out
}

// ascendingKeys returns keys 1..n.
func ascendingKeys(n int) []fraction.Fraction {
	out := make([]fraction.Fraction, n)
	for i := range out {
		out[i] = fraction.FromInt(int64(i + 1))
	}
	return out
}

// randomWeights returns n fractions p/q with 1 ≤ p ≤ 9 and q in {1,2,4}.
// Small denominators keep exact sums far from int64 limits.
func randomWeights(n int, seed uint64) []fraction.Fraction {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	dens := []int64{1, 2, 4}
	out := make([]fraction.Fraction, n)
	for i := range out {
		out[i] = fraction.MustNew(rng.Int64N(9)+1, dens[rng.IntN(len(dens))])
	}
	return out
}

// referenceTable is a plain-int, single-threaded rendition of the recurrence
// with the same strict less-than tie-break. It re-sums ranges on purpose.
func referenceTable(w []int64) (cost [][]int64, root [][]int) {
	n := len(w)
	cost = make([][]int64, n)
	root = make([][]int, n)
	for i := range cost {
		cost[i] = make([]int64, n)
		root[i] = make([]int, n)
	}
	for length := 1; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			var sum int64
			for k := i; k <= j; k++ {
				sum += w[k]
			}
			best, bestR := int64(1<<62), -1
			for r := i; r <= j; r++ {
				var left, right int64
				if r > i {
					left = cost[i][r-1]
				}
				if r < j {
					right = cost[r+1][j]
				}
				if left+right < best {
					best, bestR = left+right, r
				}
			}
			cost[i][j] = best + sum
			root[i][j] = bestR
		}
	}
	return cost, root
}
