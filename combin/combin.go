// Package combin provides the combinatorial primitives shared by the
// attack-cost estimators: binomial and factorial counts, list-processing
// costs and collision expectations, all expressed in the log2 domain so
// that workload sizes far beyond the float64 range remain representable.
package combin

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Log2Binomial returns log2(C(total, chosen)), computed through the log-gamma
// function to avoid overflow. It panics if the arguments are outside
// 0 <= chosen <= total.
func Log2Binomial[T constraints.Integer](total, chosen T) float64 {
	if total < 0 || chosen < 0 || chosen > total {
		panic(fmt.Errorf("combin: Log2Binomial(%d, %d): require 0 <= chosen <= total", total, chosen))
	}

	a, _ := math.Lgamma(float64(total) + 1)
	b, _ := math.Lgamma(float64(chosen) + 1)
	c, _ := math.Lgamma(float64(total-chosen) + 1)

	return (a - b - c) / math.Ln2
}

// Log2Factorial returns log2(x!). It panics if x < 0.
func Log2Factorial[T constraints.Integer](x T) float64 {
	if x < 0 {
		panic(fmt.Errorf("combin: Log2Factorial(%d): require x >= 0", x))
	}

	y, _ := math.Lgamma(float64(x) + 1)

	return y / math.Ln2
}

// ListCost returns the cost, in log2 operations, of materializing and sorting
// a list of 2^sizeExp entries: sizeExp + log2(sizeExp + 1). It is strictly
// increasing in sizeExp and panics for a negative or NaN argument.
func ListCost(sizeExp float64) float64 {
	if sizeExp < 0 || math.IsNaN(sizeExp) {
		panic(fmt.Errorf("combin: ListCost(%f): require sizeExp >= 0", sizeExp))
	}

	return sizeExp + math.Log2(sizeExp+1)
}

// ExpectedMatches returns the expected number of colliding pairs between two
// lists of 2^la and 2^lb uniform elements drawn from a universe of 2^lu
// elements. The returned value is linear (not log2) and underflows to 0 when
// the expectation is negligible.
func ExpectedMatches(la, lb, lu float64) float64 {
	return math.Exp2(la + lb - lu)
}

// AddLog2 returns log2(2^a + 2^b) without leaving the log2 domain.
func AddLog2(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}

	if math.IsInf(b, -1) {
		return a
	}

	return a + math.Log2(1+math.Exp2(b-a))
}
