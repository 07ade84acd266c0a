package lep

import (
	"math"
)

// Cost is the base-2 logarithm of an elementary operation count. Feasible
// costs are finite and non-negative; the infeasible outcome is +Inf, which
// compares larger than every finite cost so that minimizations over several
// attack variants ignore it naturally.
type Cost float64

// Infeasible returns the sentinel reported when no internal parameter choice
// yields a working attack. It is a legitimate modeling outcome, not an error.
func Infeasible() Cost {
	return Cost(math.Inf(1))
}

// Feasible reports whether c is a finite cost.
func (c Cost) Feasible() bool {
	return !math.IsInf(float64(c), 1)
}

// Min returns the smaller of c and other.
func (c Cost) Min(other Cost) Cost {
	if other < c {
		return other
	}

	return c
}

// Float64 returns c as a float64.
func (c Cost) Float64() float64 {
	return float64(c)
}
