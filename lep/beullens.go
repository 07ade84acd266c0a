package lep

import (
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/secomms/lepcost/combin"
)

// BeullensEstimate is the outcome of the Beullens estimator: the minimal
// attack cost over all support weights, together with the weight realizing it.
type BeullensEstimate struct {
	Cost   Cost
	Weight int // support weight of the low-weight codewords at the optimum
}

// Equal reports whether e and other are identical.
func (e BeullensEstimate) Equal(other BeullensEstimate) bool {
	return cmp.Equal(e, other)
}

// AttackCost returns the minimal cost of the graph-based attack of Beullens
// on the given instance, or [Infeasible] when no support weight yields a
// working attack. The log2(n) instance-identification surcharge of the
// multiple-instance variant is left to the caller.
func AttackCost(p Parameters) (Cost, error) {
	estimate, err := Beullens(p)
	return estimate.Cost, err
}

// Beullens runs the same search as [AttackCost] and additionally reports the
// winning support weight. The search enumerates every support weight
// w in [2, n-k+1] exhaustively; ties are broken towards the smallest weight,
// so repeated calls return identical estimates.
func Beullens(p Parameters) (BeullensEstimate, error) {
	if err := p.Validate(); err != nil {
		return BeullensEstimate{}, err
	}

	best := BeullensEstimate{Cost: Infeasible()}

	for w := 2; w <= p.N-p.K+1; w++ {
		cost, feasible := beullensCandidate(p, w)
		if feasible && cost < best.Cost {
			best = BeullensEstimate{Cost: cost, Weight: w}
		}
	}

	return best, nil
}

// beullensCandidate returns the cost of the attack when run with low-weight
// codewords of support weight w, or feasible = false when that weight cannot
// carry the attack:
//   - fewer than two weight-w codewords are expected in a random code,
//   - the birthday-bound list would have to exceed the codeword universe,
//   - the candidate is degenerate (k < 2 or n-w < k-2), so that no
//     information set can isolate a weight-w word.
func beullensCandidate(p Parameters, w int) (cost Cost, feasible bool) {
	n, k := p.N, p.K

	if k < 2 || n-w < k-2 {
		return 0, false
	}

	universe := codewordUniverse(p, w)
	if universe < 1 {
		return 0, false
	}

	// Birthday bound: lists of size sqrt(2 log2(q) * |universe|) yield a
	// collision between the two codes with constant probability.
	listSize := (universe + 1 + math.Log2(p.LogQ())) / 2
	if listSize > universe {
		return 0, false
	}

	listComputation := listSize + isdCostPerCodeword(p, w, universe)
	normalForms := combin.ListCost(listSize) + 2

	return Cost(math.Max(listComputation, normalForms)), true
}

// codewordUniverse returns the log2 of the expected number of projective
// weight-w codewords of a random [n, k] code over F_q.
func codewordUniverse(p Parameters, w int) float64 {
	return combin.Log2Binomial(p.N, w) +
		float64(w-1)*math.Log2(float64(p.Q-1)) -
		float64(p.N-p.K)*p.LogQ()
}

// isdCostPerCodeword returns the log2 cost of producing one weight-w codeword
// with Lee-Brickell information-set decoding (enumeration width 2), given
// that 2^universe such codewords exist.
func isdCostPerCodeword(p Parameters, w int, universe float64) float64 {
	n, k := p.N, p.K

	prSingle := combin.Log2Binomial(w, 2) +
		combin.Log2Binomial(n-w, k-2) -
		combin.Log2Binomial(n, k)

	// Any of the 2^universe codewords ends the iteration.
	pr := math.Min(0, prSingle+universe)

	iteration := combin.AddLog2(
		math.Log2(float64(n-k)*float64(n-k)*float64(k)),
		combin.Log2Binomial(k, 2)+math.Log2(float64(p.Q-1)),
	)

	return iteration - pr
}
