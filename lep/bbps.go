package lep

import (
	"math"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/secomms/lepcost/combin"
	"github.com/secomms/lepcost/utils/bignum"
)

// BBPSEstimate is the outcome of the linear-Beullens estimator of Barenghi,
// Biasse, Persichetti and Santini: the corrected minimal cost together with
// the internal values realizing it.
type BBPSEstimate struct {
	Cost     Cost
	Weight   int     // support weight of the codewords at the optimum
	ListSize float64 // L': log2 size of the codeword lists at the optimum
	Universe float64 // N': log2 number of weight-w codewords at the optimum
}

// Equal reports whether e and other are identical.
func (e BBPSEstimate) Equal(other BBPSEstimate) bool {
	return cmp.Equal(e, other)
}

// ImprovedLinearBeullens returns the minimal cost of the linear-Beullens
// attack on the given instance. The search runs over the support weight w and
// an integer list-size exponent L', minimizing the sum of the list-collection,
// canonical-form and pair-verification workloads; the winning candidate's raw
// cost is then adjusted by [CouponCollectorCorrection], which replaces the
// closed-form approximation of the collection phase by the exact expected
// number of draws when the list covers most of the codeword universe.
//
// When no (w, L') candidate is feasible the returned estimate carries
// [Infeasible] and zeroed diagnostics.
func ImprovedLinearBeullens(p Parameters) (BBPSEstimate, error) {
	if err := p.Validate(); err != nil {
		return BBPSEstimate{}, err
	}

	n, k := p.N, p.K

	best := BBPSEstimate{Cost: Infeasible()}

	for w := 2; w <= n-k+1; w++ {

		if k < 2 || n-w < k-2 {
			continue
		}

		universe := codewordUniverse(p, w)
		if universe < 1 {
			continue
		}

		isd := isdCostPerCodeword(p, w, universe)

		for l := 1; float64(l) <= universe; l++ {

			listSize := float64(l)

			if combin.ExpectedMatches(listSize, listSize, universe) < 1 {
				continue
			}

			collection := listSize + isd
			canonicalForms := combin.ListCost(listSize) + 1
			verification := 2*listSize - universe + 2*math.Log2(float64(n))

			raw := combin.AddLog2(combin.AddLog2(collection, canonicalForms), verification)

			if Cost(raw) < best.Cost {
				best = BBPSEstimate{
					Cost:     Cost(raw),
					Weight:   w,
					ListSize: listSize,
					Universe: universe,
				}
			}
		}
	}

	if !best.Cost.Feasible() {
		return best, nil
	}

	best.Cost += Cost(CouponCollectorCorrection(best.ListSize, best.Universe))

	return best, nil
}

// CouponCollectorCorrection returns the log2 correction to apply on top of a
// cost that charges 2^listExp draws to collect 2^listExp distinct codewords
// out of a universe of 2^universeExp. The approximation is accurate while the
// list is small; once listExp > universeExp - 1 the exact expectation
//
//	ln(1 - 2^(listExp-universeExp)) / ln(1 - 2^(-universeExp))
//
// replaces it, so the correction is its log2 minus listExp. The expectation is
// evaluated with 64 + universeExp bits of precision, since at float64
// precision 1 - 2^(-universeExp) rounds to 1 long before the correction
// becomes negligible.
//
// The correction is zero when listExp <= universeExp - 1 and whenever a
// logarithm argument degenerates to a non-positive value.
func CouponCollectorCorrection(listExp, universeExp float64) float64 {
	if listExp <= universeExp-1 {
		return 0
	}

	prec := uint(64)
	if universeExp > 0 {
		prec += uint(math.Ceil(universeExp))
	}

	one := bignum.NewFloat(1, prec)

	num := new(big.Float).Sub(one, bignum.Exp2(bignum.NewFloat(listExp-universeExp, prec)))
	if num.Sign() <= 0 {
		return 0
	}

	den := new(big.Float).Sub(one, bignum.Exp2(bignum.NewFloat(-universeExp, prec)))
	if den.Sign() <= 0 {
		return 0
	}

	draws := new(big.Float).Quo(bignum.Log(num), bignum.Log(den))

	exact, _ := bignum.Log2(draws).Float64()

	correction := exact - listExp
	if math.IsNaN(correction) || math.IsInf(correction, 0) || correction < 0 {
		return 0
	}

	return correction
}
