// Package sweep evaluates attack-cost estimators over grids of code
// parameters, keeping only the instances for which the attack is feasible.
// Estimator calls are independent, so grids are evaluated on a worker pool;
// the returned results are deterministically ordered regardless of worker
// interleaving.
package sweep

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/secomms/lepcost/lep"
	"github.com/secomms/lepcost/utils/concurrency"
)

// Range is a half-open interval [Min, Max) of integers visited with the given
// step. A step below 1 is treated as 1.
type Range struct {
	Min, Max, Step int
}

// Values returns the values of the range in increasing order.
func (r Range) Values() (values []int) {
	step := r.Step
	if step < 1 {
		step = 1
	}

	for v := r.Min; v < r.Max; v += step {
		values = append(values, v)
	}

	return
}

// Grid is the cartesian product of three ranges for n, k and q.
type Grid struct {
	N, K, Q Range
}

// Parameters enumerates the valid parameter tuples of the grid in row-major
// (n, k, q) order. Tuples outside the validity range (e.g. a grid corner with
// k > n) are skipped, not reported as errors.
func (g Grid) Parameters() (params []lep.Parameters) {
	for _, n := range g.N.Values() {
		for _, k := range g.K.Values() {
			for _, q := range g.Q.Values() {
				p, err := lep.NewParameters(n, k, q)
				if err != nil {
					continue
				}
				params = append(params, p)
			}
		}
	}

	return
}

// Estimator maps a problem instance to an attack cost.
// [lep.AttackCost] satisfies this signature directly.
type Estimator func(lep.Parameters) (lep.Cost, error)

// WithInstanceOverhead wraps an [Estimator] with the additional log2(n)
// factor charged by attack variants that must first identify the instance
// under attack. Infeasible outcomes are passed through unchanged.
func WithInstanceOverhead(estimate Estimator) Estimator {
	return func(p lep.Parameters) (lep.Cost, error) {
		cost, err := estimate(p)
		if err != nil || !cost.Feasible() {
			return cost, err
		}
		return cost + lep.Cost(math.Log2(float64(p.N))), nil
	}
}

// Result is one feasible grid point together with its estimated cost.
type Result struct {
	Params lep.Parameters
	Cost   lep.Cost
}

// Equal reports whether r and other are identical.
func (r Result) Equal(other Result) bool {
	return cmp.Equal(r, other)
}

// Run evaluates the estimator on every valid tuple of the grid using the
// given number of workers and returns the feasible results sorted by
// (n, k, q). Infeasible outcomes are discarded; estimator errors abort the
// sweep.
func Run(grid Grid, estimate Estimator, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	params := grid.Parameters()

	manager := concurrency.NewResourceManager(make([]struct{}, workers))

	out := make(chan Result, len(params))

	for _, p := range params {
		manager.Run(func(struct{}) error {
			cost, err := estimate(p)
			if err != nil {
				return err
			}
			if cost.Feasible() {
				out <- Result{Params: p, Cost: cost}
			}
			return nil
		})
	}

	if err := manager.Wait(); err != nil {
		return nil, err
	}

	close(out)

	results := make([]Result, 0, len(params))
	for r := range out {
		results = append(results, r)
	}

	slices.SortFunc(results, func(a, b Result) int {
		if c := a.Params.N - b.Params.N; c != 0 {
			return c
		}
		if c := a.Params.K - b.Params.K; c != 0 {
			return c
		}
		return a.Params.Q - b.Params.Q
	})

	return results, nil
}
