package sweep

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secomms/lepcost/lep"
)

func TestRangeValues(t *testing.T) {
	require.Equal(t, []int{7, 11}, Range{Min: 7, Max: 12, Step: 4}.Values())
	require.Equal(t, []int{100, 101, 102}, Range{Min: 100, Max: 103}.Values())
	require.Nil(t, Range{Min: 5, Max: 5}.Values())
}

func TestGridSkipsInvalidCorners(t *testing.T) {
	grid := Grid{
		N: Range{Min: 5, Max: 6},
		K: Range{Min: 4, Max: 8},
		Q: Range{Min: 2, Max: 3},
	}

	params := grid.Parameters()
	require.Len(t, params, 2) // k = 4 and k = 5; k > n dropped silently

	for _, p := range params {
		require.NoError(t, p.Validate())
	}
}

// Reference sweep of the multiple-instance Beullens variant over
// n in [100, 102], k in [50, 52], q in {7, 11}: every instance is feasible
// and matches AttackCost(n, k, q) + log2(n).
var sweepKAT = map[[3]int]float64{
	{100, 50, 7}:  42.59252365215012,
	{100, 50, 11}: 46.20427532475846,
	{100, 51, 7}:  42.5534288151006,
	{100, 51, 11}: 46.16536272150303,
	{100, 52, 7}:  42.498477583777685,
	{100, 52, 11}: 46.10723879458814,
	{101, 50, 7}:  42.90853197540862,
	{101, 50, 11}: 46.57540697295114,
	{101, 51, 7}:  42.875427910457375,
	{101, 51, 11}: 46.554468919440495,
	{101, 52, 7}:  42.82628490273182,
	{101, 52, 11}: 46.482973080138784,
	{102, 50, 7}:  43.23016520183628,
	{102, 50, 11}: 46.91218796362343,
	{102, 51, 7}:  43.1983417002239,
	{102, 51, 11}: 46.89921953490861,
	{102, 52, 7}:  43.15518618373151,
	{102, 52, 11}: 46.86776309109408,
}

func TestRunKAT(t *testing.T) {
	grid := Grid{
		N: Range{Min: 100, Max: 103},
		K: Range{Min: 50, Max: 53},
		Q: Range{Min: 7, Max: 12, Step: 4},
	}

	results, err := Run(grid, WithInstanceOverhead(lep.AttackCost), 4)
	require.NoError(t, err)
	require.Len(t, results, len(sweepKAT))

	for _, r := range results {
		expected, ok := sweepKAT[[3]int{r.Params.N, r.Params.K, r.Params.Q}]
		require.True(t, ok)
		require.InDelta(t, expected, r.Cost.Float64(), 0.01)
	}
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	grid := Grid{
		N: Range{Min: 60, Max: 66},
		K: Range{Min: 30, Max: 33},
		Q: Range{Min: 5, Max: 8, Step: 2},
	}

	serial, err := Run(grid, lep.AttackCost, 1)
	require.NoError(t, err)
	parallel, err := Run(grid, lep.AttackCost, 8)
	require.NoError(t, err)

	require.Equal(t, len(serial), len(parallel))
	for i := range serial {
		require.True(t, serial[i].Equal(parallel[i]))
	}
}

func TestRunDiscardsInfeasible(t *testing.T) {
	// k = n tuples are valid parameters but infeasible instances; they are
	// dropped from the results, not reported as errors.
	grid := Grid{
		N: Range{Min: 10, Max: 11},
		K: Range{Min: 9, Max: 11},
		Q: Range{Min: 3, Max: 4},
	}

	results, err := Run(grid, lep.AttackCost, 2)
	require.NoError(t, err)

	for _, r := range results {
		require.NotEqual(t, r.Params.N, r.Params.K)
		require.True(t, r.Cost.Feasible())
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	grid := Grid{
		N: Range{Min: 10, Max: 12},
		K: Range{Min: 5, Max: 6},
		Q: Range{Min: 2, Max: 3},
	}

	broken := func(p lep.Parameters) (lep.Cost, error) {
		return 0, fmt.Errorf("estimator failure on %v", p)
	}

	_, err := Run(grid, broken, 2)
	require.Error(t, err)
}

func TestWithInstanceOverhead(t *testing.T) {
	constant := func(lep.Parameters) (lep.Cost, error) { return 10, nil }
	infeasible := func(lep.Parameters) (lep.Cost, error) { return lep.Infeasible(), nil }

	p, err := lep.NewParameters(256, 128, 7)
	require.NoError(t, err)

	cost, err := WithInstanceOverhead(constant)(p)
	require.NoError(t, err)
	require.InDelta(t, 18, cost.Float64(), 1e-12) // 10 + log2(256)

	cost, err = WithInstanceOverhead(infeasible)(p)
	require.NoError(t, err)
	require.False(t, cost.Feasible())
}
