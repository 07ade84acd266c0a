// Package lep implements complexity estimators for combinatorial attacks
// against the linear code equivalence problem: the graph-based attack of
// Beullens and its refinement by Barenghi, Biasse, Persichetti and Santini
// (BBPS). Costs are expressed as log2 counts of elementary field operations.
package lep

import (
	"errors"
	"fmt"
	"math"
)

// ErrParameters is the error returned for code parameters outside their
// validity range.
var ErrParameters = errors.New("lep: invalid parameters")

// Parameters describes one problem instance: a random [N, K] linear code
// over the field with Q elements.
type Parameters struct {
	N int // code length
	K int // code dimension
	Q int // field size
}

// NewParameters returns the [Parameters] for an [n, k] code over F_q,
// or an error wrapping [ErrParameters] if n < 1, k not in (0, n] or q < 2.
func NewParameters(n, k, q int) (Parameters, error) {
	p := Parameters{N: n, K: k, Q: q}
	return p, p.Validate()
}

// Validate checks that the receiver lies in the documented validity range.
func (p Parameters) Validate() error {
	switch {
	case p.N < 1:
		return fmt.Errorf("%w: n = %d, require n >= 1", ErrParameters, p.N)
	case p.K < 1 || p.K > p.N:
		return fmt.Errorf("%w: k = %d, require 0 < k <= n = %d", ErrParameters, p.K, p.N)
	case p.Q < 2:
		return fmt.Errorf("%w: q = %d, require q >= 2", ErrParameters, p.Q)
	}

	return nil
}

// LogQ returns log2(q).
func (p Parameters) LogQ() float64 {
	return math.Log2(float64(p.Q))
}

func (p Parameters) String() string {
	return fmt.Sprintf("linear equivalence problem with (n, k, q) = (%d, %d, %d)", p.N, p.K, p.Q)
}
