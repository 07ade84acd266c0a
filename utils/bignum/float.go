// Package bignum provides arbitrary precision arithmetic helpers on top of
// [big.Float].
package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat returns a new [big.Float] set to x with prec bits of mantissa.
func NewFloat(x float64, prec uint) (y *big.Float) {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Ln2 returns ln(2) with prec bits of mantissa.
func Ln2(prec uint) (y *big.Float) {
	return bigfloat.Log(NewFloat(2, prec))
}

// Log returns ln(x) with the precision of x.
func Log(x *big.Float) (y *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with the precision of x.
func Exp(x *big.Float) (y *big.Float) {
	return bigfloat.Exp(x)
}

// Log2 returns log2(x) with the precision of x.
func Log2(x *big.Float) (y *big.Float) {
	return new(big.Float).Quo(bigfloat.Log(x), Ln2(x.Prec()))
}

// Exp2 returns 2^{x} with the precision of x.
func Exp2(x *big.Float) (y *big.Float) {
	return bigfloat.Exp(new(big.Float).SetPrec(x.Prec()).Mul(x, Ln2(x.Prec())))
}
