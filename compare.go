// compare.go
package qsynth

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// EqUpToPhase reports whether two 2x2 unitaries are equal up to a global
// phase factor. It checks that a * b† is a unit-modulus scalar multiple of
// the identity: both off-diagonal entries vanish and the diagonal entries
// agree, within |x| <= atol + rtol*|ref|.
func EqUpToPhase(a, b [][]complex128, rtol, atol float64) bool {
	if !isSquare(a, 2) || !isSquare(b, 2) {
		return false
	}
	m := MatMul(a, ConjugateTranspose(b))

	lambda := m[0][0]
	if !scalar.EqualWithinAbs(cmplx.Abs(lambda), 1, atol+rtol) {
		return false
	}
	if cmplx.Abs(m[0][1]) > atol+rtol || cmplx.Abs(m[1][0]) > atol+rtol {
		return false
	}
	return cmplx.Abs(m[1][1]-lambda) <= atol+rtol*cmplx.Abs(lambda)
}
