// matrix.go
package qsynth

import (
	"math"
	"math/cmplx"
)

// Identity returns the n x n identity matrix.
func Identity(n int) [][]complex128 {
	m := make([][]complex128, n)
	for i := range m {
		m[i] = make([]complex128, n)
		m[i][i] = 1
	}
	return m
}

// MatMul returns the matrix product a * b.
func MatMul(a, b [][]complex128) [][]complex128 {
	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]complex128, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]complex128, cols)
		for j := 0; j < cols; j++ {
			var sum complex128
			for k := 0; k < inner; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// ConjugateTranspose returns the Hermitian adjoint of a.
func ConjugateTranspose(a [][]complex128) [][]complex128 {
	rows, cols := len(a), len(a[0])
	out := make([][]complex128, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]complex128, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = cmplx.Conj(a[i][j])
		}
	}
	return out
}

// ScaleMatrix returns a with every entry multiplied by s.
func ScaleMatrix(a [][]complex128, s complex128) [][]complex128 {
	out := make([][]complex128, len(a))
	for i := range a {
		out[i] = make([]complex128, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] * s
		}
	}
	return out
}

// Det2 returns the determinant of a 2x2 matrix.
func Det2(a [][]complex128) complex128 {
	return a[0][0]*a[1][1] - a[0][1]*a[1][0]
}

// CAllClose reports whether a and b agree elementwise within
// |a-b| <= atol + rtol*|b|. Shapes must already match.
func CAllClose(a, b [][]complex128, rtol, atol float64) bool {
	for i := range a {
		for j := range a[i] {
			diff := cmplx.Abs(a[i][j] - b[i][j])
			if diff > atol+rtol*cmplx.Abs(b[i][j]) {
				return false
			}
			if math.IsNaN(diff) {
				return false
			}
		}
	}
	return true
}

// IsUnitary reports whether a is square and satisfies a * a† = I
// within the package tolerances.
func IsUnitary(a [][]complex128) bool {
	n := len(a)
	for i := range a {
		if len(a[i]) != n {
			return false
		}
	}
	return CAllClose(MatMul(a, ConjugateTranspose(a)), Identity(n), unitaryRTol, unitaryATol)
}

func isSquare(a [][]complex128, n int) bool {
	if len(a) != n {
		return false
	}
	for i := range a {
		if len(a[i]) != n {
			return false
		}
	}
	return true
}

func copyMatrix(a [][]complex128) [][]complex128 {
	out := make([][]complex128, len(a))
	for i := range a {
		out[i] = make([]complex128, len(a[i]))
		copy(out[i], a[i])
	}
	return out
}
