// gates.go
package qsynth

import (
	"math"
	"math/cmplx"
)

// Pauli matrices. Initialized once and treated as read-only for the
// lifetime of the process.
var (
	PauliX = [][]complex128{{0, 1}, {1, 0}}
	PauliY = [][]complex128{{0, -1i}, {1i, 0}}
	PauliZ = [][]complex128{{1, 0}, {0, -1}}
)

/*
Gate is a named single-qubit operation together with its 2x2 matrix.
Construct gates through the package constructors; the matrix is copied
out on access so the shared tables stay untouched.
*/
type Gate struct {
	Name   string
	Params []float64
	matrix [][]complex128
}

// Matrix returns a copy of the gate's 2x2 unitary.
func (g Gate) Matrix() [][]complex128 {
	return copyMatrix(g.matrix)
}

// GateX returns the Pauli-X (NOT) gate.
func GateX() Gate { return Gate{Name: "X", matrix: copyMatrix(PauliX)} }

// GateY returns the Pauli-Y gate.
func GateY() Gate { return Gate{Name: "Y", matrix: copyMatrix(PauliY)} }

// GateZ returns the Pauli-Z gate.
func GateZ() Gate { return Gate{Name: "Z", matrix: copyMatrix(PauliZ)} }

// GateH returns the Hadamard gate.
func GateH() Gate {
	h := complex(1/math.Sqrt2, 0)
	return Gate{Name: "H", matrix: [][]complex128{{h, h}, {h, -h}}}
}

// GateS returns the phase gate S = sqrt(Z).
func GateS() Gate {
	return Gate{Name: "S", matrix: [][]complex128{{1, 0}, {0, 1i}}}
}

// GateT returns the T gate, a rotation by pi/4 about Z up to phase.
func GateT() Gate {
	return Gate{Name: "T", matrix: [][]complex128{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}}
}

// Rx returns a rotation by theta about the X axis.
func Rx(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return Gate{
		Name:   "Rx",
		Params: []float64{theta},
		matrix: [][]complex128{{c, s}, {s, c}},
	}
}

// Ry returns a rotation by theta about the Y axis.
func Ry(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Gate{
		Name:   "Ry",
		Params: []float64{theta},
		matrix: [][]complex128{{c, -s}, {s, c}},
	}
}

// Rz returns a rotation by theta about the Z axis.
func Rz(theta float64) Gate {
	e := cmplx.Exp(complex(0, theta/2))
	return Gate{
		Name:   "Rz",
		Params: []float64{theta},
		matrix: [][]complex128{{cmplx.Conj(e), 0}, {0, e}},
	}
}

// AxisRotation builds exp(-0.5i * theta * (vx*X + vy*Y + vz*Z)) for a unit
// axis v, using the closed form cos(theta/2)*I - i*sin(theta/2)*(v.sigma).
func AxisRotation(theta float64, axis [3]float64) [][]complex128 {
	c := math.Cos(theta / 2)
	s := math.Sin(theta / 2)
	vx, vy, vz := axis[0], axis[1], axis[2]
	return [][]complex128{
		{complex(c, -s*vz), complex(-s*vy, -s*vx)},
		{complex(s*vy, -s*vx), complex(c, s*vz)},
	}
}
