package qsynth

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNamedGates(t *testing.T) {
	Convey("Given the named gate constructors", t, func(c C) {
		gates := []Gate{GateX(), GateY(), GateZ(), GateH(), GateS(), GateT()}

		Convey("Every gate matrix is unitary", func(c C) {
			for _, g := range gates {
				c.So(IsUnitary(g.Matrix()), ShouldBeTrue)
			}
		})

		Convey("Matrix returns a copy, not the backing table", func(c C) {
			g := GateX()
			m := g.Matrix()
			m[0][0] = 42
			c.So(g.Matrix()[0][0], ShouldEqual, complex(0, 0))
			c.So(PauliX[0][0], ShouldEqual, complex(0, 0))
		})

		Convey("S squared is Z and T squared is S", func(c C) {
			s2 := MatMul(GateS().Matrix(), GateS().Matrix())
			c.So(CAllClose(s2, GateZ().Matrix(), 1e-9, 1e-12), ShouldBeTrue)

			t2 := MatMul(GateT().Matrix(), GateT().Matrix())
			c.So(CAllClose(t2, GateS().Matrix(), 1e-9, 1e-12), ShouldBeTrue)
		})
	})
}

func TestRotationGates(t *testing.T) {
	Convey("Given the parameterized rotation gates", t, func(c C) {
		thetas := []float64{0, 0.3, math.Pi / 2, math.Pi, -2.4, 5.9}

		Convey("Each rotation agrees with the axis-rotation closed form", func(c C) {
			for _, theta := range thetas {
				c.So(CAllClose(Rx(theta).Matrix(), AxisRotation(theta, [3]float64{1, 0, 0}), 1e-12, 1e-12), ShouldBeTrue)
				c.So(CAllClose(Ry(theta).Matrix(), AxisRotation(theta, [3]float64{0, 1, 0}), 1e-12, 1e-12), ShouldBeTrue)
				c.So(CAllClose(Rz(theta).Matrix(), AxisRotation(theta, [3]float64{0, 0, 1}), 1e-12, 1e-12), ShouldBeTrue)
			}
		})

		Convey("A pi rotation about each axis is the Pauli gate up to phase", func(c C) {
			c.So(EqUpToPhase(Rx(math.Pi).Matrix(), PauliX, 1e-9, 1e-12), ShouldBeTrue)
			c.So(EqUpToPhase(Ry(math.Pi).Matrix(), PauliY, 1e-9, 1e-12), ShouldBeTrue)
			c.So(EqUpToPhase(Rz(math.Pi).Matrix(), PauliZ, 1e-9, 1e-12), ShouldBeTrue)
		})

		Convey("Rotations compose additively about a fixed axis", func(c C) {
			lhs := MatMul(Rz(0.7).Matrix(), Rz(1.1).Matrix())
			c.So(CAllClose(lhs, Rz(1.8).Matrix(), 1e-12, 1e-12), ShouldBeTrue)
		})
	})
}
