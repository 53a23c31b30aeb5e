package qsynth

import (
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEqUpToPhase(t *testing.T) {
	Convey("Given the phase-insensitive comparator", t, func(c C) {
		Convey("A matrix equals any global-phase multiple of itself", func(c C) {
			h := GateH().Matrix()
			for _, phi := range []float64{0, 0.3, 1.57, -2.9} {
				shifted := ScaleMatrix(h, cmplx.Exp(complex(0, phi)))
				c.So(EqUpToPhase(shifted, h, 1e-9, 1e-12), ShouldBeTrue)
			}
		})

		Convey("Distinct operators are told apart", func(c C) {
			c.So(EqUpToPhase(PauliX, PauliZ, 1e-5, 1e-8), ShouldBeFalse)
			c.So(EqUpToPhase(PauliY, GateH().Matrix(), 1e-5, 1e-8), ShouldBeFalse)
		})

		Convey("A scaled matrix with non-unit modulus is rejected", func(c C) {
			c.So(EqUpToPhase(ScaleMatrix(PauliX, 2), PauliX, 1e-5, 1e-8), ShouldBeFalse)
		})

		Convey("Shape mismatches are rejected", func(c C) {
			c.So(EqUpToPhase(Identity(4), Identity(4), 1e-5, 1e-8), ShouldBeFalse)
			c.So(EqUpToPhase(nil, PauliX, 1e-5, 1e-8), ShouldBeFalse)
		})
	})
}
