package qsynth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given an empty circuit", t, func(c C) {
		circ := NewCircuit()

		Convey("Its unitary is the identity", func(c C) {
			c.So(CAllClose(circ.AsUnitary(), Identity(2), 1e-12, 1e-12), ShouldBeTrue)
		})

		Convey("Its diagram is a bare wire", func(c C) {
			c.So(circ.Diagram(), ShouldEqual, "------------")
		})
	})

	Convey("Given a circuit with gates", t, func(c C) {
		circ := NewCircuit().Add(GateX()).Add(GateH())

		Convey("The unitary composes with the last gate leftmost", func(c C) {
			want := MatMul(GateH().Matrix(), GateX().Matrix())
			c.So(CAllClose(circ.AsUnitary(), want, 1e-12, 1e-12), ShouldBeTrue)
		})

		Convey("The diagram lists gates in application order", func(c C) {
			c.So(circ.Diagram(), ShouldEqual, "------X--H------")
		})

		Convey("Gates returns a copy of the sequence", func(c C) {
			gates := circ.Gates()
			c.So(len(gates), ShouldEqual, 2)
			gates[0] = GateZ()
			c.So(circ.Gates()[0].Name, ShouldEqual, "X")
		})
	})
}
