// circuit.go
package qsynth

import "strings"

/*
Circuit is an ordered sequence of single-qubit gates. Gates are listed in
application order: the first gate added is the first applied to the state,
so AsUnitary multiplies the matrices with the last gate leftmost.
*/
type Circuit struct {
	gates []Gate
}

// NewCircuit returns an empty single-qubit circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// Add appends a gate to the circuit and returns the circuit for chaining.
func (c *Circuit) Add(g Gate) *Circuit {
	c.gates = append(c.gates, g)
	return c
}

// Gates returns the gate sequence in application order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// AsUnitary returns the 2x2 unitary the circuit implements.
func (c *Circuit) AsUnitary() [][]complex128 {
	u := Identity(2)
	for _, g := range c.gates {
		u = MatMul(g.matrix, u)
	}
	return u
}

// Diagram renders the circuit as a one-line wire, e.g.
// ------Rz--Ry--Rz------ for a ZYZ rotation sequence.
func (c *Circuit) Diagram() string {
	if len(c.gates) == 0 {
		return strings.Repeat("-", 12)
	}
	names := make([]string, len(c.gates))
	for i, g := range c.gates {
		names[i] = g.Name
	}
	return "------" + strings.Join(names, "--") + "------"
}
