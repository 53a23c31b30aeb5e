package qsynth

import "math"

// Numerical tolerances used throughout the package. They are fixed
// operating parameters, not configuration: every downstream formula
// assumes the unitarity check below has already passed.
const (
	// Elementwise tolerances for the unitarity check at construction,
	// applied as |a-b| <= atol + rtol*|b| on U*U† against the identity.
	unitaryRTol = 1e-5
	unitaryATol = 1e-8

	// Below this magnitude a matrix entry is treated as exactly zero when
	// resolving the degenerate Euler-angle branch and the undefined
	// rotation axis of the identity.
	degenerateTol = 1e-12

	// Tolerances for the axis-angle reconstruction, looser than the
	// construction tolerance because that path compounds several
	// derivations.
	axisAngleRTol = 1e-4
	axisAngleATol = 1e-6
)

const tau = 2 * math.Pi
