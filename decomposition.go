// decomposition.go
package qsynth

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/num/quat"
)

/*
OneQubitDecomposition holds every canonical representation of a single-qubit
unitary: the global phase and SU(2) form, Euler angles under the ZYZ and ZXZ
conventions, the equivalent unit quaternion, and the axis-angle form. All
fields are computed at construction and the value is immutable afterwards,
so instances may be shared across goroutines freely.

The conventions tie together as

	U          = phase * su2
	su2        = Rz(alpha) * R(beta) * Rz(gamma)   (up to sign, R = Ry or Rx)
	su2        = w*I - i*(x*X + y*Y + z*Z)          for quaternion (w, x, y, z)
	su2        = exp(-0.5i * theta * (v . sigma))   for the axis-angle form

where the sign ambiguity comes from reducing the Euler angles into [0, 2pi):
the reconstructed product may be -su2, which is the same operator up to
global phase.
*/
type OneQubitDecomposition struct {
	u     [][]complex128
	phase complex128
	su2   [][]complex128

	zyz [3]float64
	zxz [3]float64

	quaternion      quat.Number
	rotationAngle   float64
	canonicalVector [3]float64
}

// NewOneQubitDecomposition validates u and computes all derived
// representations. u must be a 2x2 unitary within tolerance; the input is
// copied, never retained.
func NewOneQubitDecomposition(u [][]complex128) (*OneQubitDecomposition, error) {
	if !isSquare(u, 2) {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidInput, len(u))
	}
	if !IsUnitary(u) {
		return nil, fmt.Errorf("%w: U*U† deviates from the identity beyond tolerance", ErrInvalidInput)
	}

	d := &OneQubitDecomposition{u: copyMatrix(u)}

	// |det U| = 1 for unitary U, so the principal square root is the
	// unique phase with det(U/phase) = 1.
	d.phase = cmplx.Sqrt(Det2(d.u))
	d.su2 = ScaleMatrix(d.u, 1/d.phase)

	d.zyz = eulerFromEntries(d.su2[0][0], d.su2[1][0])
	d.zxz = eulerFromEntries(d.su2[0][0], 1i*d.su2[1][0])

	// Read the quaternion straight off the SU(2) entries under
	// su2 = w*I - i*(x*X + y*Y + z*Z). Unitarity of the first row makes
	// the result unit-norm without renormalizing.
	d.quaternion = quat.Number{
		Real: real(d.su2[0][0]),
		Imag: -imag(d.su2[0][1]),
		Jmag: -real(d.su2[0][1]),
		Kmag: -imag(d.su2[0][0]),
	}

	w := math.Max(-1, math.Min(1, d.quaternion.Real))
	d.rotationAngle = 2 * math.Acos(w)

	// The axis is undefined at theta = 0 (identity) and theta = 2pi
	// (su2 = -I); both reconstruct exactly from the fixed Z axis.
	if s := math.Sin(d.rotationAngle / 2); math.Abs(s) < degenerateTol {
		d.canonicalVector = [3]float64{0, 0, 1}
	} else {
		d.canonicalVector = [3]float64{
			d.quaternion.Imag / s,
			d.quaternion.Jmag / s,
			d.quaternion.Kmag / s,
		}
	}

	errnie.Info(
		"NewOneQubitDecomposition - phase %v, theta %v",
		d.phase,
		d.rotationAngle,
	)

	return d, nil
}

// Phase returns the global phase factor, with phase * SU2() == U.
func (d *OneQubitDecomposition) Phase() complex128 {
	return d.phase
}

// SU2 returns a copy of the determinant-1 normalization of the input.
func (d *OneQubitDecomposition) SU2() [][]complex128 {
	return copyMatrix(d.su2)
}

// Quaternion returns the unit quaternion equivalent to SU2().
func (d *OneQubitDecomposition) Quaternion() quat.Number {
	return d.quaternion
}

// RotationAngle returns theta of the axis-angle form, in [0, 2pi].
func (d *OneQubitDecomposition) RotationAngle() float64 {
	return d.rotationAngle
}

// CanonicalVector returns the unit rotation axis. When the rotation is the
// identity the axis is undefined; the fixed default is the Z axis.
func (d *OneQubitDecomposition) CanonicalVector() [3]float64 {
	return d.canonicalVector
}

// EulerAngles returns (alpha, beta, gamma) in radians for the requested
// convention, "zyz" or "zxz". beta lies in [0, pi], alpha and gamma in
// [0, 2pi).
func (d *OneQubitDecomposition) EulerAngles(method string) ([3]float64, error) {
	switch method {
	case "zyz":
		return d.zyz, nil
	case "zxz":
		return d.zxz, nil
	default:
		return [3]float64{}, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
}

// ToCircuit synthesizes the input operator as a three-gate rotation
// sequence under the requested convention. The circuit's unitary equals
// the original matrix up to global phase.
func (d *OneQubitDecomposition) ToCircuit(method string) (*Circuit, error) {
	angles, err := d.EulerAngles(method)
	if err != nil {
		return nil, err
	}

	mid := Ry
	if method == "zxz" {
		mid = Rx
	}

	// Application order is gamma first, so the composed matrix product is
	// Rz(alpha) * R(beta) * Rz(gamma).
	return NewCircuit().
		Add(Rz(angles[2])).
		Add(mid(angles[1])).
		Add(Rz(angles[0])), nil
}

// eulerFromEntries solves su2 = Rz(alpha) * R(beta) * Rz(gamma) given the
// entries m00 = exp(-i(alpha+gamma)/2)*cos(beta/2) and
// m10 = exp(i(alpha-gamma)/2)*sin(beta/2). For the ZXZ convention the
// caller passes i*m10, which has the same form.
//
// When beta is 0 or pi only the sum (or difference) of alpha and gamma is
// determined. The canonical resolution pins the argument of the vanishing
// entry to zero: for beta = 0 the residual phase splits evenly between
// alpha and gamma, for beta = pi alpha = arg(m10) and gamma = -arg(m10).
func eulerFromEntries(m00, m10 complex128) [3]float64 {
	beta := 2 * math.Atan2(cmplx.Abs(m10), cmplx.Abs(m00))

	var phi0, phi1 float64
	switch {
	case cmplx.Abs(m10) < degenerateTol:
		phi0 = cmplx.Phase(m00)
	case cmplx.Abs(m00) < degenerateTol:
		phi1 = cmplx.Phase(m10)
	default:
		phi0 = cmplx.Phase(m00)
		phi1 = cmplx.Phase(m10)
	}

	return [3]float64{mod2Pi(phi1 - phi0), beta, mod2Pi(-phi0 - phi1)}
}

// mod2Pi reduces x into [0, 2pi).
func mod2Pi(x float64) float64 {
	m := math.Mod(x, tau)
	if m < 0 {
		m += tau
	}
	return m
}

// String renders the decomposition for debugging: global phase, the ZYZ
// rotation sequence, and the axis-angle summary.
func (d *OneQubitDecomposition) String() string {
	circ, _ := d.ToCircuit("zyz")
	v := d.canonicalVector
	q := d.quaternion

	var b strings.Builder
	b.WriteString("OneQubitDecomposition(\n")
	b.WriteString("  global phase: " + strconv.FormatComplex(d.phase, 'g', -1, 128) + ",\n")
	b.WriteString("  ZYZ decomposition:\n")
	b.WriteString("    " + circ.Diagram() + "\n")
	b.WriteString("    euler angles: " + fmtFixed(d.zyz[:]) + ")\n")
	b.WriteString("  Axis-angle decomposition:\n")
	b.WriteString("    SU(2) = exp(-0.5i * theta * (xX + yY + zZ))\n")
	b.WriteString("    canonical vector (x, y, z): " + fmtSci([]float64{v[0], v[1], v[2]}) + ",\n")
	b.WriteString("    theta: " + strconv.FormatFloat(d.rotationAngle, 'g', -1, 64) + ",\n")
	b.WriteString("    quaternion representation: " + fmtSci([]float64{q.Real, q.Imag, q.Jmag, q.Kmag}) + "\n")
	b.WriteString(")")
	return b.String()
}

func fmtFixed(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'f', 8, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func fmtSci(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("% .6e", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
