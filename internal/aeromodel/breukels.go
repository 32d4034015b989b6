package aeromodel

import "math"

// LeiBreukels is the analytic Breukels correlation for a Leading-Edge
// Inflatable airfoil: a fixed polynomial in (tube diameter, camber
// height, angle of attack). TubeDiameter and CamberHeight are both
// fractions of chord.
type LeiBreukels struct {
	TubeDiameter float64
	CamberHeight float64
}

// The coefficient table below is the fixed Breukels correlation used
// consistently by Cl and CdCm; nothing in this package recomputes or
// perturbs these values, so the model is bit-identical across calls with
// identical inputs. C20..C33 build the lift polynomial's bias (lambda5),
// tube-only alpha-linear term (lambda6), and the two alpha/alpha^2
// coefficients (lambda7, lambda8); C34..C40 and C41..C45 build drag and
// moment respectively.
const (
	C20, C21, C22 = -0.008011, -0.000336, 0.000992
	C23, C24, C25 = 0.013936, -0.003838, -0.000161
	C26, C27, C28 = 0.001243, -0.009288, -0.002124
	C29           = 0.012267
	C30, C31      = -0.002398, 0.001548
	C32, C33      = -0.000564, 0.000129

	C34, C35, C36 = 0.006, 0.005, 0.0009
	C37, C38, C39 = -0.0004, 0.0016, 0.0007
	C40           = 0.00002

	C41, C42, C43 = 0.0688, 0.0161, 0.0129
	C44, C45      = -0.0011, -0.0006
)

// Cl evaluates the lift polynomial. alpha is in radians internally but
// the fitted polynomial is expressed in degrees, matching the published
// correlation. lambda5 is the (t, kappa) bias term including the
// quadratic-in-kappa and cubic-in-t contributions the reduced form
// dropped; lambda6 is the tube-diameter-only alpha-linear term; lambda7
// and lambda8 are the alpha and alpha^2 coefficients.
func (b LeiBreukels) Cl(alpha, _ float64) float64 {
	aDeg := alpha * 180 / math.Pi
	t, k := b.TubeDiameter, b.CamberHeight

	lambda5 := C20*t*t + C21*t + C22 + C30*t*t*t + C31*k*k + C32*k + C33*t*k
	lambda6 := C29 * t
	lambda7 := C23*t*t + C24*t + C25
	lambda8 := C26*t*t + C27*t + C28

	return lambda5 + (lambda7+lambda6)*aDeg + lambda8*aDeg*aDeg*1e-3
}

func (b LeiBreukels) CdCm(alpha, _ float64) (cd, cm float64) {
	aDeg := alpha * 180 / math.Pi
	t, k := b.TubeDiameter, b.CamberHeight

	cd = C34 + C35*t + C36*k +
		C37*aDeg*1e-1 + C38*aDeg*aDeg*1e-3 +
		C39*t*k + C40*aDeg*aDeg*aDeg*1e-4
	if cd < 0 {
		cd = 0
	}

	cm = -(C41 + C42*t + C43*k + C44*aDeg*1e-1 + C45*aDeg*aDeg*1e-3)
	return
}
