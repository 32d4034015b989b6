package filament

import (
	"math"

	"github.com/kitewing/vsmgo/internal/vecmath"
)

// epsAbs guards against division by exactly zero when a point lies on a
// filament's own axis; it is far smaller than any physically meaningful
// core radius.
const epsAbs = 1e-20

// segmentVelocity evaluates the Biot-Savart law for a straight segment
// p1->p2 of circulation gamma at point p, with Rankine core
// regularization scaled by coreFraction*len(p1,p2).
func segmentVelocity(p, p1, p2 vecmath.Vec3, gamma, coreFraction float64) vecmath.Vec3 {
	r1 := p.Sub(p1)
	r2 := p.Sub(p2)
	r0 := p2.Sub(p1)

	cross := r1.Cross(r2)
	crossNormSq := cross.Dot(cross)
	if crossNormSq < epsAbs {
		return vecmath.Vec3{}
	}
	crossNorm := math.Sqrt(crossNormSq)

	r0Norm := r0.Norm()
	if r0Norm < epsAbs {
		return vecmath.Vec3{}
	}
	rho := math.Max(coreFraction*r0Norm, epsAbs)

	r1Norm := r1.Norm()
	r2Norm := r2.Norm()
	if r1Norm < rho || r2Norm < rho {
		return vecmath.Vec3{}
	}

	d := crossNorm / r0Norm

	dot := r0.Dot(r1.Scale(1 / r1Norm).Sub(r2.Scale(1 / r2Norm)))
	scale := gamma / (4 * math.Pi) * dot / crossNormSq

	v := cross.Scale(scale)
	if d < rho {
		factor := (d / rho) * (d / rho)
		v = v.Scale(factor)
	}
	return v
}

// semiInfiniteVelocity evaluates the Biot-Savart law for a filament of
// circulation gamma leaving pivot and extending to infinity along the
// unit vector dir, obtained as the limit of segmentVelocity as its far
// endpoint recedes to infinity. The regularization length is the
// distance from p to pivot, the only finite length scale available.
func semiInfiniteVelocity(p, pivot, dir vecmath.Vec3, gamma, coreFraction float64) vecmath.Vec3 {
	r1 := p.Sub(pivot)
	r1Norm := r1.Norm()
	if r1Norm < epsAbs {
		return vecmath.Vec3{}
	}
	rho := math.Max(coreFraction*r1Norm, epsAbs)
	if r1Norm < rho {
		return vecmath.Vec3{}
	}

	perp := dir.Cross(r1)
	h2 := perp.Dot(perp)
	if h2 < epsAbs {
		return vecmath.Vec3{}
	}
	h := math.Sqrt(h2)

	cosTheta := dir.Dot(r1) / r1Norm
	scale := gamma / (4 * math.Pi) * (1 + cosTheta) / h2

	v := perp.Scale(scale)
	if h < rho {
		factor := (h / rho) * (h / rho)
		v = v.Scale(factor)
	}
	return v
}
