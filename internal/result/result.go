// Package result integrates converged circulation and inflow into
// global force and moment coefficients and spanwise distributions.
package result

import (
	"math"

	"github.com/kitewing/vsmgo/internal/body"
	"github.com/kitewing/vsmgo/internal/panel"
	"github.com/kitewing/vsmgo/internal/solver"
	"github.com/kitewing/vsmgo/internal/vecmath"
)

// Result is the outcome of one converged solve, exposing global
// coefficients plus per-panel distributions for reporting or plotting.
type Result struct {
	CL, CD, CM, CS float64
	FGlobal        vecmath.Vec3
	MGlobal        vecmath.Vec3

	GammaDistribution []float64
	ClDistribution    []float64
	CdDistribution    []float64
	CmDistribution    []float64
	AlphaArray        []float64

	ProjectedArea float64
}

// Integrate computes forces and moments about referencePoint from the
// converged solver state, then nondimensionalizes by the freestream
// dynamic pressure and the body's projected area.
func Integrate(b *body.BodyAerodynamics, state *solver.State, cfg solver.Config, referencePoint vecmath.Vec3) *Result {
	n := len(b.Panels)
	r := &Result{
		GammaDistribution: make([]float64, n),
		ClDistribution:    make([]float64, n),
		CdDistribution:    make([]float64, n),
		CmDistribution:    make([]float64, n),
		AlphaArray:         make([]float64, n),
		ProjectedArea:      b.ProjectedArea,
	}

	var fTotal, mTotal vecmath.Vec3
	rho := cfg.Density

	for i, p := range b.Panels {
		gamma := state.Gamma[i]
		alpha := state.Alpha[i]
		r.GammaDistribution[i] = gamma
		r.AlphaArray[i] = alpha

		veff := state.Veff[i]
		speed := veff.Norm()

		cl := p.Aero.Cl(alpha, 0)
		cd, cm := p.Aero.CdCm(alpha, 0)
		r.ClDistribution[i] = cl
		r.CdDistribution[i] = cd
		r.CmDistribution[i] = cm

		liftDir := liftDirection(veff, p.ZAirf)
		lift := rho * speed * gamma
		liftForce := liftDir.Scale(lift * p.Width)

		q := 0.5 * rho * speed * speed
		dragForce := vecmath.Vec3{}
		if speed > 0 {
			dragForce = veff.Scale(1 / speed).Scale(q * p.Chord * cd * p.Width)
		}

		sectionForce := liftForce.Add(dragForce)
		fTotal = fTotal.Add(sectionForce)

		sectionMoment := p.YAirf.Scale(q * p.Chord * p.Chord * cm * p.Width)
		arm := p.AeroCenter.Sub(referencePoint)
		mTotal = mTotal.Add(sectionMoment).Add(arm.Cross(sectionForce))
	}

	r.FGlobal = fTotal
	r.MGlobal = mTotal

	uInf := b.VaGlobal.Norm()
	if uInf > 0 && r.ProjectedArea > 0 {
		q := 0.5 * rho * uInf * uInf * r.ProjectedArea
		vaHat := b.VaGlobal.Normalize()
		liftAxis := verticalComponent(vaHat)
		r.CL = fTotal.Dot(liftAxis) / q
		r.CD = fTotal.Dot(vaHat) / q
		r.CS = fTotal.Dot(vaHat.Cross(liftAxis)) / q
		r.CM = mTotal.Dot(vaHat.Cross(liftAxis)) / (q * refChord(b.Panels))
	}

	return r
}

// liftDirection returns the unit vector perpendicular to veff lying in
// the plane spanned by veff and the panel normal, oriented so a positive
// gamma produces lift along +z_airf-like sense.
func liftDirection(veff, normal vecmath.Vec3) vecmath.Vec3 {
	speed := veff.Norm()
	if speed == 0 {
		return normal
	}
	vHat := veff.Scale(1 / speed)
	proj := normal.Sub(vHat.Scale(vHat.Dot(normal)))
	if proj.Norm() == 0 {
		return normal
	}
	return proj.Normalize()
}

// verticalComponent isolates the direction perpendicular to the
// freestream that best represents "up", used to project total force
// into lift. Absent a defined body-up axis, global Z is used, projected
// orthogonal to the freestream.
func verticalComponent(vaHat vecmath.Vec3) vecmath.Vec3 {
	z := vecmath.Vec3{Z: 1}
	proj := z.Sub(vaHat.Scale(vaHat.Dot(z)))
	if proj.Norm() < 1e-9 {
		x := vecmath.Vec3{X: 1}
		proj = x.Sub(vaHat.Scale(vaHat.Dot(x)))
	}
	return proj.Normalize()
}

func refChord(panels []*panel.Panel) float64 {
	if len(panels) == 0 {
		return 1
	}
	sum := 0.0
	for _, p := range panels {
		sum += p.Chord
	}
	avg := sum / float64(len(panels))
	if avg == 0 || math.IsNaN(avg) {
		return 1
	}
	return avg
}
