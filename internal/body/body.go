// Package body aggregates the panels of every wing in an assembly and
// propagates the apparent inflow, including solid-body rotation, onto
// each of them.
package body

import (
	"math"

	"github.com/kitewing/vsmgo/internal/panel"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
	"github.com/kitewing/vsmgo/internal/wing"
)

// BodyAerodynamics collects the panels of one or more wings into a
// single flat index used by AIC assembly and the circulation solver.
type BodyAerodynamics struct {
	Wings  []*wing.Wing
	Panels []*panel.Panel

	VaGlobal vecmath.Vec3
	Omega    vecmath.Vec3
	Origin   vecmath.Vec3

	AlphaUncorrected []float64
	AlphaCorrected   []float64
	Gamma            []float64

	ProjectedArea float64
}

// New builds panels for every wing by refining its sections, in wing
// order, so panel index P = sum of each wing's n_panels.
func New(wings []*wing.Wing, origin vecmath.Vec3) (*BodyAerodynamics, error) {
	b := &BodyAerodynamics{Wings: wings, Origin: origin}
	if err := b.InitPanels(); err != nil {
		return nil, err
	}
	return b, nil
}

// InitPanels rebuilds b.Panels from the current refined sections of
// every wing. Call after any wing's user sections or distribution
// change.
func (b *BodyAerodynamics) InitPanels() error {
	var panels []*panel.Panel
	for _, w := range b.Wings {
		refined, err := w.Refine()
		if err != nil {
			return err
		}
		for i := 0; i+1 < len(refined); i++ {
			p, err := panel.New(refined[i], refined[i+1])
			if err != nil {
				return err
			}
			panels = append(panels, p)
		}
	}
	b.Panels = panels
	n := len(panels)
	b.AlphaUncorrected = make([]float64, n)
	b.AlphaCorrected = make([]float64, n)
	b.Gamma = make([]float64, n)
	return nil
}

// SetVA sets the global apparent inflow and body rotation rate, then
// recomputes every panel's local va = va_global + omega x (aero_center
// - origin) and the corresponding semi-infinite filament direction.
func (b *BodyAerodynamics) SetVA(va, omega vecmath.Vec3) error {
	b.VaGlobal = va
	b.Omega = omega
	for _, p := range b.Panels {
		r := p.AeroCenter.Sub(b.Origin)
		local := va.Add(omega.Cross(r))
		if !local.IsFinite() {
			return vsmerr.NewNonFiniteState("BodyAerodynamics.SetVA", vsmerr.ErrNonFinite)
		}
		p.Va = local
		dir := local
		if dir.Norm() > 0 {
			dir = dir.Normalize()
		}
		p.SetFreestreamDirection(dir)
	}
	b.ProjectedArea = b.computeProjectedArea()
	return nil
}

// computeProjectedArea sums each panel's planform area weighted by the
// cosine between its normal and the lift axis (global Z with its
// freestream component removed, or global X when the freestream is
// vertical), i.e. the area projected onto the plane that contains the
// freestream and is perpendicular to the lift axis.
func (b *BodyAerodynamics) computeProjectedArea() float64 {
	vaHat := b.VaGlobal
	if vaHat.Norm() == 0 {
		return 0
	}
	vaHat = vaHat.Normalize()

	up := vecmath.Vec3{Z: 1}
	liftAxis := up.Sub(vaHat.Scale(vaHat.Dot(up)))
	if liftAxis.Norm() < 1e-9 {
		x := vecmath.Vec3{X: 1}
		liftAxis = x.Sub(vaHat.Scale(vaHat.Dot(x)))
	}
	liftAxis = liftAxis.Normalize()

	total := 0.0
	for _, p := range b.Panels {
		area := p.Chord * p.Width
		total += area * math.Abs(p.ZAirf.Dot(liftAxis))
	}
	return total
}
