package solver

import (
	"github.com/kitewing/vsmgo/internal/compute"
	"github.com/kitewing/vsmgo/internal/panel"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// evalPoint returns the point at which panel p's angle of attack is
// reconstructed: the control point for VSM, the aerodynamic center for
// LLT.
func evalPoint(p *panel.Panel, model Model) vecmath.Vec3 {
	if model == LLT {
		return p.AeroCenter
	}
	return p.ControlPoint
}

// BuildAIC fills state's three influence-coefficient matrices (full,
// and bound-only for the LLT self-induction subtraction) with the
// induced velocity at every eval point due to unit circulation on every
// panel's filaments. Traversal is row-major over i; each row's work is
// independent of every other row, so ParallelRows never changes the
// result.
func BuildAIC(state *State, panels []*panel.Panel, cfg Config, backend compute.Backend) error {
	p := len(panels)
	state.ensureSize(p)

	points := make([]vecmath.Vec3, p)
	for i, pn := range panels {
		points[i] = evalPoint(pn, cfg.Model)
	}

	rowErrs := make([]error, p)
	backend.ParallelRows(p, func(i int) {
		pt := points[i]
		rowX, rowY, rowZ := state.AICx[i], state.AICy[i], state.AICz[i]
		boundX, boundY, boundZ := state.AICBoundX[i], state.AICBoundY[i], state.AICBoundZ[i]

		for j, pn := range panels {
			var total vecmath.Vec3
			for _, f := range pn.Filaments {
				total = total.Add(f.InducedVelocity(pt, 1.0, cfg.CoreRadiusFraction))
			}
			if !total.IsFinite() {
				rowErrs[i] = vsmerr.NewNonFiniteState("BuildAIC", vsmerr.ErrNonFinite)
			}
			rowX[j], rowY[j], rowZ[j] = total.X, total.Y, total.Z

			if j == i {
				bound := pn.Filaments[0].InducedVelocity(pt, 1.0, cfg.CoreRadiusFraction)
				boundX[j], boundY[j], boundZ[j] = bound.X, bound.Y, bound.Z
			} else {
				boundX[j], boundY[j], boundZ[j] = 0, 0, 0
			}
		}
	})
	for _, e := range rowErrs {
		if e != nil {
			return e
		}
	}
	return nil
}
