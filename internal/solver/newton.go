package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kitewing/vsmgo/internal/compute"
	"github.com/kitewing/vsmgo/internal/panel"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
)

const (
	newtonMaxIterations = 50
	newtonFDStep        = 1e-6
	newtonTol           = 1e-8
)

// residual computes F(gamma) = gamma - gamma_new(gamma) for the current
// AIC matrices, writing gamma_new into state.GammaNew as a side effect.
func residual(state *State, panels []*panel.Panel, cfg Config, backend compute.Backend, gamma, fOut []float64) {
	backend.MatVecMul(state.AICx, gamma, state.ux)
	backend.MatVecMul(state.AICy, gamma, state.uy)
	backend.MatVecMul(state.AICz, gamma, state.uz)

	if cfg.Model == LLT {
		backend.MatVecMul(state.AICBoundX, gamma, state.ubx)
		backend.MatVecMul(state.AICBoundY, gamma, state.uby)
		backend.MatVecMul(state.AICBoundZ, gamma, state.ubz)
		for i := range state.ux {
			state.ux[i] -= state.ubx[i]
			state.uy[i] -= state.uby[i]
			state.uz[i] -= state.ubz[i]
		}
	}

	for i, pn := range panels {
		u := vecmath.Vec3{X: state.ux[i], Y: state.uy[i], Z: state.uz[i]}
		veff := pn.Va.Add(u)
		state.Veff[i] = veff
		alpha := math.Atan2(veff.Dot(pn.ZAirf), veff.Dot(pn.XAirf))
		cl := pn.Aero.Cl(alpha, 0)
		spanComp := veff.Dot(pn.YAirf)
		vp := veff.Sub(pn.YAirf.Scale(spanComp))
		state.GammaNew[i] = 0.5 * vp.Norm() * pn.Chord * cl
		fOut[i] = gamma[i] - state.GammaNew[i]
	}
}

// solveNewton falls back to a numerically-Jacobianed Newton-Raphson
// solve of F(gamma)=0 when the fixed-point iteration diverges. It is
// not on the zero-allocation hot path: it only runs after divergence is
// detected.
func solveNewton(state *State, panels []*panel.Panel, cfg Config, backend compute.Backend) (*Result, error) {
	p := len(panels)

	gamma := make([]float64, p)
	for i, g := range state.Gamma {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			gamma[i] = 0
		} else {
			gamma[i] = g
		}
	}

	f := make([]float64, p)
	fPerturbed := make([]float64, p)
	jac := mat.NewDense(p, p, nil)

	lastResidual := 0.0
	for iter := 0; iter < newtonMaxIterations; iter++ {
		residual(state, panels, cfg, backend, gamma, f)

		maxAbs := 0.0
		for _, v := range f {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		lastResidual = maxAbs
		if maxAbs < newtonTol {
			copy(state.Gamma, gamma)
			return &Result{Iterations: iter + 1, Residual: maxAbs}, nil
		}

		for j := 0; j < p; j++ {
			orig := gamma[j]
			gamma[j] = orig + newtonFDStep
			residual(state, panels, cfg, backend, gamma, fPerturbed)
			gamma[j] = orig
			for i := 0; i < p; i++ {
				jac.Set(i, j, (fPerturbed[i]-f[i])/newtonFDStep)
			}
		}

		var delta mat.VecDense
		fVec := mat.NewVecDense(p, f)
		if err := delta.SolveVec(jac, fVec); err != nil {
			return nil, vsmerr.NewNonFiniteState("solveNewton", vsmerr.ErrNonFinite)
		}
		for i := 0; i < p; i++ {
			gamma[i] -= delta.AtVec(i)
		}
		if !finiteSlice(gamma) {
			return nil, vsmerr.NewNonFiniteState("solveNewton", vsmerr.ErrNonFinite)
		}
	}

	copy(state.Gamma, gamma)
	return &Result{
		Iterations: newtonMaxIterations,
		Residual:   lastResidual,
		Warning: &vsmerr.DidNotConverge{
			Iterations:   newtonMaxIterations,
			LastResidual: lastResidual,
		},
	}, nil
}
