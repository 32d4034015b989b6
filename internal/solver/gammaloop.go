package solver

import (
	"math"

	"github.com/kitewing/vsmgo/internal/compute"
	"github.com/kitewing/vsmgo/internal/panel"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// InitGamma seeds state.Gamma before the fixed-point loop starts.
// Elliptic estimates a target lift coefficient from each panel's
// uncorrected angle of attack (ignoring induced velocity) and places an
// elliptic circulation distribution along the global spanwise (Y) axis
// that integrates to the same lift; Zeros starts from rest.
func InitGamma(state *State, panels []*panel.Panel, cfg Config) {
	p := len(panels)
	state.ensureSize(p)

	if cfg.InitialGammaMethod == Zeros || p == 0 {
		for i := range state.Gamma {
			state.Gamma[i] = 0
		}
		return
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	uSum, area, clSum := 0.0, 0.0, 0.0
	for _, pn := range panels {
		y := pn.ControlPoint.Y
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
		alpha0 := math.Atan2(pn.Va.Dot(pn.ZAirf), pn.Va.Dot(pn.XAirf))
		clSum += pn.Aero.Cl(alpha0, 0)
		uSum += pn.Va.Norm()
		area += pn.Chord * pn.Width
	}
	n := float64(p)
	uRef := uSum / n
	clGuess := clSum / n
	b := yMax - yMin
	if b <= 0 || uRef <= 0 {
		for i := range state.Gamma {
			state.Gamma[i] = 0
		}
		return
	}

	gamma0 := 2 * clGuess * uRef * area / (math.Pi * b)
	yMid := 0.5 * (yMin + yMax)
	for i, pn := range panels {
		eta := 2 * (pn.ControlPoint.Y - yMid) / b
		inside := 1 - eta*eta
		if inside < 0 {
			inside = 0
		}
		state.Gamma[i] = gamma0 * math.Sqrt(inside)
	}
}

// Result is the outcome of one gamma_loop invocation. Warning is
// non-nil exactly when the loop hit max_iterations without meeting
// rtol; state.Gamma still holds the last iterate either way.
type Result struct {
	Iterations int
	Residual   float64
	Warning    *vsmerr.DidNotConverge
}

// GammaLoop iterates the damped fixed-point update until convergence or
// max_iterations. The iterations allocate nothing beyond the panel-count
// buffers already owned by state; the returned Result is allocated once,
// and the Newton fallback allocates its own buffers.
func GammaLoop(state *State, panels []*panel.Panel, cfg Config, backend compute.Backend) (*Result, error) {
	p := len(panels)
	state.ensureSize(p)

	lastResidual := 0.0
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		backend.MatVecMul(state.AICx, state.Gamma, state.ux)
		backend.MatVecMul(state.AICy, state.Gamma, state.uy)
		backend.MatVecMul(state.AICz, state.Gamma, state.uz)

		if cfg.Model == LLT {
			backend.MatVecMul(state.AICBoundX, state.Gamma, state.ubx)
			backend.MatVecMul(state.AICBoundY, state.Gamma, state.uby)
			backend.MatVecMul(state.AICBoundZ, state.Gamma, state.ubz)
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

			state.Alpha[i] = math.Atan2(veff.Dot(pn.ZAirf), veff.Dot(pn.XAirf))
			cl := pn.Aero.Cl(state.Alpha[i], 0)

			spanComp := veff.Dot(pn.YAirf)
			vp := veff.Sub(pn.YAirf.Scale(spanComp))
			state.GammaNew[i] = 0.5 * vp.Norm() * pn.Chord * cl
		}

		residual := 0.0
		gammaAbsMax := 0.0
		for i := range state.Gamma {
			d := math.Abs(state.GammaNew[i] - state.Gamma[i])
			if d > residual {
				residual = d
			}
			if a := math.Abs(state.Gamma[i]); a > gammaAbsMax {
				gammaAbsMax = a
			}
		}
		refDenom := math.Max(gammaAbsMax, cfg.TolReferenceError)

		converged := residual/refDenom < cfg.Rtol
		lastResidual = residual

		w := cfg.RelaxationFactor
		for i := range state.Gamma {
			state.Gamma[i] = (1-w)*state.Gamma[i] + w*state.GammaNew[i]
		}
		if cfg.ArtificialDamping.On {
			applyArtificialDamping(state, cfg.ArtificialDamping.K2, cfg.ArtificialDamping.K4)
		}

		if !finiteSlice(state.Gamma) {
			if cfg.NewtonOnDivergence {
				res, err := solveNewton(state, panels, cfg, backend)
				return res, err
			}
			return nil, vsmerr.NewNonFiniteState("GammaLoop", vsmerr.ErrNonFinite)
		}

		if converged {
			return &Result{Iterations: iter + 1, Residual: residual}, nil
		}
	}

	return &Result{
		Iterations: cfg.MaxIterations,
		Residual:   lastResidual,
		Warning: &vsmerr.DidNotConverge{
			Iterations:   cfg.MaxIterations,
			LastResidual: lastResidual,
		},
	}, nil
}

// applyArtificialDamping adds a Jameson-style blend of second and fourth
// spanwise differences to gamma, using one-sided differences at the tip
// panels where the stencil would otherwise run out of bounds.
func applyArtificialDamping(state *State, k2, k4 float64) {
	n := len(state.Gamma)
	if n < 3 {
		return
	}
	copy(state.smoothed, state.Gamma)
	g := state.Gamma
	for i := 0; i < n; i++ {
		var d2 float64
		switch {
		case i == 0:
			d2 = g[1] - g[0]
		case i == n-1:
			d2 = g[n-2] - g[n-1]
		default:
			d2 = g[i-1] - 2*g[i] + g[i+1]
		}

		var d4 float64
		if i >= 2 && i <= n-3 {
			d4 = g[i-2] - 4*g[i-1] + 6*g[i] - 4*g[i+1] + g[i+2]
		}

		state.smoothed[i] = g[i] + k2*d2 - k4*d4
	}
	copy(state.Gamma, state.smoothed)
}

func finiteSlice(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
