// Package sweep runs the same wing geometry through a batch of solver
// configurations concurrently, one goroutine per configuration,
// grounded on the teacher's dynamo.Ensemble fan-out.
package sweep

import (
	"context"
	"math"
	"sync"

	"github.com/kitewing/vsmgo/internal/body"
	"github.com/kitewing/vsmgo/internal/compute"
	"github.com/kitewing/vsmgo/internal/result"
	"github.com/kitewing/vsmgo/internal/solver"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/wing"
)

// Case is one point in the sweep: the freestream/rotation applied to
// the shared wing geometry plus the solver configuration used to solve
// it. Each case gets its own panels and solver state so cases never
// share mutable buffers across goroutines.
type Case struct {
	Va, Omega vecmath.Vec3
	Config    solver.Config
}

// Outcome pairs a Case's index with its solved result, or the error
// that prevented it from solving. Results are returned in the same
// order as the input cases regardless of completion order.
type Outcome struct {
	Index      int
	SolveResult *solver.Result
	Result     *result.Result
	Err        error
}

// Run solves every case against a freshly built copy of the wings
// described by build, one goroutine per case. The wing builder is
// invoked once per case rather than shared, since BodyAerodynamics and
// its panels are mutated during SetVA/solve and cannot be shared
// safely across goroutines.
func Run(ctx context.Context, build func() ([]*wing.Wing, error), origin vecmath.Vec3, cases []Case) ([]Outcome, error) {
	outcomes := make([]Outcome, len(cases))

	var wg sync.WaitGroup
	for i, c := range cases {
		wg.Add(1)
		go func(idx int, c Case) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				outcomes[idx] = Outcome{Index: idx, Err: ctx.Err()}
				return
			default:
			}

			outcomes[idx] = solveOne(idx, build, origin, c)
		}(i, c)
	}
	wg.Wait()

	return outcomes, nil
}

func solveOne(idx int, build func() ([]*wing.Wing, error), origin vecmath.Vec3, c Case) Outcome {
	wings, err := build()
	if err != nil {
		return Outcome{Index: idx, Err: err}
	}
	b, err := body.New(wings, origin)
	if err != nil {
		return Outcome{Index: idx, Err: err}
	}
	if err := b.SetVA(c.Va, c.Omega); err != nil {
		return Outcome{Index: idx, Err: err}
	}

	state := solver.NewState()
	solver.InitGamma(state, b.Panels, c.Config)
	backend := compute.AutoSelectBackend(len(b.Panels))
	if err := solver.BuildAIC(state, b.Panels, c.Config, backend); err != nil {
		return Outcome{Index: idx, Err: err}
	}
	solveResult, err := solver.GammaLoop(state, b.Panels, c.Config, backend)
	if err != nil {
		return Outcome{Index: idx, Err: err}
	}

	res := result.Integrate(b, state, c.Config, origin)
	return Outcome{Index: idx, SolveResult: solveResult, Result: res}
}

// AlphaSweep builds one Case per angle of attack (radians) at the
// given airspeed, holding every other parameter fixed at cfg.
func AlphaSweep(alphas []float64, airspeed float64, cfg solver.Config) []Case {
	cases := make([]Case, len(alphas))
	for i, alpha := range alphas {
		cases[i] = Case{
			Va:     vecmath.Vec3{X: airspeed * math.Cos(alpha), Z: airspeed * math.Sin(alpha)},
			Config: cfg,
		}
	}
	return cases
}
