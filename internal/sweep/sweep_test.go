package sweep

import (
	"context"
	"math"
	"testing"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/solver"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/wing"
)

func buildRectWings() ([]*wing.Wing, error) {
	w, err := wing.NewWing(12, wing.COSINE, vecmath.Vec3{Y: 1})
	if err != nil {
		return nil, err
	}
	for _, y := range []float64{-6, 6} {
		if err := w.AddSection(wing.Section{
			LE:   vecmath.Vec3{X: 0, Y: y, Z: 0},
			TE:   vecmath.Vec3{X: 1, Y: y, Z: 0},
			Aero: aeromodel.Inviscid{},
		}); err != nil {
			return nil, err
		}
	}
	return []*wing.Wing{w}, nil
}

func TestRunAlphaSweepAllSucceed(t *testing.T) {
	cfg := solver.DefaultConfig()
	alphas := []float64{2 * math.Pi / 180, 4 * math.Pi / 180, 6 * math.Pi / 180}
	cases := AlphaSweep(alphas, 20, cfg)

	outcomes, err := Run(context.Background(), buildRectWings, vecmath.Vec3{}, cases)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(outcomes) != len(cases) {
		t.Fatalf("expected %d outcomes, got %d", len(cases), len(outcomes))
	}

	var lastCL float64
	for i, o := range outcomes {
		if o.Err != nil {
			t.Fatalf("case %d failed: %v", i, o.Err)
		}
		if o.Result == nil {
			t.Fatalf("case %d has nil result", i)
		}
		if i > 0 && o.Result.CL <= lastCL {
			t.Errorf("expected CL increasing with alpha, case %d CL=%v <= previous %v", i, o.Result.CL, lastCL)
		}
		lastCL = o.Result.CL
	}
}

func TestRunCancelledContext(t *testing.T) {
	cfg := solver.DefaultConfig()
	cases := AlphaSweep([]float64{0.05}, 20, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := Run(ctx, buildRectWings, vecmath.Vec3{}, cases)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcomes[0].Err == nil {
		t.Fatal("expected cancellation error")
	}
}
