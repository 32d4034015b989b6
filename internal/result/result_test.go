package result

import (
	"math"
	"testing"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/body"
	"github.com/kitewing/vsmgo/internal/compute"
	"github.com/kitewing/vsmgo/internal/solver"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/wing"
)

func buildRectangularBody(t *testing.T, span, chord float64, nPanels int) *body.BodyAerodynamics {
	t.Helper()
	w, err := wing.NewWing(nPanels, wing.COSINE, vecmath.Vec3{Y: 1})
	if err != nil {
		t.Fatalf("NewWing: %v", err)
	}
	half := span / 2
	for _, y := range []float64{-half, half} {
		s := wing.Section{
			LE:   vecmath.Vec3{X: 0, Y: y, Z: 0},
			TE:   vecmath.Vec3{X: chord, Y: y, Z: 0},
			Aero: aeromodel.Inviscid{},
		}
		if err := w.AddSection(s); err != nil {
			t.Fatalf("AddSection: %v", err)
		}
	}
	b, err := body.New([]*wing.Wing{w}, vecmath.Vec3{})
	if err != nil {
		t.Fatalf("body.New: %v", err)
	}
	return b
}

func TestIntegrateProducesPositiveLift(t *testing.T) {
	b := buildRectangularBody(t, 12, 1, 12)
	alpha := 5 * math.Pi / 180
	if err := b.SetVA(vecmath.Vec3{X: 20 * math.Cos(alpha), Z: 20 * math.Sin(alpha)}, vecmath.Vec3{}); err != nil {
		t.Fatalf("SetVA: %v", err)
	}

	cfg := solver.DefaultConfig()
	state := solver.NewState()
	solver.InitGamma(state, b.Panels, cfg)
	backend := compute.NewSerialBackend()
	if err := solver.BuildAIC(state, b.Panels, cfg, backend); err != nil {
		t.Fatalf("BuildAIC: %v", err)
	}
	if _, err := solver.GammaLoop(state, b.Panels, cfg, backend); err != nil {
		t.Fatalf("GammaLoop: %v", err)
	}

	res := Integrate(b, state, cfg, vecmath.Vec3{})
	if res.CL <= 0 {
		t.Fatalf("expected positive CL at positive alpha, got %v", res.CL)
	}
	if len(res.GammaDistribution) != len(b.Panels) {
		t.Fatalf("gamma distribution length mismatch")
	}
}
