package body_test

import (
	"math"
	"testing"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/body"
	"github.com/kitewing/vsmgo/internal/compute"
	"github.com/kitewing/vsmgo/internal/result"
	"github.com/kitewing/vsmgo/internal/solver"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/wing"
)

func rectangularWing(t *testing.T, span, chord float64, nPanels int) *wing.Wing {
	t.Helper()
	w, err := wing.NewWing(nPanels, wing.LINEAR, vecmath.Vec3{Y: 1})
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
	return w
}

func TestBodyInitPanelsCount(t *testing.T) {
	w := rectangularWing(t, 10, 1, 8)
	b, err := body.New([]*wing.Wing{w}, vecmath.Vec3{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(b.Panels) != 8 {
		t.Fatalf("expected 8 panels, got %d", len(b.Panels))
	}
}

func TestBodySetVAUniform(t *testing.T) {
	w := rectangularWing(t, 10, 1, 4)
	b, err := body.New([]*wing.Wing{w}, vecmath.Vec3{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	va := vecmath.Vec3{X: 20}
	if err := b.SetVA(va, vecmath.Vec3{}); err != nil {
		t.Fatalf("SetVA: %v", err)
	}
	for i, p := range b.Panels {
		if p.Va.Sub(va).Norm() > 1e-9 {
			t.Fatalf("panel %d va = %+v, want %+v", i, p.Va, va)
		}
	}
	if b.ProjectedArea <= 0 {
		t.Fatalf("expected positive projected area, got %v", b.ProjectedArea)
	}
}

func TestBodySetVARotation(t *testing.T) {
	w := rectangularWing(t, 10, 1, 4)
	b, err := body.New([]*wing.Wing{w}, vecmath.Vec3{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	va := vecmath.Vec3{X: 20}
	omega := vecmath.Vec3{Z: 0.1}
	if err := b.SetVA(va, omega); err != nil {
		t.Fatalf("SetVA: %v", err)
	}

	// panels are symmetric about y=0, so the x components of their
	// omega x r contributions are antisymmetric, breaking the uniform va
	// from before.
	same := true
	for i := 1; i < len(b.Panels); i++ {
		if math.Abs(b.Panels[i].Va.X-b.Panels[0].Va.X) > 1e-9 {
			same = false
		}
	}
	if same {
		t.Fatalf("expected rotation to introduce spanwise variation in va")
	}
}

// TestBodySetVARotationLiftMagnitude checks that a modest body rotation
// rate, which breaks the spanwise gamma distribution's left-right
// symmetry, still integrates to nearly the same global lift magnitude
// as the non-rotating case.
func TestBodySetVARotationLiftMagnitude(t *testing.T) {
	solve := func(omega vecmath.Vec3) float64 {
		w, err := wing.NewWing(16, wing.COSINE, vecmath.Vec3{Y: 1})
		if err != nil {
			t.Fatalf("NewWing: %v", err)
		}
		half := 10.0 / 2
		for _, y := range []float64{-half, half} {
			s := wing.Section{
				LE:   vecmath.Vec3{X: 0, Y: y, Z: 0},
				TE:   vecmath.Vec3{X: 1, Y: y, Z: 0},
				Aero: aeromodel.Inviscid{},
			}
			if err := w.AddSection(s); err != nil {
				t.Fatalf("AddSection: %v", err)
			}
		}
		b, err := body.New([]*wing.Wing{w}, vecmath.Vec3{})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		alpha := 5 * math.Pi / 180
		va := vecmath.Vec3{X: 20 * math.Cos(alpha), Z: 20 * math.Sin(alpha)}
		if err := b.SetVA(va, omega); err != nil {
			t.Fatalf("SetVA: %v", err)
		}

		cfg := solver.DefaultConfig()
		state := solver.NewState()
		backend := compute.NewSerialBackend()
		solver.InitGamma(state, b.Panels, cfg)
		if err := solver.BuildAIC(state, b.Panels, cfg, backend); err != nil {
			t.Fatalf("BuildAIC: %v", err)
		}
		res, err := solver.GammaLoop(state, b.Panels, cfg, backend)
		if err != nil {
			t.Fatalf("GammaLoop: %v", err)
		}
		if res.Warning != nil {
			t.Fatalf("did not converge: %+v", res.Warning)
		}

		r := result.Integrate(b, state, cfg, vecmath.Vec3{})
		return r.FGlobal.Norm()
	}

	symmetric := solve(vecmath.Vec3{})
	rotated := solve(vecmath.Vec3{Z: 0.1})

	relErr := math.Abs(rotated-symmetric) / symmetric
	if relErr > 0.05 {
		t.Fatalf("rotated lift magnitude %v diverges from symmetric %v by %v, want <= 5%%", rotated, symmetric, relErr)
	}
}
