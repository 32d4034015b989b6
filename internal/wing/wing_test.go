package wing

import (
	"math/rand"
	"testing"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/vecmath"
)

func rectSection(y float64) Section {
	return Section{
		LE:   vecmath.Vec3{X: 0, Y: y, Z: 0},
		TE:   vecmath.Vec3{X: 1, Y: y, Z: 0},
		Aero: aeromodel.Inviscid{},
	}
}

var spanAxis = vecmath.Vec3{Y: 1}

func TestRefineOrderInvariance(t *testing.T) {
	base := []Section{rectSection(-5), rectSection(0), rectSection(5)}

	baseline, err := Refine(base, 6, LINEAR, spanAxis)
	if err != nil {
		t.Fatalf("Refine baseline: %v", err)
	}

	shuffled := append([]Section(nil), base...)
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	got, err := Refine(shuffled, 6, LINEAR, spanAxis)
	if err != nil {
		t.Fatalf("Refine shuffled: %v", err)
	}

	if len(got) != len(baseline) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(baseline))
	}
	for i := range got {
		if got[i].LE.Sub(baseline[i].LE).Norm() > 1e-5 {
			t.Fatalf("section %d LE mismatch: %+v vs %+v", i, got[i].LE, baseline[i].LE)
		}
		if got[i].TE.Sub(baseline[i].TE).Norm() > 1e-5 {
			t.Fatalf("section %d TE mismatch: %+v vs %+v", i, got[i].TE, baseline[i].TE)
		}
	}
}

func TestRefineUnchangedIdempotent(t *testing.T) {
	// given in the canonical descending-y order Refine produces
	base := []Section{rectSection(1), rectSection(0), rectSection(-1)}
	got, err := Refine(base, 2, UNCHANGED, spanAxis)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(got))
	}
	for i, s := range got {
		if s.LE.Sub(base[i].LE).Norm() > 1e-12 {
			t.Fatalf("section %d changed under UNCHANGED", i)
		}
	}
}

func TestRefineSinglePanelReturnsOriginalTwo(t *testing.T) {
	// given in the canonical descending-y order Refine produces
	base := []Section{rectSection(1), rectSection(-1)}
	got, err := Refine(base, 1, LINEAR, spanAxis)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	if got[0].LE.Sub(base[0].LE).Norm() > 1e-9 || got[1].LE.Sub(base[1].LE).Norm() > 1e-9 {
		t.Fatalf("single-panel refinement should reuse endpoints unchanged")
	}
}

func TestRefineTwoPanelMiddleAtOrigin(t *testing.T) {
	// symmetric span, added out of order
	base := []Section{rectSection(2), rectSection(-2), rectSection(0)}
	got, err := Refine(base, 2, LINEAR, spanAxis)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 refined sections, got %d", len(got))
	}
	mid := got[1].QuarterChord().Y
	if mid < -1e-5 || mid > 1e-5 {
		t.Fatalf("middle refined section y = %v, want ~0", mid)
	}
}

func TestRefineMonotoneAlongSpan(t *testing.T) {
	base := []Section{rectSection(-4), rectSection(1), rectSection(6)}
	got, err := Refine(base, 8, COSINE, spanAxis)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].QuarterChord().Dot(spanAxis) >= got[i-1].QuarterChord().Dot(spanAxis) {
			t.Fatalf("refined sections not strictly monotone at index %d", i)
		}
	}
}

func TestSplitProvidedKeepsUserPoints(t *testing.T) {
	base := []Section{rectSection(2), rectSection(0), rectSection(-3)}
	got, err := Refine(base, 6, SPLIT_PROVIDED, spanAxis)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected 7 refined sections, got %d", len(got))
	}
	found := map[float64]bool{}
	for _, s := range got {
		found[s.QuarterChord().Y] = true
	}
	for _, y := range []float64{2, 0, -3} {
		hit := false
		for f := range found {
			if f-y < 1e-6 && y-f < 1e-6 {
				hit = true
			}
		}
		if !hit {
			t.Fatalf("user section at y=%v missing from split-provided output", y)
		}
	}
}

func TestRefineLeiBreukelsInterpolation(t *testing.T) {
	end0 := Section{
		LE:   vecmath.Vec3{X: 0, Y: 0, Z: 0},
		TE:   vecmath.Vec3{X: 1, Y: 0, Z: 0},
		Aero: aeromodel.LeiBreukels{TubeDiameter: 0, CamberHeight: 0},
	}
	end1 := Section{
		LE:   vecmath.Vec3{X: 0, Y: 4, Z: 0},
		TE:   vecmath.Vec3{X: 1, Y: 4, Z: 0},
		Aero: aeromodel.LeiBreukels{TubeDiameter: 4, CamberHeight: 1},
	}

	got, err := Refine([]Section{end0, end1}, 4, LINEAR, spanAxis)
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 refined sections, got %d", len(got))
	}
	for i, s := range got {
		lb, ok := s.Aero.(aeromodel.LeiBreukels)
		if !ok {
			t.Fatalf("section %d aero not LeiBreukels: %T", i, s.Aero)
		}
		// sections are sorted descending in y, so panel 0 is at y=4 (i.e. t=0 from end1's side)
		wantT := float64(i) / 4
		wantTube := 4 * (1 - wantT)
		wantCamber := 1 * (1 - wantT)
		if abs(lb.TubeDiameter-wantTube) > 1e-5 {
			t.Fatalf("section %d tube diameter = %v, want %v", i, lb.TubeDiameter, wantTube)
		}
		if abs(lb.CamberHeight-wantCamber) > 1e-5 {
			t.Fatalf("section %d camber height = %v, want %v", i, lb.CamberHeight, wantCamber)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
