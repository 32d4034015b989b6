package panel

import (
	"testing"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/filament"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/wing"
)

func rectSection(y float64) wing.Section {
	return wing.Section{
		LE:   vecmath.Vec3{X: 0, Y: y, Z: 0},
		TE:   vecmath.Vec3{X: 1, Y: y, Z: 0},
		Aero: aeromodel.Inviscid{},
	}
}

func TestNewPanelFrameOrthonormal(t *testing.T) {
	si := rectSection(0)
	sj := rectSection(1)

	p, err := New(si, sj)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Frame().IsOrthonormal(1e-9) {
		t.Fatalf("panel frame not orthonormal: %+v", p.Frame())
	}
	if p.Chord != 1 {
		t.Fatalf("chord = %v, want 1", p.Chord)
	}
	if p.Width != 1 {
		t.Fatalf("width = %v, want 1", p.Width)
	}

	wantAC := vecmath.Vec3{X: 0.25, Y: 0.5, Z: 0}
	if p.AeroCenter.Sub(wantAC).Norm() > 1e-9 {
		t.Fatalf("aero center = %+v, want %+v", p.AeroCenter, wantAC)
	}
	wantCP := vecmath.Vec3{X: 0.75, Y: 0.5, Z: 0}
	if p.ControlPoint.Sub(wantCP).Norm() > 1e-9 {
		t.Fatalf("control point = %+v, want %+v", p.ControlPoint, wantCP)
	}
}

func TestNewPanelZeroChordFails(t *testing.T) {
	si := wing.Section{LE: vecmath.Vec3{Y: 0}, TE: vecmath.Vec3{Y: 0}, Aero: aeromodel.Inviscid{}}
	sj := wing.Section{LE: vecmath.Vec3{Y: 1}, TE: vecmath.Vec3{Y: 1}, Aero: aeromodel.Inviscid{}}
	if _, err := New(si, sj); err == nil {
		t.Fatal("expected error for zero-length chord")
	}
}

func TestSetFreestreamDirectionRebuildsFilaments(t *testing.T) {
	p, err := New(rectSection(0), rectSection(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(p.Filaments) != 5 {
		t.Fatalf("expected 5 filaments, got %d", len(p.Filaments))
	}
	dir := vecmath.Vec3{X: 1, Z: 0.1}.Normalize()
	p.SetFreestreamDirection(dir)
	semiInf, ok := p.Filaments[3].(interface {
		InducedVelocity(vecmath.Vec3, float64, float64) vecmath.Vec3
	})
	if !ok {
		t.Fatalf("filament[3] does not implement Filament")
	}
	_ = semiInf
	for _, k := range []int{3, 4} {
		f, ok := p.Filaments[k].(filament.TrailingSemiInf)
		if !ok {
			t.Fatalf("filament[%d] is %T, want TrailingSemiInf", k, p.Filaments[k])
		}
		if f.Direction.Sub(dir).Norm() > 1e-12 {
			t.Fatalf("filament[%d] direction = %+v, want %+v", k, f.Direction, dir)
		}
	}
}
