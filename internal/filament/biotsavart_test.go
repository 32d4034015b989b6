package filament

import (
	"math"
	"testing"

	"github.com/kitewing/vsmgo/internal/vecmath"
)

func closeTo(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSegmentVelocitySquareRingCenter(t *testing.T) {
	const a = 2.0
	const gamma = 1.0

	half := a / 2
	corners := [4]vecmath.Vec3{
		{X: -half, Y: -half, Z: 0},
		{X: half, Y: -half, Z: 0},
		{X: half, Y: half, Z: 0},
		{X: -half, Y: half, Z: 0},
	}
	center := vecmath.Vec3{}

	var total vecmath.Vec3
	for i := 0; i < 4; i++ {
		p1 := corners[i]
		p2 := corners[(i+1)%4]
		total = total.Add(segmentVelocity(center, p1, p2, gamma, 1e-6))
	}

	want := 2 * math.Sqrt2 * gamma / (math.Pi * a)
	got := total.Norm()
	if !closeTo(got, want, 1e-6) {
		t.Fatalf("square ring center induced speed = %v, want %v", got, want)
	}
	if !closeTo(total.X, 0, 1e-9) || !closeTo(total.Y, 0, 1e-9) {
		t.Fatalf("square ring center velocity should be purely normal, got %+v", total)
	}
}

func TestSegmentVelocityDecaysAtInfinity(t *testing.T) {
	const a = 2.0
	half := a / 2
	corners := [4]vecmath.Vec3{
		{X: -half, Y: -half, Z: 0},
		{X: half, Y: -half, Z: 0},
		{X: half, Y: half, Z: 0},
		{X: -half, Y: half, Z: 0},
	}

	far := vecmath.Vec3{X: 0, Y: 0, Z: 1e6}
	var total vecmath.Vec3
	for i := 0; i < 4; i++ {
		total = total.Add(segmentVelocity(far, corners[i], corners[(i+1)%4], 1.0, 1e-6))
	}
	if total.Norm() > 1e-9 {
		t.Fatalf("ring velocity at large distance should vanish, got %v", total.Norm())
	}
}

func TestSegmentVelocityCoreRegularizationMonotonic(t *testing.T) {
	p1 := vecmath.Vec3{X: -1}
	p2 := vecmath.Vec3{X: 1}
	p := vecmath.Vec3{Y: 0.001}

	fractions := []float64{1e-20, 1e-6, 1e-3, 1e-1, 1, 10}
	var prev float64
	for i, f := range fractions {
		v := segmentVelocity(p, p1, p2, 1.0, f)
		if !isFinite(v) {
			t.Fatalf("velocity not finite at core_radius_fraction=%v: %+v", f, v)
		}
		speed := v.Norm()
		if i > 0 && speed > prev+1e-9 {
			t.Fatalf("expected monotonically decreasing speed as core fraction grows: f=%v speed=%v prev=%v", f, speed, prev)
		}
		prev = speed
	}
}

func TestSemiInfiniteVelocityFinite(t *testing.T) {
	pivot := vecmath.Vec3{}
	dir := vecmath.Vec3{X: 1}
	p := vecmath.Vec3{X: 0, Y: 1}

	v := semiInfiniteVelocity(p, pivot, dir, 1.0, 1e-6)
	if !isFinite(v) {
		t.Fatalf("expected finite induced velocity, got %+v", v)
	}
	if v.Norm() == 0 {
		t.Fatalf("expected nonzero induced velocity off-axis")
	}
}

func TestSemiInfiniteVelocityOnAxisIsZero(t *testing.T) {
	pivot := vecmath.Vec3{}
	dir := vecmath.Vec3{X: 1}
	p := vecmath.Vec3{X: 5}

	v := semiInfiniteVelocity(p, pivot, dir, 1.0, 1e-6)
	if v.Norm() > 1e-9 {
		t.Fatalf("on-axis point should have zero perpendicular distance and zero induced velocity, got %+v", v)
	}
}

func isFinite(v vecmath.Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}
