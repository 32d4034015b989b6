// Package filament implements the Biot-Savart kernels for the three
// vortex filament kinds used by a horseshoe panel.
package filament

import "github.com/kitewing/vsmgo/internal/vecmath"

// Filament is a segment or ray of unit circulation whose induced
// velocity at an arbitrary point can be evaluated with core
// regularization.
type Filament interface {
	// InducedVelocity returns the velocity induced at p by this
	// filament carrying circulation gamma, regularized with core
	// radius fraction coreFraction.
	InducedVelocity(p vecmath.Vec3, gamma, coreFraction float64) vecmath.Vec3
}

// BoundSegment is the chordwise bound portion of a horseshoe vortex,
// from P1 to P2.
type BoundSegment struct {
	P1, P2 vecmath.Vec3
}

func (f BoundSegment) InducedVelocity(p vecmath.Vec3, gamma, coreFraction float64) vecmath.Vec3 {
	return segmentVelocity(p, f.P1, f.P2, gamma, coreFraction)
}

// TrailingSegment is a finite trailing leg, from P1 to P2.
type TrailingSegment struct {
	P1, P2 vecmath.Vec3
}

func (f TrailingSegment) InducedVelocity(p vecmath.Vec3, gamma, coreFraction float64) vecmath.Vec3 {
	return segmentVelocity(p, f.P1, f.P2, gamma, coreFraction)
}

// TrailingSemiInf is a trailing filament of unit circulation leaving
// Pivot and extending to infinity along Direction (a unit vector). Sign
// flips the circulation direction so that the two trailing legs of a
// horseshoe close consistently.
type TrailingSemiInf struct {
	Pivot     vecmath.Vec3
	Direction vecmath.Vec3
	Sign      float64
}

func (f TrailingSemiInf) InducedVelocity(p vecmath.Vec3, gamma, coreFraction float64) vecmath.Vec3 {
	return semiInfiniteVelocity(p, f.Pivot, f.Direction, f.Sign*gamma, coreFraction)
}
