// Package vecmath provides fixed-size 3-vector and 3x3 matrix arithmetic
// for the aerodynamic core. Types are plain value structs so callers can
// keep every geometric quantity on the stack through the solver's hot
// loops.
package vecmath

import "math"

// Vec3 is a Cartesian 3-vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(c float64) Vec3 { return Vec3{v.X * c, v.Y * c, v.Z * c} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged rather than producing NaN; callers on a geometry-invariant
// path (chord vectors, span direction) are expected to reject a
// zero-length input before calling this.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Lerp linearly interpolates between a and b at fraction t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Mid returns the midpoint of a and b.
func Mid(a, b Vec3) Vec3 {
	return a.Add(b).Scale(0.5)
}
