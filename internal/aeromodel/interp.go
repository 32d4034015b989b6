package aeromodel

import (
	"math"

	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// Interpolate blends two sectional aero models at fraction t in [0,1],
// used by wing mesh refinement to build a refined section's aero data
// from its two bracketing user sections. Inviscid may be promoted to a
// zeroed polar sharing the other endpoint's grid, or, next to a
// LeiBreukels section, to a LeiBreukels with zero tube diameter and
// camber height; any other type mismatch, or a grid mismatch between two
// polars of the same kind, is ErrIncompatibleSectionAero.
func Interpolate(a, b Aero, t float64) (Aero, error) {
	switch av := a.(type) {
	case Inviscid:
		switch bv := b.(type) {
		case Inviscid:
			return Inviscid{}, nil
		case *PolarVectors:
			return lerpVectors(zeroedVectors(bv), bv, t)
		case *PolarMatrices:
			return lerpMatrices(zeroedMatrices(bv), bv, t)
		case LeiBreukels:
			return LeiBreukels{
				TubeDiameter: bv.TubeDiameter * t,
				CamberHeight: bv.CamberHeight * t,
			}, nil
		}
	case *PolarVectors:
		switch bv := b.(type) {
		case Inviscid:
			return lerpVectors(av, zeroedVectors(av), t)
		case *PolarVectors:
			return lerpVectors(av, bv, t)
		}
	case *PolarMatrices:
		switch bv := b.(type) {
		case Inviscid:
			return lerpMatrices(av, zeroedMatrices(av), t)
		case *PolarMatrices:
			return lerpMatrices(av, bv, t)
		}
	case LeiBreukels:
		switch bv := b.(type) {
		case Inviscid:
			return LeiBreukels{
				TubeDiameter: av.TubeDiameter * (1 - t),
				CamberHeight: av.CamberHeight * (1 - t),
			}, nil
		case LeiBreukels:
			return LeiBreukels{
				TubeDiameter: av.TubeDiameter + t*(bv.TubeDiameter-av.TubeDiameter),
				CamberHeight: av.CamberHeight + t*(bv.CamberHeight-av.CamberHeight),
			}, nil
		}
	}
	return nil, vsmerr.NewInterpolationError("Interpolate", vsmerr.ErrIncompatibleSectionAero)
}

func zeroedVectors(ref *PolarVectors) *PolarVectors {
	z := make([]float64, len(ref.alpha))
	return &PolarVectors{alpha: ref.alpha, cl: z, cd: z, cm: z}
}

func zeroedMatrices(ref *PolarMatrices) *PolarMatrices {
	cl := make([][]float64, len(ref.alpha))
	cd := make([][]float64, len(ref.alpha))
	cm := make([][]float64, len(ref.alpha))
	for i := range cl {
		cl[i] = make([]float64, len(ref.delta))
		cd[i] = make([]float64, len(ref.delta))
		cm[i] = make([]float64, len(ref.delta))
	}
	return &PolarMatrices{alpha: ref.alpha, delta: ref.delta, cl: cl, cd: cd, cm: cm}
}

func gridsMatch(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func lerpVectors(a, b *PolarVectors, t float64) (*PolarVectors, error) {
	if !gridsMatch(a.alpha, b.alpha) {
		return nil, vsmerr.NewInterpolationError("lerpVectors", vsmerr.ErrIncompatibleSectionAero)
	}
	n := len(a.alpha)
	cl := make([]float64, n)
	cd := make([]float64, n)
	cm := make([]float64, n)
	for i := 0; i < n; i++ {
		cl[i] = a.cl[i] + t*(b.cl[i]-a.cl[i])
		cd[i] = a.cd[i] + t*(b.cd[i]-a.cd[i])
		cm[i] = a.cm[i] + t*(b.cm[i]-a.cm[i])
	}
	return &PolarVectors{alpha: a.alpha, cl: cl, cd: cd, cm: cm}, nil
}

func lerpMatrices(a, b *PolarMatrices, t float64) (*PolarMatrices, error) {
	if !gridsMatch(a.alpha, b.alpha) || !gridsMatch(a.delta, b.delta) {
		return nil, vsmerr.NewInterpolationError("lerpMatrices", vsmerr.ErrIncompatibleSectionAero)
	}
	m, n := len(a.alpha), len(a.delta)
	cl := make([][]float64, m)
	cd := make([][]float64, m)
	cm := make([][]float64, m)
	for i := 0; i < m; i++ {
		cl[i] = make([]float64, n)
		cd[i] = make([]float64, n)
		cm[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cl[i][j] = a.cl[i][j] + t*(b.cl[i][j]-a.cl[i][j])
			cd[i][j] = a.cd[i][j] + t*(b.cd[i][j]-a.cd[i][j])
			cm[i][j] = a.cm[i][j] + t*(b.cm[i][j]-a.cm[i][j])
		}
	}
	return &PolarMatrices{alpha: a.alpha, delta: a.delta, cl: cl, cd: cd, cm: cm}, nil
}
