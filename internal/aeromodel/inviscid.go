package aeromodel

import "math"

// Inviscid is the thin-airfoil flat-plate model: cl = 2*pi*sin(alpha),
// cd = cm = 0.
type Inviscid struct{}

func (Inviscid) Cl(alpha, _ float64) float64 {
	return 2 * math.Pi * math.Sin(alpha)
}

func (Inviscid) CdCm(_, _ float64) (cd, cm float64) {
	return 0, 0
}
