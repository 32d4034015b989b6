package aeromodel

import (
	"math"
	"sort"

	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// PolarVectors is a 1-D (alpha) tabulated polar: monotone-alpha linear
// interpolation, clamped flat outside the tabulated range.
type PolarVectors struct {
	alpha, cl, cd, cm []float64
}

// NewPolarVectors builds a PolarVectors table. When removeNaN is true,
// any row where cl, cd, or cm is NaN is dropped from all four arrays
// before the monotonicity check — the spec's "drop entire rows" policy,
// distinct from PolarMatrices' neighbor-fill policy.
func NewPolarVectors(alpha, cl, cd, cm []float64, removeNaN bool) (*PolarVectors, error) {
	if len(alpha) != len(cl) || len(alpha) != len(cd) || len(alpha) != len(cm) {
		return nil, vsmerr.NewConfigurationError("NewPolarVectors", vsmerr.ErrNoSections)
	}

	a, l, d, m := alpha, cl, cd, cm
	if removeNaN {
		a, l, d, m = nil, nil, nil, nil
		for i := range alpha {
			if math.IsNaN(cl[i]) || math.IsNaN(cd[i]) || math.IsNaN(cm[i]) {
				continue
			}
			a = append(a, alpha[i])
			l = append(l, cl[i])
			d = append(d, cd[i])
			m = append(m, cm[i])
		}
	}

	if len(a) < 2 {
		return nil, vsmerr.NewConfigurationError("NewPolarVectors", vsmerr.ErrNoSections)
	}
	if !sort.Float64sAreSorted(a) {
		return nil, vsmerr.NewConfigurationError("NewPolarVectors", vsmerr.ErrNonMonotoneAlpha)
	}
	for i := 1; i < len(a); i++ {
		if a[i] <= a[i-1] {
			return nil, vsmerr.NewConfigurationError("NewPolarVectors", vsmerr.ErrNonMonotoneAlpha)
		}
	}

	return &PolarVectors{alpha: a, cl: l, cd: d, cm: m}, nil
}

// bracket returns the interpolation index i and fraction t such that
// alpha lies between p.alpha[i] and p.alpha[i+1], clamping to the table's
// endpoints outside its range.
func (p *PolarVectors) bracket(alpha float64) (i int, t float64) {
	n := len(p.alpha)
	if alpha <= p.alpha[0] {
		return 0, 0
	}
	if alpha >= p.alpha[n-1] {
		return n - 2, 1
	}
	i = sort.SearchFloat64s(p.alpha, alpha)
	if i == 0 {
		i = 1
	}
	lo, hi := p.alpha[i-1], p.alpha[i]
	return i - 1, (alpha - lo) / (hi - lo)
}

func (p *PolarVectors) Cl(alpha, _ float64) float64 {
	i, t := p.bracket(alpha)
	return p.cl[i] + t*(p.cl[i+1]-p.cl[i])
}

func (p *PolarVectors) CdCm(alpha, _ float64) (cd, cm float64) {
	i, t := p.bracket(alpha)
	cd = p.cd[i] + t*(p.cd[i+1]-p.cd[i])
	cm = p.cm[i] + t*(p.cm[i+1]-p.cm[i])
	return
}
