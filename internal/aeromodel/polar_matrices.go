package aeromodel

import (
	"math"
	"sort"

	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// PolarMatrices is a 2-D (alpha, delta) tabulated polar with bilinear
// interpolation, clamped flat outside the tabulated range on each axis
// independently.
type PolarMatrices struct {
	alpha, delta []float64
	cl, cd, cm   [][]float64 // [M][N], M=len(alpha), N=len(delta)
}

// NewPolarMatrices builds a PolarMatrices table. NaN cells in cl/cd/cm are
// filled in-place, independently per table, by an expanding
// Manhattan-radius inverse-distance-weighted average of non-NaN
// neighbors; NewPolarMatrices fails if a table has no non-NaN entry to
// seed from.
func NewPolarMatrices(alpha, delta []float64, cl, cd, cm [][]float64) (*PolarMatrices, error) {
	m, n := len(alpha), len(delta)
	if m < 2 || n < 1 {
		return nil, vsmerr.NewConfigurationError("NewPolarMatrices", vsmerr.ErrNoSections)
	}
	for i := 1; i < m; i++ {
		if alpha[i] <= alpha[i-1] {
			return nil, vsmerr.NewConfigurationError("NewPolarMatrices", vsmerr.ErrNonMonotoneAlpha)
		}
	}
	if err := checkShape(cl, m, n); err != nil {
		return nil, err
	}
	if err := checkShape(cd, m, n); err != nil {
		return nil, err
	}
	if err := checkShape(cm, m, n); err != nil {
		return nil, err
	}

	clOut, err := fillNaN(cl, m, n)
	if err != nil {
		return nil, err
	}
	cdOut, err := fillNaN(cd, m, n)
	if err != nil {
		return nil, err
	}
	cmOut, err := fillNaN(cm, m, n)
	if err != nil {
		return nil, err
	}

	return &PolarMatrices{alpha: alpha, delta: delta, cl: clOut, cd: cdOut, cm: cmOut}, nil
}

func checkShape(t [][]float64, m, n int) error {
	if len(t) != m {
		return vsmerr.NewConfigurationError("NewPolarMatrices", vsmerr.ErrNoSections)
	}
	for _, row := range t {
		if len(row) != n {
			return vsmerr.NewConfigurationError("NewPolarMatrices", vsmerr.ErrNoSections)
		}
	}
	return nil
}

// fillNaN replaces NaN cells with an expanding Manhattan-radius (L1, in
// grid-index space) inverse-distance-weighted average of non-NaN
// neighbors. The radius grows one ring at a time until at least one
// non-NaN neighbor is found.
func fillNaN(t [][]float64, m, n int) ([][]float64, error) {
	hasValid := false
	for _, row := range t {
		for _, v := range row {
			if !math.IsNaN(v) {
				hasValid = true
			}
		}
	}
	if !hasValid {
		return nil, vsmerr.NewConfigurationError("fillNaN", vsmerr.ErrAllNaN)
	}

	out := make([][]float64, m)
	for i := range out {
		out[i] = append([]float64(nil), t[i]...)
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if !math.IsNaN(out[i][j]) {
				continue
			}
			out[i][j] = idwFill(t, m, n, i, j)
		}
	}
	return out, nil
}

func idwFill(t [][]float64, m, n, i, j int) float64 {
	for radius := 1; radius <= m+n; radius++ {
		var sumW, sumWV float64
		found := false
		for di := -radius; di <= radius; di++ {
			for dj := -radius; dj <= radius; dj++ {
				dist := abs(di) + abs(dj)
				if dist != radius {
					continue
				}
				ii, jj := i+di, j+dj
				if ii < 0 || ii >= m || jj < 0 || jj >= n {
					continue
				}
				v := t[ii][jj]
				if math.IsNaN(v) {
					continue
				}
				w := 1 / float64(dist)
				sumW += w
				sumWV += w * v
				found = true
			}
		}
		if found {
			return sumWV / sumW
		}
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func bracket1D(xs []float64, x float64) (i int, t float64) {
	n := len(xs)
	if n == 1 {
		return 0, 0
	}
	if x <= xs[0] {
		return 0, 0
	}
	if x >= xs[n-1] {
		return n - 2, 1
	}
	i = sort.SearchFloat64s(xs, x)
	if i == 0 {
		i = 1
	}
	lo, hi := xs[i-1], xs[i]
	return i - 1, (x - lo) / (hi - lo)
}

func (p *PolarMatrices) bilinear(table [][]float64, alpha, delta float64) float64 {
	i, ta := bracket1D(p.alpha, alpha)
	j, td := bracket1D(p.delta, delta)

	v00 := table[i][j]
	v10 := table[i+1][j]
	v01 := table[i][minInt(j+1, len(p.delta)-1)]
	v11 := table[i+1][minInt(j+1, len(p.delta)-1)]

	v0 := v00 + ta*(v10-v00)
	v1 := v01 + ta*(v11-v01)
	return v0 + td*(v1-v0)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (p *PolarMatrices) Cl(alpha, delta float64) float64 {
	return p.bilinear(p.cl, alpha, delta)
}

func (p *PolarMatrices) CdCm(alpha, delta float64) (cd, cm float64) {
	return p.bilinear(p.cd, alpha, delta), p.bilinear(p.cm, alpha, delta)
}
