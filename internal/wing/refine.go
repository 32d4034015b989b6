package wing

import (
	"math"
	"sort"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// sortedByProjection returns sections sorted by descending projection
// onto axis (tip positive-y first, per the spec's coordinate convention),
// independent of insertion order.
func sortedByProjection(sections []Section, axis vecmath.Vec3) []Section {
	out := append([]Section(nil), sections...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].QuarterChord().Dot(axis) > out[j].QuarterChord().Dot(axis)
	})
	return out
}

// arcLengths returns the cumulative poly-line arc length through each
// section's quarter chord, s[0]=0.
func arcLengths(qc []vecmath.Vec3) []float64 {
	s := make([]float64, len(qc))
	for i := 1; i < len(qc); i++ {
		s[i] = s[i-1] + qc[i].Sub(qc[i-1]).Norm()
	}
	return s
}

// bracket finds segment index k such that s[k] <= target <= s[k+1], and
// the local fraction t in [0,1].
func bracket(s []float64, target float64) (k int, t float64) {
	n := len(s)
	if target <= s[0] {
		return 0, 0
	}
	if target >= s[n-1] {
		return n - 2, 1
	}
	k = sort.SearchFloat64s(s, target)
	if k == 0 {
		k = 1
	}
	lo, hi := s[k-1], s[k]
	if hi == lo {
		return k - 1, 0
	}
	return k - 1, (target - lo) / (hi - lo)
}

// targetParameters produces n_panels+1 target arc-length values along
// [0, total] per the requested distribution.
func targetParameters(dist PanelDistribution, sorted []Section, s []float64, nPanels int) []float64 {
	total := s[len(s)-1]
	n := nPanels + 1

	switch dist {
	case COSINE:
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			theta := float64(i) / float64(nPanels) * math.Pi
			out[i] = 0.5 * (1 - math.Cos(theta)) * total
		}
		return out
	case COSINE_VAN_GARREL:
		return vanGarrelParameters(sorted, s, nPanels)
	default: // LINEAR fallback; SPLIT_PROVIDED/UNCHANGED handled by caller
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = float64(i) / float64(nPanels) * total
		}
		return out
	}
}

// vanGarrelParameters biases cosine spacing towards spanwise regions with
// large chord gradient, following van Garrel's weighting idea: the
// poly-line is reparametrized by an "effective length" that inflates
// segments where the chord changes quickly, then cosine-sampled in that
// effective metric before mapping back to true arc length.
func vanGarrelParameters(sorted []Section, s []float64, nPanels int) []float64 {
	const gradientWeight = 6.0

	chord := make([]float64, len(sorted))
	for i, sec := range sorted {
		chord[i] = sec.TE.Sub(sec.LE).Norm()
	}

	effLen := make([]float64, len(s))
	for i := 1; i < len(s); i++ {
		ds := s[i] - s[i-1]
		var grad float64
		if ds > 0 {
			grad = math.Abs(chord[i]-chord[i-1]) / ds
		}
		effLen[i] = effLen[i-1] + ds*(1+gradientWeight*grad)
	}
	effTotal := effLen[len(effLen)-1]

	n := nPanels + 1
	targetEff := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := float64(i) / float64(nPanels) * math.Pi
		targetEff[i] = 0.5 * (1 - math.Cos(theta)) * effTotal
	}

	out := make([]float64, n)
	for i, te := range targetEff {
		k, t := bracket(effLen, te)
		out[i] = s[k] + t*(s[k+1]-s[k])
	}
	return out
}

// interpAt builds a refined section at arc-length parameter target,
// bracketed within the sorted user sections. Exact endpoint hits reuse
// the original Section value unchanged.
func interpAt(sorted []Section, s []float64, qc []vecmath.Vec3, target float64) (Section, error) {
	k, t := bracket(s, target)
	if t == 0 {
		return sorted[k], nil
	}
	if t == 1 {
		return sorted[k+1], nil
	}

	a, b := sorted[k], sorted[k+1]
	dirA := a.chordVec().Normalize()
	dirB := b.chordVec().Normalize()
	dir := vecmath.Lerp(dirA, dirB, t).Normalize()

	lenA := a.chordVec().Norm()
	lenB := b.chordVec().Norm()
	chordLen := lenA + t*(lenB-lenA)

	qcTarget := vecmath.Lerp(qc[k], qc[k+1], t)
	le := qcTarget.Sub(dir.Scale(0.25 * chordLen))
	te := qcTarget.Add(dir.Scale(0.75 * chordLen))

	aero, err := aeromodel.Interpolate(a.Aero, b.Aero, t)
	if err != nil {
		return Section{}, err
	}

	return Section{LE: le, TE: te, Aero: aero}, nil
}

// Refine produces n_panels+1 refined sections from the given user
// sections per the requested distribution and spanwise axis.
func Refine(userSections []Section, nPanels int, dist PanelDistribution, axis vecmath.Vec3) ([]Section, error) {
	if len(userSections) < 2 {
		return nil, vsmerr.NewConfigurationError("Refine", vsmerr.ErrNoSections)
	}
	if nPanels < 1 {
		return nil, vsmerr.NewConfigurationError("Refine", vsmerr.ErrNoSections)
	}
	for _, sec := range userSections {
		if err := sec.validate(); err != nil {
			return nil, err
		}
	}

	sorted := sortedByProjection(userSections, axis)
	qc := make([]vecmath.Vec3, len(sorted))
	for i, sec := range sorted {
		qc[i] = sec.QuarterChord()
	}
	s := arcLengths(qc)

	var refined []Section
	var err error

	switch dist {
	case UNCHANGED:
		if len(sorted) != nPanels+1 {
			return nil, vsmerr.NewGeometryError("Refine", vsmerr.ErrNoSections)
		}
		refined = sorted

	case SPLIT_PROVIDED:
		refined, err = splitProvided(sorted, s, nPanels)
		if err != nil {
			return nil, err
		}

	default:
		targets := targetParameters(dist, sorted, s, nPanels)
		refined = make([]Section, len(targets))
		for i, target := range targets {
			sec, ierr := interpAt(sorted, s, qc, target)
			if ierr != nil {
				return nil, ierr
			}
			refined[i] = sec
		}
	}

	if err := checkMonotone(refined, axis); err != nil {
		return nil, err
	}
	return refined, nil
}

// splitProvided keeps every user quarter-chord point and linearly
// subdivides between them, proportional to segment length, until
// n_panels+1 points are reached.
func splitProvided(sorted []Section, s []float64, nPanels int) ([]Section, error) {
	nSeg := len(sorted) - 1
	target := nPanels + 1
	if target < len(sorted) {
		return nil, vsmerr.NewConfigurationError("splitProvided", vsmerr.ErrNoSections)
	}
	extra := target - len(sorted) // additional interior points to place

	segLen := make([]float64, nSeg)
	total := 0.0
	for i := 0; i < nSeg; i++ {
		segLen[i] = s[i+1] - s[i]
		total += segLen[i]
	}

	// Distribute extra points across segments proportional to length,
	// largest-remainder method so the exact target count is hit.
	subdiv := make([]int, nSeg)
	if total > 0 {
		raw := make([]float64, nSeg)
		assigned := 0
		for i := 0; i < nSeg; i++ {
			raw[i] = float64(extra) * segLen[i] / total
			subdiv[i] = int(raw[i])
			assigned += subdiv[i]
		}
		remaining := extra - assigned
		type frac struct {
			idx int
			f   float64
		}
		fracs := make([]frac, nSeg)
		for i := range raw {
			fracs[i] = frac{i, raw[i] - math.Floor(raw[i])}
		}
		sort.Slice(fracs, func(i, j int) bool { return fracs[i].f > fracs[j].f })
		for i := 0; i < remaining && i < nSeg; i++ {
			subdiv[fracs[i].idx]++
		}
	}

	qc := arcLenQC(sorted)
	out := make([]Section, 0, target)
	for i := 0; i < nSeg; i++ {
		out = append(out, sorted[i])
		steps := subdiv[i] + 1
		for j := 1; j < steps; j++ {
			frac := float64(j) / float64(steps)
			targetS := s[i] + frac*segLen[i]
			sec, err := interpAt(sorted, s, qc, targetS)
			if err != nil {
				return nil, err
			}
			out = append(out, sec)
		}
	}
	out = append(out, sorted[nSeg])
	return out, nil
}

func arcLenQC(sorted []Section) []vecmath.Vec3 {
	qc := make([]vecmath.Vec3, len(sorted))
	for i, sec := range sorted {
		qc[i] = sec.QuarterChord()
	}
	return qc
}

func checkMonotone(sections []Section, axis vecmath.Vec3) error {
	for i := 1; i < len(sections); i++ {
		prev := sections[i-1].QuarterChord().Dot(axis)
		cur := sections[i].QuarterChord().Dot(axis)
		if cur >= prev {
			return vsmerr.NewGeometryError("checkMonotone", vsmerr.ErrDegeneratePanel)
		}
	}
	return nil
}
