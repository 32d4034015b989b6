// Package panel builds the quadrilateral vortex panels between
// consecutive refined wing sections and their five bound/trailing
// filaments.
package panel

import (
	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/filament"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
	"github.com/kitewing/vsmgo/internal/wing"
)

// Panel is one horseshoe-vortex element spanning two consecutive
// refined sections. Va is filled in by BodyAerodynamics.SetVA and is
// zero until then. Filaments holds the bound segment, the two finite
// trailing segments from each quarter chord to its section's trailing
// edge, and the two semi-infinite filaments leaving those trailing
// edges tangent to the freestream.
type Panel struct {
	AeroCenter   vecmath.Vec3
	ControlPoint vecmath.Vec3
	XAirf        vecmath.Vec3
	YAirf        vecmath.Vec3
	ZAirf        vecmath.Vec3
	Chord        float64
	Width        float64
	Va           vecmath.Vec3
	Filaments    []filament.Filament
	Aero         aeromodel.Aero

	qcI, qcJ vecmath.Vec3 // quarter chords of the two bounding sections
	teI, teJ vecmath.Vec3
}

// New builds the panel between refined sections si and sj (sj further
// along the span). Its sectional aero model is taken as the midpoint
// interpolation of the two sections' models.
func New(si, sj wing.Section) (*Panel, error) {
	leMid := si.LE.Add(sj.LE).Scale(0.5)
	teMid := si.TE.Add(sj.TE).Scale(0.5)
	chordVec := teMid.Sub(leMid)
	chord := chordVec.Norm()
	if chord == 0 {
		return nil, vsmerr.NewGeometryError("panel.New", vsmerr.ErrZeroChord)
	}

	spanVec := sj.LE.Sub(si.LE)
	width := spanVec.Norm()
	if width == 0 {
		return nil, vsmerr.NewGeometryError("panel.New", vsmerr.ErrDegeneratePanel)
	}

	xAirf := chordVec.Normalize()
	yAirf := spanVec.Normalize()
	zAirf := xAirf.Cross(yAirf).Normalize()
	if zAirf.Norm() == 0 {
		return nil, vsmerr.NewGeometryError("panel.New", vsmerr.ErrDegeneratePanel)
	}

	aero, err := aeromodel.Interpolate(si.Aero, sj.Aero, 0.5)
	if err != nil {
		return nil, err
	}

	qcI := si.QuarterChord()
	qcJ := sj.QuarterChord()

	p := &Panel{
		AeroCenter:   leMid.Add(chordVec.Scale(0.25)),
		ControlPoint: leMid.Add(chordVec.Scale(0.75)),
		XAirf:        xAirf,
		YAirf:        yAirf,
		ZAirf:        zAirf,
		Chord:        chord,
		Width:        width,
		Aero:         aero,
		qcI:          qcI,
		qcJ:          qcJ,
		teI:          si.TE,
		teJ:          sj.TE,
	}
	p.rebuildFilaments(vecmath.Vec3{X: 1})
	return p, nil
}

// Frame returns the panel's local orthonormal frame as a Mat3 with rows
// x_airf, y_airf, z_airf.
func (p *Panel) Frame() vecmath.Mat3 {
	return vecmath.Mat3{Rows: [3]vecmath.Vec3{p.XAirf, p.YAirf, p.ZAirf}}
}

// SetFreestreamDirection recomputes the semi-infinite trailing filament
// directions to the current unit freestream direction at this panel.
func (p *Panel) SetFreestreamDirection(dir vecmath.Vec3) {
	p.rebuildFilaments(dir)
}

func (p *Panel) rebuildFilaments(freestream vecmath.Vec3) {
	dir := freestream
	if dir.Norm() != 0 {
		dir = dir.Normalize()
	}
	if p.Filaments == nil {
		p.Filaments = make([]filament.Filament, 5)
	}
	p.Filaments[0] = filament.BoundSegment{P1: p.qcI, P2: p.qcJ}
	p.Filaments[1] = filament.TrailingSegment{P1: p.teI, P2: p.qcI}
	p.Filaments[2] = filament.TrailingSegment{P1: p.qcJ, P2: p.teJ}
	p.Filaments[3] = filament.TrailingSemiInf{Pivot: p.teI, Direction: dir, Sign: -1}
	p.Filaments[4] = filament.TrailingSemiInf{Pivot: p.teJ, Direction: dir, Sign: 1}
}
