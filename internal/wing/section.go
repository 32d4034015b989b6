// Package wing holds user-provided spanwise sections and refines them
// into the fixed-count mesh the panel and solver layers consume.
package wing

import (
	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// Section is a single spanwise station: leading and trailing edge points
// and the sectional aero model in effect there. The chord vector TE-LE
// must be nonzero.
type Section struct {
	LE, TE vecmath.Vec3
	Aero   aeromodel.Aero
}

func (s Section) QuarterChord() vecmath.Vec3 {
	return s.LE.Add(s.TE.Sub(s.LE).Scale(0.25))
}

func (s Section) chordVec() vecmath.Vec3 { return s.TE.Sub(s.LE) }

func (s Section) validate() error {
	if s.chordVec().Norm() == 0 {
		return vsmerr.NewGeometryError("Section.validate", vsmerr.ErrZeroChord)
	}
	return nil
}
