package wing

import (
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/vsmerr"
)

// Wing collects the user-provided sections for one lifting surface and
// the parameters that control how they are refined into a fixed-count
// mesh. SpanwiseDirection need not be a coordinate axis; sections are
// sorted by their projection onto it.
type Wing struct {
	Sections          []Section
	SpanwiseDirection vecmath.Vec3
	NPanels           int
	Distribution      PanelDistribution
}

// NewWing constructs an empty wing with the given panel count,
// distribution, and spanwise axis. axis is normalized; a zero-length
// axis is a configuration error.
func NewWing(nPanels int, dist PanelDistribution, axis vecmath.Vec3) (*Wing, error) {
	if nPanels < 1 {
		return nil, vsmerr.NewConfigurationError("NewWing", vsmerr.ErrNoSections)
	}
	if axis.Norm() == 0 {
		return nil, vsmerr.NewConfigurationError("NewWing", vsmerr.ErrDegeneratePanel)
	}
	return &Wing{
		SpanwiseDirection: axis.Normalize(),
		NPanels:           nPanels,
		Distribution:      dist,
	}, nil
}

// AddSection appends a user-provided section. Order does not matter;
// Refine sorts by spanwise projection before meshing.
func (w *Wing) AddSection(s Section) error {
	if err := s.validate(); err != nil {
		return err
	}
	w.Sections = append(w.Sections, s)
	return nil
}

// Refine builds the n_panels+1 refined sections implied by the wing's
// distribution, panel count, and spanwise axis.
func (w *Wing) Refine() ([]Section, error) {
	if len(w.Sections) < 2 {
		return nil, vsmerr.NewConfigurationError("Wing.Refine", vsmerr.ErrNoSections)
	}
	return Refine(w.Sections, w.NPanels, w.Distribution, w.SpanwiseDirection)
}
