package wing

// PanelDistribution selects how the n_panels+1 refined section
// quarter-chord parameter values are placed along the poly-line through
// the user sections' quarter chords.
type PanelDistribution int

const (
	LINEAR PanelDistribution = iota
	COSINE
	COSINE_VAN_GARREL
	SPLIT_PROVIDED
	UNCHANGED
)

func (d PanelDistribution) String() string {
	switch d {
	case LINEAR:
		return "LINEAR"
	case COSINE:
		return "COSINE"
	case COSINE_VAN_GARREL:
		return "COSINE_VAN_GARREL"
	case SPLIT_PROVIDED:
		return "SPLIT_PROVIDED"
	case UNCHANGED:
		return "UNCHANGED"
	default:
		return "UNKNOWN"
	}
}
