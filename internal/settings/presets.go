package settings

// Presets holds named, ready-to-run wing/solver configurations grouped
// by a rough shape category, the way the source project groups its
// dynamical-model presets by model name.
var Presets = map[string]map[string]*Settings{
	"rectangular": {
		"low_alpha": rectangularPreset(20, 1, 20, 1.225, "VSM"),
		"high_ar":   rectangularPreset(30, 1.5, 30, 1.225, "VSM"),
		"llt":       rectangularPreset(20, 1, 20, 1.225, "LLT"),
	},
	"tapered": {
		"default": taperedPreset(),
	},
}

func rectangularPreset(span, chord float64, nPanels int, density float64, model string) *Settings {
	half := span / 2
	return &Settings{
		Wings: []WingSpec{{
			NPanels:           nPanels,
			Distribution:      "COSINE",
			SpanwiseDirection: [3]float64{0, 1, 0},
			Sections: []SectionSpec{
				{LE: [3]float64{0, -half, 0}, TE: [3]float64{chord, -half, 0}, AeroModel: "inviscid"},
				{LE: [3]float64{0, half, 0}, TE: [3]float64{chord, half, 0}, AeroModel: "inviscid"},
			},
		}},
		SolverSettings: SolverSettings{
			AerodynamicModelType:         model,
			Density:                      density,
			MaxIterations:                1500,
			Rtol:                         1e-5,
			TolReferenceError:            1e-2,
			RelaxationFactor:             0.15,
			CoreRadiusFraction:           1e-4,
			TypeInitialGammaDistribution: "ELLIPTIC",
		},
	}
}

func taperedPreset() *Settings {
	return &Settings{
		Wings: []WingSpec{{
			NPanels:           16,
			Distribution:      "COSINE_VAN_GARREL",
			SpanwiseDirection: [3]float64{0, 1, 0},
			Sections: []SectionSpec{
				{LE: [3]float64{0, -5, 0}, TE: [3]float64{1.4, -5, 0}, AeroModel: "inviscid"},
				{LE: [3]float64{0.3, 0, 0}, TE: [3]float64{1.0, 0, 0}, AeroModel: "inviscid"},
				{LE: [3]float64{0.5, 5, 0}, TE: [3]float64{0.7, 5, 0}, AeroModel: "inviscid"},
			},
		}},
		SolverSettings: SolverSettings{
			AerodynamicModelType:         "VSM",
			Density:                      1.225,
			MaxIterations:                1500,
			Rtol:                         1e-5,
			TolReferenceError:            1e-2,
			RelaxationFactor:             0.1,
			CoreRadiusFraction:           1e-4,
			TypeInitialGammaDistribution: "ELLIPTIC",
		},
	}
}

// GetPreset returns the named preset within category, or nil if either
// is unknown.
func GetPreset(category, name string) *Settings {
	group, ok := Presets[category]
	if !ok {
		return nil
	}
	s, ok := group[name]
	if !ok {
		return nil
	}
	return s
}

// ListPresets returns the preset names within category.
func ListPresets(category string) []string {
	group, ok := Presets[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
