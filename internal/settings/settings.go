// Package settings loads the YAML configuration that enumerates wing
// geometry and solver tuning for a run, external to the numerical core.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kitewing/vsmgo/internal/aeromodel"
	"github.com/kitewing/vsmgo/internal/solver"
	"github.com/kitewing/vsmgo/internal/vecmath"
	"github.com/kitewing/vsmgo/internal/wing"
)

// SectionSpec is one user-provided spanwise station as read from YAML.
// AeroModel selects which of the remaining fields are populated.
type SectionSpec struct {
	LE [3]float64 `yaml:"le"`
	TE [3]float64 `yaml:"te"`

	AeroModel string `yaml:"aero_model"`

	TubeDiameter float64 `yaml:"tube_diameter,omitempty"`
	CamberHeight float64 `yaml:"camber_height,omitempty"`

	Alpha []float64 `yaml:"alpha,omitempty"`
	Cl    []float64 `yaml:"cl,omitempty"`
	Cd    []float64 `yaml:"cd,omitempty"`
	Cm    []float64 `yaml:"cm,omitempty"`

	Delta  []float64   `yaml:"delta,omitempty"`
	ClGrid [][]float64 `yaml:"cl_grid,omitempty"`
	CdGrid [][]float64 `yaml:"cd_grid,omitempty"`
	CmGrid [][]float64 `yaml:"cm_grid,omitempty"`
}

func (s SectionSpec) toAero(removeNaN bool) (aeromodel.Aero, error) {
	switch s.AeroModel {
	case "", "inviscid":
		return aeromodel.Inviscid{}, nil
	case "lei_breukels":
		return aeromodel.LeiBreukels{TubeDiameter: s.TubeDiameter, CamberHeight: s.CamberHeight}, nil
	case "polar_vectors":
		return aeromodel.NewPolarVectors(s.Alpha, s.Cl, s.Cd, s.Cm, removeNaN)
	case "polar_matrices":
		return aeromodel.NewPolarMatrices(s.Alpha, s.Delta, s.ClGrid, s.CdGrid, s.CmGrid)
	default:
		return nil, fmt.Errorf("settings: unknown aero_model %q", s.AeroModel)
	}
}

// WingSpec describes one lifting surface: its refinement parameters and
// user sections.
type WingSpec struct {
	NPanels           int           `yaml:"n_panels"`
	Distribution      string        `yaml:"distribution"`
	SpanwiseDirection [3]float64    `yaml:"spanwise_direction"`
	RemoveNaN         bool          `yaml:"remove_nan"`
	Sections          []SectionSpec `yaml:"sections"`
}

func parseDistribution(s string) (wing.PanelDistribution, error) {
	switch s {
	case "", "LINEAR":
		return wing.LINEAR, nil
	case "COSINE":
		return wing.COSINE, nil
	case "COSINE_VAN_GARREL":
		return wing.COSINE_VAN_GARREL, nil
	case "SPLIT_PROVIDED":
		return wing.SPLIT_PROVIDED, nil
	case "UNCHANGED":
		return wing.UNCHANGED, nil
	default:
		return 0, fmt.Errorf("settings: unknown distribution %q", s)
	}
}

// Build constructs a *wing.Wing from this spec.
func (w WingSpec) Build() (*wing.Wing, error) {
	dist, err := parseDistribution(w.Distribution)
	if err != nil {
		return nil, err
	}
	axis := vecmath.Vec3{X: w.SpanwiseDirection[0], Y: w.SpanwiseDirection[1], Z: w.SpanwiseDirection[2]}
	if axis.Norm() == 0 {
		axis = vecmath.Vec3{Y: 1}
	}
	wg, err := wing.NewWing(w.NPanels, dist, axis)
	if err != nil {
		return nil, err
	}
	for _, secSpec := range w.Sections {
		aero, err := secSpec.toAero(w.RemoveNaN)
		if err != nil {
			return nil, err
		}
		sec := wing.Section{
			LE:   vecmath.Vec3{X: secSpec.LE[0], Y: secSpec.LE[1], Z: secSpec.LE[2]},
			TE:   vecmath.Vec3{X: secSpec.TE[0], Y: secSpec.TE[1], Z: secSpec.TE[2]},
			Aero: aero,
		}
		if err := wg.AddSection(sec); err != nil {
			return nil, err
		}
	}
	return wg, nil
}

// SolverSettings mirrors the tunables of solver.Config in the shape the
// settings file exposes them.
type SolverSettings struct {
	AerodynamicModelType         string  `yaml:"aerodynamic_model_type"`
	Density                      float64 `yaml:"density"`
	MaxIterations                int     `yaml:"max_iterations"`
	Rtol                         float64 `yaml:"rtol"`
	TolReferenceError            float64 `yaml:"tol_reference_error"`
	RelaxationFactor             float64 `yaml:"relaxation_factor"`
	ArtificialDamping            bool    `yaml:"artificial_damping"`
	K2                           float64 `yaml:"k2"`
	K4                           float64 `yaml:"k4"`
	TypeInitialGammaDistribution string  `yaml:"type_initial_gamma_distribution"`
	CoreRadiusFraction           float64 `yaml:"core_radius_fraction"`
	Mu                           float64 `yaml:"mu"`
}

// ToConfig converts the YAML solver block into a solver.Config, falling
// back to solver.DefaultConfig for any zero-valued numeric field.
func (s SolverSettings) ToConfig() (solver.Config, error) {
	cfg := solver.DefaultConfig()

	switch s.AerodynamicModelType {
	case "", "VSM":
		cfg.Model = solver.VSM
	case "LLT":
		cfg.Model = solver.LLT
	default:
		return cfg, fmt.Errorf("settings: unknown aerodynamic_model_type %q", s.AerodynamicModelType)
	}

	if s.Density > 0 {
		cfg.Density = s.Density
	}
	if s.MaxIterations > 0 {
		cfg.MaxIterations = s.MaxIterations
	}
	if s.Rtol > 0 {
		cfg.Rtol = s.Rtol
	}
	if s.TolReferenceError > 0 {
		cfg.TolReferenceError = s.TolReferenceError
	}
	if s.RelaxationFactor > 0 {
		cfg.RelaxationFactor = s.RelaxationFactor
	}
	if s.CoreRadiusFraction > 0 {
		cfg.CoreRadiusFraction = s.CoreRadiusFraction
	}
	if s.Mu > 0 {
		cfg.Mu = s.Mu
	}
	cfg.ArtificialDamping = solver.ArtificialDamping{On: s.ArtificialDamping, K2: s.K2, K4: s.K4}

	switch s.TypeInitialGammaDistribution {
	case "", "ELLIPTIC":
		cfg.InitialGammaMethod = solver.Elliptic
	case "ZEROS":
		cfg.InitialGammaMethod = solver.Zeros
	default:
		return cfg, fmt.Errorf("settings: unknown type_initial_gamma_distribution %q", s.TypeInitialGammaDistribution)
	}

	return cfg, nil
}

// Settings is the full YAML document: one or more wings and the solver
// tuning applied to their assembly.
type Settings struct {
	Wings          []WingSpec     `yaml:"wings"`
	SolverSettings SolverSettings `yaml:"solver_settings"`
}

// DefaultSettings returns a single-wing rectangular default: a 20-panel
// LINEAR wing of inviscid sections, spanning 10 units at unit chord.
func DefaultSettings() *Settings {
	return &Settings{
		Wings: []WingSpec{{
			NPanels:           20,
			Distribution:      "LINEAR",
			SpanwiseDirection: [3]float64{0, 1, 0},
			Sections: []SectionSpec{
				{LE: [3]float64{0, -5, 0}, TE: [3]float64{1, -5, 0}, AeroModel: "inviscid"},
				{LE: [3]float64{0, 5, 0}, TE: [3]float64{1, 5, 0}, AeroModel: "inviscid"},
			},
		}},
		SolverSettings: SolverSettings{
			AerodynamicModelType:         "VSM",
			Density:                      1.225,
			MaxIterations:                1500,
			Rtol:                         1e-5,
			TolReferenceError:            1e-2,
			RelaxationFactor:             0.15,
			CoreRadiusFraction:           1e-4,
			TypeInitialGammaDistribution: "ELLIPTIC",
		},
	}
}

// Load reads and parses a YAML settings file, applying DefaultSettings
// for any field the file omits.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save serializes settings to path as YAML.
func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildWings constructs every wing.Wing described by s.
func (s *Settings) BuildWings() ([]*wing.Wing, error) {
	wings := make([]*wing.Wing, 0, len(s.Wings))
	for _, spec := range s.Wings {
		w, err := spec.Build()
		if err != nil {
			return nil, err
		}
		wings = append(wings, w)
	}
	return wings, nil
}
