// Package solver builds the aerodynamic influence coefficient matrices
// for a BodyAerodynamics assembly and iterates the damped fixed-point
// circulation solve shared by LLT and VSM.
package solver

// Model selects the evaluation point and self-induction treatment.
// VSM evaluates at the three-quarter-chord control point and keeps the
// full induced-velocity contribution; LLT evaluates at the quarter-chord
// aerodynamic center and subtracts each panel's own bound-vortex
// self-induction.
type Model int

const (
	VSM Model = iota
	LLT
)

func (m Model) String() string {
	if m == LLT {
		return "LLT"
	}
	return "VSM"
}

// InitialGamma selects the seed circulation distribution before the
// fixed-point iteration begins.
type InitialGamma int

const (
	Elliptic InitialGamma = iota
	Zeros
)

// ArtificialDamping smooths the circulation distribution with a
// Jameson-style blend of second and fourth spanwise differences.
type ArtificialDamping struct {
	On     bool
	K2, K4 float64
}

// Config holds every tunable of the circulation solve.
type Config struct {
	Model               Model
	CoreRadiusFraction  float64
	MaxIterations       int
	Rtol                float64
	RelaxationFactor    float64
	TolReferenceError   float64
	ArtificialDamping   ArtificialDamping
	InitialGammaMethod  InitialGamma
	Density             float64
	Mu                  float64
	NewtonOnDivergence  bool
}

// DefaultConfig mirrors the conventional VSM defaults: full induced
// velocity at the control point, moderate relaxation, no artificial
// damping.
func DefaultConfig() Config {
	return Config{
		Model:              VSM,
		CoreRadiusFraction: 1e-4,
		MaxIterations:      1500,
		Rtol:               1e-5,
		RelaxationFactor:   0.15,
		TolReferenceError:  1e-2,
		InitialGammaMethod: Elliptic,
		Density:            1.225,
		Mu:                 1.81e-5,
		NewtonOnDivergence: true,
	}
}
