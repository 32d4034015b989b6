// Package vsmerr defines the error taxonomy shared across the aerodynamic
// core: configuration/geometry/interpolation errors are raised eagerly at
// construction time, convergence problems are surfaced as a warning
// alongside a usable result, and non-finite state is a hard error.
package vsmerr

import "fmt"

// Sentinel errors for errors.Is matching against a specific failure class.
var (
	// ErrZeroChord indicates a section's TE-LE vector is zero-length.
	ErrZeroChord = fmt.Errorf("vsmgo: zero-length chord")

	// ErrDegeneratePanel indicates a panel's leading and trailing edges
	// are colinear, so no normal direction can be formed.
	ErrDegeneratePanel = fmt.Errorf("vsmgo: degenerate panel (colinear LE/TE)")

	// ErrNonMonotoneAlpha indicates a polar's alpha grid is not strictly
	// increasing.
	ErrNonMonotoneAlpha = fmt.Errorf("vsmgo: polar alpha grid is not strictly increasing")

	// ErrNoSections indicates fewer than two sections were provided.
	ErrNoSections = fmt.Errorf("vsmgo: at least two sections are required")

	// ErrAllNaN indicates a polar table has no non-NaN entries to seed
	// neighbor-fill interpolation from.
	ErrAllNaN = fmt.Errorf("vsmgo: polar table has no non-NaN entries")

	// ErrNonFinite indicates NaN/Inf appeared in gamma, AIC, or inflow.
	ErrNonFinite = fmt.Errorf("vsmgo: non-finite value in solver state")
)

// ConfigurationError wraps a construction-time configuration problem:
// n_panels < 1, too few sections, mismatched aero-data shapes, etc.
type ConfigurationError struct {
	Op      string
	Wrapped error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("vsmgo: configuration error in %s: %v", e.Op, e.Wrapped)
}

func (e *ConfigurationError) Unwrap() error { return e.Wrapped }

func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Wrapped: err}
}

// GeometryError wraps a construction-time geometric failure: zero-length
// chord, degenerate panel, or refinement that cannot produce a monotone
// section sequence.
type GeometryError struct {
	Op      string
	Wrapped error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("vsmgo: geometry error in %s: %v", e.Op, e.Wrapped)
}

func (e *GeometryError) Unwrap() error { return e.Wrapped }

func NewGeometryError(op string, err error) *GeometryError {
	return &GeometryError{Op: op, Wrapped: err}
}

// InterpolationError wraps a post-cleanup NaN or an incompatible pair of
// neighboring aero grids during spanwise interpolation.
type InterpolationError struct {
	Op      string
	Wrapped error
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("vsmgo: interpolation error in %s: %v", e.Op, e.Wrapped)
}

func (e *InterpolationError) Unwrap() error { return e.Wrapped }

// ErrIncompatibleSectionAero indicates two neighboring sections' aero
// grids (alpha, or alpha+delta) do not match and cannot be promoted from
// Inviscid, so spanwise interpolation cannot proceed.
var ErrIncompatibleSectionAero = fmt.Errorf("vsmgo: incompatible section aero grids")

func NewInterpolationError(op string, err error) *InterpolationError {
	return &InterpolationError{Op: op, Wrapped: err}
}

// NonFiniteState is a hard error: NaN/Inf in gamma, AIC, or inflow arrays.
type NonFiniteState struct {
	Op      string
	Wrapped error
}

func (e *NonFiniteState) Error() string {
	return fmt.Sprintf("vsmgo: non-finite state in %s: %v", e.Op, e.Wrapped)
}

func (e *NonFiniteState) Unwrap() error { return e.Wrapped }

func NewNonFiniteState(op string, err error) *NonFiniteState {
	return &NonFiniteState{Op: op, Wrapped: err}
}

// DidNotConverge is a warning, not an error: the fixed-point solver hit
// max_iterations without meeting rtol. Callers still receive the last
// gamma iterate alongside this value.
type DidNotConverge struct {
	Iterations   int
	LastResidual float64
}

func (w *DidNotConverge) Error() string {
	return fmt.Sprintf("vsmgo: did not converge after %d iterations (residual %.3e)", w.Iterations, w.LastResidual)
}
