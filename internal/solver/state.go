package solver

import "github.com/kitewing/vsmgo/internal/vecmath"

// State holds every buffer the solve touches, sized once to the panel
// count P and reused across solves. Rebuilding panels (a wing geometry
// or distribution change) requires calling ensureSize again via
// BuildAIC, which detects the size change.
type State struct {
	P int

	AICx, AICy, AICz             [][]float64
	AICBoundX, AICBoundY, AICBoundZ [][]float64

	Gamma, GammaNew []float64
	Alpha           []float64

	// Veff is the effective inflow at each panel's evaluation point from
	// the most recently completed gamma_loop iteration: va + induced
	// velocity, minus the bound self-induction for LLT.
	Veff []vecmath.Vec3

	ux, uy, uz    []float64
	ubx, uby, ubz []float64
	smoothed      []float64
}

// NewState allocates a zero-sized state; ensureSize grows it lazily on
// first use.
func NewState() *State { return &State{} }

func (s *State) ensureSize(p int) {
	if s.P == p {
		return
	}
	s.P = p
	s.AICx = allocMatrix(p)
	s.AICy = allocMatrix(p)
	s.AICz = allocMatrix(p)
	s.AICBoundX = allocMatrix(p)
	s.AICBoundY = allocMatrix(p)
	s.AICBoundZ = allocMatrix(p)

	s.Gamma = make([]float64, p)
	s.GammaNew = make([]float64, p)
	s.Alpha = make([]float64, p)
	s.Veff = make([]vecmath.Vec3, p)

	s.ux = make([]float64, p)
	s.uy = make([]float64, p)
	s.uz = make([]float64, p)
	s.ubx = make([]float64, p)
	s.uby = make([]float64, p)
	s.ubz = make([]float64, p)
	s.smoothed = make([]float64, p)
}

func allocMatrix(p int) [][]float64 {
	m := make([][]float64, p)
	backing := make([]float64, p*p)
	for i := range m {
		m[i] = backing[i*p : (i+1)*p]
	}
	return m
}
