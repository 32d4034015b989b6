package compute

// Backend performs the dense linear-algebra work behind AIC assembly and
// the circulation solve. Every implementation must produce bit-identical
// output regardless of how many goroutines it uses internally: each row
// of output depends only on its own inputs, never on partial results
// from another row, so row-chunking never changes the arithmetic order
// within a row.
type Backend interface {
	Name() string

	// MatVecMul computes out[i] = sum_j rows[i][j]*x[j] for every row.
	// out must already be sized len(rows); it is overwritten, not
	// accumulated into.
	MatVecMul(rows [][]float64, x []float64, out []float64)

	// ParallelRows calls fn(i) for every i in [0,n), possibly from
	// multiple goroutines, and blocks until all calls return. fn must
	// not touch state shared across values of i.
	ParallelRows(n int, fn func(i int))
}

// AutoSelectBackend picks CPUBackend for problem sizes large enough to
// benefit from row-chunked parallelism, else SerialBackend. Both are
// deterministic; this only affects wall-clock time.
func AutoSelectBackend(n int) Backend {
	if n >= parallelThreshold {
		return NewCPUBackend()
	}
	return NewSerialBackend()
}

const parallelThreshold = 64
