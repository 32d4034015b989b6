// Package solver builds the aerodynamic influence coefficient matrices
// and runs the damped fixed-point circulation solve shared by the
// Lifting-Line and Vortex Step methods. AIC assembly and the
// matrix-vector products inside the iteration loop are the only places
// parallelism is applied; both are row-independent so the result never
// depends on how many goroutines the backend uses.
package solver
