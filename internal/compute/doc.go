// Package compute provides the row-parallel primitives behind AIC
// assembly and the circulation solve.
//
// Every Backend is deterministic: row i of any output depends only on
// row i's own inputs, so chunking rows across goroutines never changes
// the floating-point result, only the wall-clock time. AutoSelectBackend
// picks CPUBackend for large meshes and SerialBackend for small ones,
// where goroutine setup would outweigh the work.
package compute
