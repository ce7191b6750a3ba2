// Package simplematrixkit is a small dense-matrix toolkit for real linear
// algebra: generic rectangular containers, float64 dense kernels, and an
// eagerly cached LUP factorization engine.
//
// 🚀 What is SimpleMatrixKit?
//
//	A deterministic, pure-Go library organized in three layers:
//		• grid/   — generic rectangular storage over any value type plus a
//		            "rows provider" capability contract with derived views
//		            (transpose, submatrix, concatenation, symmetry checks)
//		• matrix/ — the float64 surface: Matrix interface, row-major Dense
//		            storage, elementwise & multiplicative kernels, validators
//		            and sentinel errors
//		• lup/    — the factorization core: partial-pivot Gaussian elimination
//		            producing P·A = L·U over an O(1)-swap permuted view, with
//		            determinant, trace, solve, inverse and Cholesky on top
//
// ✨ Why choose SimpleMatrixKit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, stable pivot tie-breaking
//   - Pure Go – no cgo, no hidden deps, no I/O in the numeric core
//   - Honest errors – shape violations and numerical singularity are
//     distinct sentinel errors, matched via errors.Is
//
// A factored matrix is constructed once; its LUP factorization is computed
// eagerly at construction and cached for the value's lifetime. Singularity
// is a legitimate run-time outcome, surfaced as lup.ErrSingular from the
// queries that need the factors, never as a constructor failure.
//
// See cmd/lupsolve for a command-line front end over the same library.
package simplematrixkit
