// Package matrix provides the float64 dense surface of SimpleMatrixKit.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) that the
//     factorization engine in package lup is written against.
//   - Dense, a row-major flat-slice implementation with O(1) element access
//     and cache-friendly kernels.
//   - Deterministic kernels (Add, Sub, Mul, Scale, Transpose, MatVec,
//     Hadamard) with a *Dense fast path and a generic At/Set fallback.
//   - Horizontal and vertical concatenation (HConcat, VConcat).
//   - Central validators and package-level sentinel errors matched with
//     errors.Is.
//
// All kernels allocate a fresh result and never mutate their operands.
package matrix
