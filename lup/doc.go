// Package lup implements the square-matrix factorization core of
// SimpleMatrixKit: partial-pivot Gaussian elimination producing matrices L,
// U and a row permutation such that P·A = L·U, with determinant, trace,
// linear-system solving, inversion and an independent Cholesky routine
// layered on top.
//
// A Factored value is constructed once from a square matrix.Matrix; the LUP
// factorization is computed eagerly at construction and cached for the
// value's lifetime — it is never recomputed, and a Factored value is safe
// for concurrent readers. A matrix for which the pivot search finds a column
// with no nonzero candidate has no LUP factorization under this algorithm;
// that outcome is cached as a "singular" state, never raised from the
// constructor. Queries that require the factors (Solve, Inverse, Factors)
// then fail with ErrSingular, while Determinant reports 0 and Trace keeps
// working (it depends only on the original diagonal).
//
// Elimination runs over a permuted working view: two index arrays (one for
// rows, one for columns) over an unmodified flat backing store, so a row or
// column swap is an O(1) index update instead of a data copy. When a later
// pivot reorders rows, L's already-written columns are reordered in
// lockstep — swapping only L's rows would silently destroy its triangular
// shape under the final permutation. The view is discarded once the factors
// are materialized and is never exposed to callers.
//
// The permutation is returned as an order array (perm[i] = source row of
// row i in P·A), not a dense matrix; PermutationMatrix reconstructs the
// explicit P for callers that need one.
package lup
