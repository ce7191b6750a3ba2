// SPDX-License-Identifier: MIT
// Package lup: sentinel error set.
// Shape violations reuse the matrix package sentinels (matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch, matrix.ErrAsymmetry) so callers handle one
// taxonomy across the kit; the sentinels below are the run-time numerical
// outcomes specific to factorization. All are matched via errors.Is.

package lup

import "errors"

var (
	// ErrSingular is returned by Solve/Inverse/Factors when the cached
	// factorization is "undefined": the pivot search found a column whose
	// remaining candidates are all exactly zero. Singularity is a legitimate
	// run-time outcome (collinear data, rank deficiency), not a bug, and is
	// never raised from the constructor itself.
	ErrSingular = errors.New("lup: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal pivot
	// argument d = A[i,i] − Σ L[i,k]² is not strictly positive. Detected
	// explicitly rather than letting math.Sqrt produce a NaN.
	ErrNotPositiveDefinite = errors.New("lup: matrix is not positive definite")

	// ErrBadPermutation is returned by PermutationMatrix when the order array
	// is not a bijection on [0, n).
	ErrBadPermutation = errors.New("lup: order array is not a permutation")
)

// errNoPivot is the internal "factorization undefined" signal raised by the
// elimination loop. It never escapes the package: the constructor swallows
// it into the cached singular state, which queries surface as ErrSingular.
var errNoPivot = errors.New("lup: no nonzero pivot candidate")
