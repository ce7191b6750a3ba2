// SPDX-License-Identifier: MIT
// Package lup: eager-cached LUP construction.
//
// The elimination loop below is the algorithmic heart of the kit. It walks
// pivot columns left to right; for each it scans the remaining rows for the
// largest-magnitude candidate (first index wins ties, keeping the scan
// deterministic and testable), swaps that row into place in O(1) via the
// pivot view, and eliminates everything below the pivot. The one subtle
// step: a row swap is applied to U's rows, L's rows AND L's columns. L's
// already-written multipliers are keyed to column positions established by
// earlier pivots; reordering rows without reordering those column labels
// would silently break L's lower-triangular shape under the final
// permutation.

package lup

import (
	"fmt"
	"math"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

// opNew tags constructor-stage validation errors.
const opNew = "lup.New"

// Factored is a square real matrix together with its eagerly computed,
// cached LUP factorization. Construct with New; a Factored value is
// immutable after construction and safe for concurrent readers.
type Factored struct {
	a     *matrix.Dense // private copy of the original matrix
	n     int           // dimension
	l     *matrix.Dense // unit-lower-triangular factor; nil when undefined
	u     *matrix.Dense // upper-triangular factor; nil when undefined
	perm  []int         // row order: position i of P·A holds original row perm[i]
	swaps int           // row transpositions performed; parity gives sign(P)
	opts  options       // numeric policy (symmetry tolerance for Cholesky)
}

// New builds a Factored value from any square matrix.
//
// Implementation:
//   - Stage 1: validate m non-nil and square (fails BEFORE any factorization
//     work with matrix.ErrNilMatrix / matrix.ErrNonSquare).
//   - Stage 2: copy m into private storage and run pivoted elimination
//     exactly once. A column with no usable pivot is swallowed into the
//     cached "undefined" state — construction never fails on numerical
//     singularity, only on the shape precondition.
//
// Complexity: Time O(n³), Space O(n²).
func New(m matrix.Matrix, opts ...Option) (*Factored, error) {
	// Shape precondition, checked eagerly.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	f := &Factored{
		a:    cloneToDense(m),
		n:    m.Rows(),
		opts: gatherOptions(opts...),
	}

	// Attempt the factorization once; cache the outcome for life.
	l, u, perm, swaps, err := decompose(f.a)
	if err != nil {
		// errNoPivot is the only failure decompose produces; it becomes the
		// cached singular state rather than a constructor error.
		return f, nil
	}
	f.l, f.u, f.perm, f.swaps = l, u, perm, swaps

	return f, nil
}

// Size returns the dimension n of the factored matrix. O(1).
func (f *Factored) Size() int { return f.n }

// Defined reports whether a factorization exists: false means the pivot
// search found a column with no nonzero candidate (singular matrix). O(1).
func (f *Factored) Defined() bool { return f.l != nil }

// Matrix returns an independent copy of the original matrix A. O(n²).
func (f *Factored) Matrix() *matrix.Dense {
	return f.a.Clone().(*matrix.Dense)
}

// decompose runs partial-pivot Gaussian elimination over pivot views and
// returns materialized factors. Only errNoPivot can be returned.
//
// Loop invariants:
//   - after step i, logical column i of the U view is zero below the pivot;
//   - the L view stays unit-triangular under its own (row, col) index maps
//     because every row swap is mirrored as a column swap;
//   - perm is read off the U view's row map, so P·A = L·U by construction.
func decompose(a matrix.Matrix) (l, u *matrix.Dense, perm []int, swaps int, err error) {
	n := a.Rows()
	uView := newPivotView(a)    // working copy of A
	lView := newIdentityView(n) // accumulates elimination multipliers

	var (
		i, j, k, r    int     // loop iterators
		maxIdx        int     // row index of the winning pivot candidate
		maxVal, cand  float64 // |pivot| scan state
		pivotVal, cof float64 // pivot value and elimination coefficient
	)
	// An n×n matrix needs no pivot step at the last column.
	for i = 0; i < n-1; i++ {
		// Scan rows i..n-1 for the maximal absolute value in column i.
		// Strict > keeps the FIRST index achieving the maximum, making
		// tie-breaking deterministic.
		maxIdx, maxVal = i, math.Abs(uView.at(i, i))
		for r = i + 1; r < n; r++ {
			cand = math.Abs(uView.at(r, i))
			if cand > maxVal {
				maxIdx, maxVal = r, cand
			}
		}

		// An exactly-zero maximum means no LUP factorization exists under
		// this algorithm. No epsilon here: exact-zero detection by design.
		if maxVal == 0 {
			return nil, nil, nil, 0, errNoPivot
		}

		// Swap the winning row into pivot position — in U's rows, L's rows,
		// and L's columns, all O(1) index updates.
		if maxIdx != i {
			uView.swapRows(i, maxIdx)
			lView.swapRows(i, maxIdx)
			lView.swapCols(i, maxIdx)
			swaps++
		}

		// Eliminate below the pivot: row j ← row j + cof·row i.
		pivotVal = uView.at(i, i)
		for j = i + 1; j < n; j++ {
			cof = -uView.at(j, i) / pivotVal
			for k = i + 1; k < n; k++ {
				uView.set(j, k, uView.at(j, k)+cof*uView.at(i, k))
			}
			uView.set(j, i, 0) // exact zero below the pivot, no residue
			lView.set(j, i, -cof)
		}
	}

	// Read the permutation off the U view, then flatten both views into
	// ordinary matrices; the views die here.
	return lView.materialize(), uView.materialize(), uView.rowOrder(), swaps, nil
}

// cloneToDense copies any Matrix into freshly owned Dense storage. The
// engine must own an independent copy: the working view mutates in place
// during elimination and the original must stay observable via Matrix().
func cloneToDense(m matrix.Matrix) *matrix.Dense {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense)
	}

	// Generic path: At cannot fail inside validated bounds.
	out, _ := matrix.NewDense(m.Rows(), m.Cols())
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			_ = out.Set(i, j, v)
		}
	}

	return out
}
