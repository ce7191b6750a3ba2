// SPDX-License-Identifier: MIT
// Package lup: the permuted working view used during elimination.
//
// pivotView is an index-indirection layer over a fixed flat backing slice:
// rowIdx[i] names the physical row currently playing logical row i, and
// colIdx[j] does the same for columns. "Swap row i and row j" is therefore
// an O(1) exchange of two ints — no data moves until materialize. The view
// is transient: it exists only inside the elimination loop and is dropped
// once L and U are materialized as ordinary Dense matrices.

package lup

import "github.com/eheitfield/SimpleMatrixKit/matrix"

// pivotView is a square n×n float64 view with O(1) logical row/col swaps.
type pivotView struct {
	n      int       // dimension of the square view
	data   []float64 // flat row-major backing, length n*n, never reordered
	rowIdx []int     // logical row i lives at physical row rowIdx[i]
	colIdx []int     // logical col j lives at physical col colIdx[j]
}

// newPivotView builds a view over a copy of the square matrix m.
// The caller has already validated that m is square.
// Complexity: O(n²) for the copy; index arrays start as identity.
func newPivotView(m matrix.Matrix) *pivotView {
	n := m.Rows()
	v := &pivotView{
		n:      n,
		data:   make([]float64, n*n),
		rowIdx: make([]int, n),
		colIdx: make([]int, n),
	}

	var i, j int
	for i = 0; i < n; i++ {
		v.rowIdx[i] = i
		v.colIdx[i] = i
		for j = 0; j < n; j++ {
			// At cannot fail inside validated bounds.
			v.data[i*n+j], _ = m.At(i, j)
		}
	}

	return v
}

// newIdentityView builds a view over a fresh n×n identity backing.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func newIdentityView(n int) *pivotView {
	v := &pivotView{
		n:      n,
		data:   make([]float64, n*n),
		rowIdx: make([]int, n),
		colIdx: make([]int, n),
	}
	for i := 0; i < n; i++ {
		v.rowIdx[i] = i
		v.colIdx[i] = i
		v.data[i*n+i] = 1.0
	}

	return v
}

// at reads logical element (i, j) through both index maps. O(1).
// Bounds are the caller's responsibility; the view is package-private and
// only the elimination loop drives it, so raw access here is a programmer
// error, not a user-facing condition.
func (v *pivotView) at(i, j int) float64 {
	return v.data[v.rowIdx[i]*v.n+v.colIdx[j]]
}

// set writes logical element (i, j) through both index maps. O(1).
func (v *pivotView) set(i, j int, val float64) {
	v.data[v.rowIdx[i]*v.n+v.colIdx[j]] = val
}

// swapRows exchanges logical rows i and j in O(1) — only the index array
// changes, the backing data never moves.
func (v *pivotView) swapRows(i, j int) {
	v.rowIdx[i], v.rowIdx[j] = v.rowIdx[j], v.rowIdx[i]
}

// swapCols exchanges logical columns i and j in O(1).
func (v *pivotView) swapCols(i, j int) {
	v.colIdx[i], v.colIdx[j] = v.colIdx[j], v.colIdx[i]
}

// rowOrder returns a copy of the current logical→physical row mapping.
// After elimination this IS the permutation order array: position i of P·A
// holds original row rowOrder[i].
func (v *pivotView) rowOrder() []int {
	out := make([]int, v.n)
	copy(out, v.rowIdx)

	return out
}

// materialize flattens the view into an ordinary Dense, applying both index
// maps. The result owns independent storage; the view can be discarded.
// Complexity: O(n²).
func (v *pivotView) materialize() *matrix.Dense {
	// NewDense cannot fail for n ≥ 1; elimination never builds empty views.
	out, _ := matrix.NewDense(v.n, v.n)
	var i, j int // fixed i→j order
	for i = 0; i < v.n; i++ {
		for j = 0; j < v.n; j++ {
			_ = out.Set(i, j, v.data[v.rowIdx[i]*v.n+v.colIdx[j]])
		}
	}

	return out
}
