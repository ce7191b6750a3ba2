// SPDX-License-Identifier: MIT
// Package grid: the capability contract and its derived operations.
// Everything here is written against RowProvider, not against the concrete
// Grid, so any conforming storage gains these views for free. Each derived
// function calls GridRows exactly once and works on the snapshot.

package grid

// RowProvider is the minimal capability contract of the package: produce all
// rows as a rectangular sequence of elements. Implementations must return
// rows of equal length; Grid[T] satisfies this by construction.
type RowProvider[T any] interface {
	// GridRows returns every row, top to bottom. Implementations should
	// return data the caller may keep (i.e. a copy, not internal storage).
	GridRows() [][]T
}

// RowCount reports the number of rows p provides. Complexity: O(rows) for
// the snapshot an implementation takes; O(1) on the result.
func RowCount[T any](p RowProvider[T]) int {
	return len(p.GridRows())
}

// ColCount reports the number of columns p provides (0 for an empty provider).
func ColCount[T any](p RowProvider[T]) int {
	rows := p.GridRows()
	if len(rows) == 0 {
		return 0
	}

	return len(rows[0])
}

// Element retrieves element (i, j) from any provider.
// Errors: ErrOutOfRange. Complexity: O(r*c) for the snapshot.
func Element[T any](p RowProvider[T], i, j int) (T, error) {
	var zero T
	rows := p.GridRows()
	if i < 0 || i >= len(rows) {
		return zero, gridErrorf("Element", ErrOutOfRange)
	}
	if j < 0 || j >= len(rows[i]) {
		return zero, gridErrorf("Element", ErrOutOfRange)
	}

	return rows[i][j], nil
}

// Transpose materializes pᵀ as a fresh Grid.
// Errors: ErrInvalidDimensions on an empty provider. Complexity: O(r*c).
func Transpose[T any](p RowProvider[T]) (*Grid[T], error) {
	rows := p.GridRows()
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, gridErrorf("Transpose", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])

	out := &Grid[T]{r: c, c: r, data: make([]T, r*c)}
	var i, j int // fixed i→j order
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[j*r+i] = rows[i][j]
		}
	}

	return out, nil
}

// Submatrix extracts the half-open block [r0, r1) × [c0, c1) as a fresh Grid.
// Errors: ErrBadRange on reversed or out-of-bounds endpoints,
// ErrInvalidDimensions on an empty block. Complexity: O(block size).
func Submatrix[T any](p RowProvider[T], r0, r1, c0, c1 int) (*Grid[T], error) {
	rows := p.GridRows()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	// Validate the requested window against the provider's shape.
	if r0 < 0 || r1 > r || c0 < 0 || c1 > c || r0 > r1 || c0 > c1 {
		return nil, gridErrorf("Submatrix", ErrBadRange)
	}
	if r0 == r1 || c0 == c1 {
		return nil, gridErrorf("Submatrix", ErrInvalidDimensions)
	}

	out := &Grid[T]{r: r1 - r0, c: c1 - c0, data: make([]T, (r1-r0)*(c1-c0))}
	for i := r0; i < r1; i++ {
		copy(out.data[(i-r0)*out.c:], rows[i][c0:c1])
	}

	return out, nil
}

// HorizontalConcat joins [A | B]; operands must have equal row counts.
// Errors: ErrConcatRows, ErrInvalidDimensions. Complexity: O(r*(ca+cb)).
func HorizontalConcat[T any](a, b RowProvider[T]) (*Grid[T], error) {
	ra, rb := a.GridRows(), b.GridRows()
	if len(ra) == 0 || len(rb) == 0 {
		return nil, gridErrorf("HorizontalConcat", ErrInvalidDimensions)
	}
	if len(ra) != len(rb) {
		return nil, gridErrorf("HorizontalConcat", ErrConcatRows)
	}

	ca, cb := len(ra[0]), len(rb[0])
	out := &Grid[T]{r: len(ra), c: ca + cb, data: make([]T, len(ra)*(ca+cb))}
	for i := range ra {
		copy(out.data[i*out.c:], ra[i])
		copy(out.data[i*out.c+ca:], rb[i])
	}

	return out, nil
}

// VerticalConcat stacks [A ; B]; operands must have equal column counts.
// Errors: ErrConcatCols, ErrInvalidDimensions. Complexity: O((ra+rb)*c).
func VerticalConcat[T any](a, b RowProvider[T]) (*Grid[T], error) {
	ra, rb := a.GridRows(), b.GridRows()
	if len(ra) == 0 || len(rb) == 0 {
		return nil, gridErrorf("VerticalConcat", ErrInvalidDimensions)
	}
	if len(ra[0]) != len(rb[0]) {
		return nil, gridErrorf("VerticalConcat", ErrConcatCols)
	}

	c := len(ra[0])
	out := &Grid[T]{r: len(ra) + len(rb), c: c, data: make([]T, (len(ra)+len(rb))*c)}
	for i := range ra {
		copy(out.data[i*c:], ra[i])
	}
	for i := range rb {
		copy(out.data[(len(ra)+i)*c:], rb[i])
	}

	return out, nil
}

// Equal reports pointwise equality of two providers: same dimensions and
// equal elements everywhere. Complexity: O(r*c).
func Equal[T comparable](a, b RowProvider[T]) bool {
	ra, rb := a.GridRows(), b.GridRows()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if len(ra[i]) != len(rb[i]) {
			return false
		}
		for j := range ra[i] {
			if ra[i][j] != rb[i][j] {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether p is square and equal to its own transpose.
// Only the strict upper triangle is compared. Complexity: O(n²).
func IsSymmetric[T comparable](p RowProvider[T]) bool {
	rows := p.GridRows()
	n := len(rows)
	if n == 0 || len(rows[0]) != n {
		return false // empty or non-square providers are never symmetric
	}

	var i, j int // fixed upper-triangle scan
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return false
			}
		}
	}

	return true
}
