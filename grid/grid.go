// SPDX-License-Identifier: MIT
// Package grid: the concrete generic container.
// Grid[T] stores a flat row-major slice and enforces rectangularity at
// construction; all accessors copy, so external code can never alias the
// backing storage.

package grid

import "fmt"

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, err error) error {
	return fmt.Errorf("Grid.%s: %w", method, err)
}

// Grid is a dense rectangular container of elements of any value type.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Invariant: every row has exactly c elements.
type Grid[T any] struct {
	r, c int
	data []T // flat backing storage, length == r*c
}

// New builds a Grid from a rectangular [][]T.
// Stage 1 (Validate): reject empty input and ragged rows before allocating.
// Stage 2 (Copy): deep-copy row by row into the flat backing slice.
// Errors: ErrInvalidDimensions, ErrRaggedRows.
// Complexity: O(r*c).
func New[T any](rows [][]T) (*Grid[T], error) {
	// Validate outer and inner dimensions.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, gridErrorf("New", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, gridErrorf("New", ErrRaggedRows)
		}
	}

	// Copy into flat storage.
	g := &Grid[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i, row := range rows {
		copy(g.data[i*cols:], row)
	}

	return g, nil
}

// NewSized returns an r×c Grid filled with T's zero value.
// Errors: ErrInvalidDimensions. Complexity: O(r*c).
func NewSized[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, gridErrorf("NewSized", ErrInvalidDimensions)
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.c }

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= g.r {
		return zero, gridErrorf("At", ErrOutOfRange)
	}
	if col < 0 || col >= g.c {
		return zero, gridErrorf("At", ErrOutOfRange)
	}

	return g.data[row*g.c+col], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange. Complexity: O(c).
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf("Row", ErrOutOfRange)
	}
	out := make([]T, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange. Complexity: O(r).
func (g *Grid[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= g.c {
		return nil, gridErrorf("Col", ErrOutOfRange)
	}
	out := make([]T, g.r)
	for i := 0; i < g.r; i++ {
		out[i] = g.data[i*g.c+j]
	}

	return out, nil
}

// GridRows returns all rows as a fresh rectangular [][]T, satisfying the
// RowProvider capability contract. Mutating the result never affects the
// grid. Complexity: O(r*c).
func (g *Grid[T]) GridRows() [][]T {
	out := make([][]T, g.r)
	for i := 0; i < g.r; i++ {
		row := make([]T, g.c)
		copy(row, g.data[i*g.c:(i+1)*g.c])
		out[i] = row
	}

	return out
}
