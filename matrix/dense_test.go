// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense container.
package matrix_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eheitfield/SimpleMatrixKit/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{2, 5},
		{6, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
	} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("NewDense(%d,%d): want ErrInvalidDimensions, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestDenseAtSetRoundTripAndBounds(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 4
	m := MustDense(t, rows, cols)

	MustSet(t, m, 1, 2, 42.5)
	if got := MustAt(t, m, 1, 2); got != 42.5 {
		t.Fatalf("At(1,2): want 42.5, got %g", got)
	}

	// Out-of-range indices must return ErrOutOfRange, never panic.
	for _, tc := range []struct{ i, j int }{
		{-1, 0}, {rows, 0}, {0, -1}, {0, cols},
	} {
		if _, err := m.At(tc.i, tc.j); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
		if err := m.Set(tc.i, tc.j, 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
	}
}

func TestDenseCloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	// Mutating the clone must not leak into the original.
	MustSet(t, c, 0, 0, -7)
	if got := MustAt(t, m, 0, 0); got != 1 {
		t.Fatalf("original mutated through clone: got %g", got)
	}
	if got := MustAt(t, c, 0, 0); got != -7 {
		t.Fatalf("clone write lost: got %g", got)
	}
}

func TestFromRowsRaggedAndEmpty(t *testing.T) {
	t.Parallel()

	if _, err := matrix.FromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, matrix.ErrRaggedRows) {
		t.Fatalf("ragged rows: want ErrRaggedRows, got %v", err)
	}
	if _, err := matrix.FromRows(nil); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("nil rows: want ErrInvalidDimensions, got %v", err)
	}
	if _, err := matrix.FromRows([][]float64{{}}); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("empty row: want ErrInvalidDimensions, got %v", err)
	}
}

func TestFromRowsCopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, rows)
	rows[0][0] = 99 // mutate the source after construction
	if got := MustAt(t, m, 0, 0); got != 1 {
		t.Fatalf("FromRows must copy its input; got %g", got)
	}
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	const n = 4
	I := MustIdentity(t, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := MustAt(t, I, i, j); got != want {
				t.Fatalf("I[%d,%d]: want %g, got %g", i, j, want, got)
			}
		}
	}
}

func TestDenseString(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {3, 4}})
	s := fmt.Sprintf("%v", m)
	if !strings.Contains(s, "[1, 2.5]") || !strings.Contains(s, "[3, 4]") {
		t.Fatalf("unexpected String output: %q", s)
	}
}
