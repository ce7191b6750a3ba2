// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Messages are prefixed with "grid: ..." and matched via errors.Is; the
// concatenation sentinels are deliberately split by axis so callers get a
// precise diagnostic for the operation that failed.

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are
	// non-positive or the input row set is empty.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrRaggedRows indicates that the supplied rows have unequal lengths,
	// violating the rectangularity invariant.
	ErrRaggedRows = errors.New("grid: ragged rows")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrBadRange indicates an invalid submatrix range (reversed or
	// out-of-bounds endpoints).
	ErrBadRange = errors.New("grid: invalid submatrix range")

	// ErrConcatRows indicates a horizontal concatenation whose operands have
	// different row counts.
	ErrConcatRows = errors.New("grid: row counts differ for horizontal concat")

	// ErrConcatCols indicates a vertical concatenation whose operands have
	// different column counts.
	ErrConcatCols = errors.New("grid: column counts differ for vertical concat")
)
