// Package grid provides the generic rectangular-container layer of
// SimpleMatrixKit.
//
// The grid package provides:
//
//   - Grid[T], a dense rectangular container over any value type with the
//     invariant that every row has equal length.
//   - RowProvider[T], the minimal capability contract ("provide all rows as
//     a rectangular sequence"). Any type implementing it gains, for free,
//     row/column counts, element access, transpose, submatrix extraction and
//     concatenation via the derived free functions in this package.
//   - For comparable value types: pointwise equality and a symmetry check.
//   - Bridging between RowProvider[float64] and the float64 engine in
//     package matrix (ToDense / FromMatrix), which is how generic storage
//     reaches the factorization core in package lup.
//
// Grids are immutable from the outside: constructors deep-copy their input
// and accessors hand out copies, so no caller can alias internal storage.
package grid
