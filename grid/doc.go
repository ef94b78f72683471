// Package grid provides Grid, a generic fixed-size 2D container stored in a
// single flat, row-major slice and addressed under one of two index-naming
// conventions.
//
// What:
//
//   - Grid[T] holds Rows()×Cols() values of any type T.
//   - RowsCols: the two arguments of New/Get/Set mean (row, col).
//   - WidthHeight: the two arguments mean (x, y) = (col, row), as in raster images.
//   - The convention is fixed at construction; every two-argument method applies
//     the same swap rule, so Set(i1, i2, v) followed by Get(i1, i2) returns v.
//   - The flat accessors (GetFlat, SetFlat, RefFlat) ignore the convention and
//     index the backing slice directly.
//
// Why:
//
//   - Matrix-style callers think in rows and columns, raster-style callers in
//     width and height; one container serves both without manual transposition.
//
// Complexity:
//
//   - New/NewFilled/Clone/Fill: O(rows×cols) time and memory.
//   - Get/Set/Ref/Index and the flat variants: O(1).
//   - String: O(rows×cols).
//
// Errors:
//
//   - ErrBadShape: a negative dimension was passed to a constructor.
//   - ErrBadOrder: the Order value is not RowsCols or WidthHeight.
//   - ErrOutOfRange: an index is outside the grid.
//
// Raw returns the backing slice itself for hot loops that already know their
// indices are valid; it is the only unchecked path.
//
// Grid does no locking. Concurrent mutation must be synchronized by the caller.
package grid
