// SPDX-License-Identifier: MIT

// Package grid: domain types. Errors live in errors.go, behavior in grid.go.
package grid

// Order selects how the two index (or dimension) arguments are interpreted.
type Order int

const (
	// RowsCols interprets (i1, i2) as (row, column).
	RowsCols Order = iota
	// WidthHeight interprets (i1, i2) as (x, y), i.e. (column, row).
	WidthHeight
)

// String returns the conventional name of the order.
func (o Order) String() string {
	switch o {
	case RowsCols:
		return "ROWS_COLS"
	case WidthHeight:
		return "WIDTH_HEIGHT"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether o is a declared convention.
func (o Order) valid() bool {
	return o == RowsCols || o == WidthHeight
}

// Grid is a fixed-size row-major 2D container of T values.
// rows and cols are the internal (post-swap) dimensions and never change;
// data always holds rows*cols elements.
type Grid[T any] struct {
	order Order
	rows  int // internal row count (== Height)
	cols  int // internal column count (== Width)
	data  []T // flat backing storage, length == rows*cols
}
