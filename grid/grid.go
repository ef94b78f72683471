package grid

import (
	"fmt"
	"math"
	"strings"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, i1, i2 int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, i1, i2, err)
}

// flatErrorf wraps an underlying error with flat-accessor context.
func flatErrorf(method string, i int, err error) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, i, err)
}

// New creates a grid of n1×n2 elements, each set to T's zero value.
// Under WidthHeight, n1 is the width (columns) and n2 the height (rows).
// Stage 1 (Validate): order is known, n1 and n2 are non-negative and n1*n2 fits in an int.
// Stage 2 (Normalize): swap n1/n2 for WidthHeight.
// Stage 3 (Prepare): allocate the flat backing slice.
// Complexity: O(n1*n2) time and memory.
func New[T any](n1, n2 int, order Order) (*Grid[T], error) {
	return newGrid[T](n1, n2, order)
}

// NewFilled creates a grid of n1×n2 elements, each a copy of val.
// Dimension handling is identical to New.
// Complexity: O(n1*n2) time and memory.
func NewFilled[T any](n1, n2 int, order Order, val T) (*Grid[T], error) {
	// Allocate with zero values
	g, err := newGrid[T](n1, n2, order)
	if err != nil {
		return nil, err
	}
	// Overwrite every slot
	g.Fill(val)

	return g, nil
}

// newGrid validates inputs and allocates a zero-filled grid.
func newGrid[T any](n1, n2 int, order Order) (*Grid[T], error) {
	// Validate convention
	if !order.valid() {
		return nil, fmt.Errorf("grid: order %d: %w", int(order), ErrBadOrder)
	}
	// Validate signs
	if n1 < 0 || n2 < 0 {
		return nil, fmt.Errorf("grid: shape (%d,%d): %w", n1, n2, ErrBadShape)
	}
	// Reject shapes whose element count overflows int
	if n1 != 0 && n2 > math.MaxInt/n1 {
		return nil, fmt.Errorf("grid: shape (%d,%d) overflows: %w", n1, n2, ErrBadShape)
	}

	g := &Grid[T]{order: order}
	n1, n2 = g.reorder(n1, n2) // dimensions follow the same swap rule as indices
	g.rows = n1                 // internal row count
	g.cols = n2                 // internal column count
	g.data = make([]T, n1*n2)   // flat row-major storage

	return g, nil
}

// reorder swaps the two arguments iff the grid uses WidthHeight.
// Complexity: O(1).
func (g *Grid[T]) reorder(i1, i2 int) (int, int) {
	if g.order == WidthHeight {
		return i2, i1 // (x, y) -> (row, col)
	}

	return i1, i2
}

// Order returns the index convention fixed at construction.
func (g *Grid[T]) Order() Order { return g.order }

// Rows returns the number of internal rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of internal columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.cols }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.rows }

// Size returns the total number of elements, Rows()*Cols().
func (g *Grid[T]) Size() int { return len(g.data) }

// Index maps (i1, i2), read under the grid's convention, to its flat offset.
// Stage 1 (Normalize): swap for WidthHeight.
// Stage 2 (Validate): 0 ≤ row < Rows(), 0 ≤ col < Cols().
// Stage 3 (Execute): return row*Cols() + col.
// Complexity: O(1).
func (g *Grid[T]) Index(i1, i2 int) (int, error) {
	return g.indexOf("Index", i1, i2)
}

// indexOf is Index with the caller's method name for error context.
func (g *Grid[T]) indexOf(method string, i1, i2 int) (int, error) {
	// Normalize to internal (row, col)
	row, col := g.reorder(i1, i2)
	// Validate row index
	if row < 0 || row >= g.rows {
		return 0, gridErrorf(method, i1, i2, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= g.cols {
		return 0, gridErrorf(method, i1, i2, ErrOutOfRange)
	}

	// Compute flat offset
	return row*g.cols + col, nil
}

// Get returns the element at (i1, i2).
// Complexity: O(1).
func (g *Grid[T]) Get(i1, i2 int) (T, error) {
	// Compute flat index or error
	idx, err := g.indexOf("Get", i1, i2)
	if err != nil {
		var zero T
		return zero, err
	}

	// Return stored value
	return g.data[idx], nil
}

// Set assigns v at (i1, i2).
// Complexity: O(1).
func (g *Grid[T]) Set(i1, i2 int, v T) error {
	// Compute flat index or error
	idx, err := g.indexOf("Set", i1, i2)
	if err != nil {
		return err
	}
	// Assign value
	g.data[idx] = v

	return nil
}

// Ref returns a pointer to the element at (i1, i2). The pointer aliases the
// grid's storage and stays valid for the grid's lifetime.
// Complexity: O(1).
func (g *Grid[T]) Ref(i1, i2 int) (*T, error) {
	// Compute flat index or error
	idx, err := g.indexOf("Ref", i1, i2)
	if err != nil {
		return nil, err
	}

	// Hand out the live slot
	return &g.data[idx], nil
}

// checkFlat validates a flat index against Size().
func (g *Grid[T]) checkFlat(method string, i int) error {
	if i < 0 || i >= len(g.data) {
		return flatErrorf(method, i, ErrOutOfRange)
	}

	return nil
}

// GetFlat returns the i-th element of the row-major backing storage,
// regardless of the grid's convention.
// Complexity: O(1).
func (g *Grid[T]) GetFlat(i int) (T, error) {
	// Validate flat index
	if err := g.checkFlat("GetFlat", i); err != nil {
		var zero T
		return zero, err
	}

	return g.data[i], nil
}

// SetFlat assigns v to the i-th element of the backing storage.
// Complexity: O(1).
func (g *Grid[T]) SetFlat(i int, v T) error {
	// Validate flat index
	if err := g.checkFlat("SetFlat", i); err != nil {
		return err
	}
	g.data[i] = v

	return nil
}

// RefFlat returns a pointer to the i-th element of the backing storage.
// Complexity: O(1).
func (g *Grid[T]) RefFlat(i int) (*T, error) {
	// Validate flat index
	if err := g.checkFlat("RefFlat", i); err != nil {
		return nil, err
	}

	return &g.data[i], nil
}

// Raw returns the backing slice itself, in row-major order (len == Size()).
// Writes through it are visible to the grid. No index normalization or
// validation happens beyond Go's own slice bounds checks.
func (g *Grid[T]) Raw() []T {
	return g.data
}

// Fill sets every element to v.
// Complexity: O(rows*cols).
func (g *Grid[T]) Fill(v T) {
	for i := range g.data { // storage order
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid with the same order and shape.
// Elements are copied by assignment, so pointer-like T values are shared.
// Complexity: O(rows*cols) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	// Allocate new slice for data copy
	copyData := make([]T, len(g.data))
	// Copy all elements into new slice
	copy(copyData, g.data)

	return &Grid[T]{order: g.order, rows: g.rows, cols: g.cols, data: copyData}
}

// Each calls fn for every element in storage order. The indices passed to fn
// follow the grid's convention, so g.Get(i1, i2) would return v.
// Complexity: O(rows*cols).
func (g *Grid[T]) Each(fn func(i1, i2 int, v T)) {
	var r, c int
	for r = 0; r < g.rows; r++ { // iterate over internal rows
		for c = 0; c < g.cols; c++ { // iterate over internal columns
			i1, i2 := g.reorder(r, c) // back to caller's convention
			fn(i1, i2, g.data[r*g.cols+c])
		}
	}
}

// String renders the grid one internal row per line: elements formatted with
// fmt.Sprint, separated by ", ", each line terminated by ";\n".
// Complexity: O(rows*cols).
func (g *Grid[T]) String() string {
	var sb strings.Builder
	var r, c int
	for r = 0; r < g.rows; r++ { // iterate over rows
		for c = 0; c < g.cols; c++ { // iterate over columns
			if c > 0 {
				sb.WriteString(", ") // separate values with comma
			}
			fmt.Fprint(&sb, g.data[r*g.cols+c])
		}
		sb.WriteString(";\n") // close row
	}

	return sb.String()
}
