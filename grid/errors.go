// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// Public accessors return these sentinels (possibly wrapped with call context);
// tests and callers match them via errors.Is. Accessors never panic on bad indices.
package grid

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is negative.
	// Zero-sized grids are valid.
	ErrBadShape = errors.New("grid: dimensions must be >= 0")

	// ErrBadOrder is returned when an Order value is not one of the declared conventions.
	ErrBadOrder = errors.New("grid: unknown index order")

	// ErrOutOfRange indicates that an index (two-argument or flat) is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
)
