// Package simkit collects small building blocks shared by simulation code.
//
// Subpackages:
//
//	grid/     Grid[T], a fixed-size 2D container with (row, col) or
//	          (width, height) addressing over one row-major slice
//	rng/      Source, a seeded pseudo-random engine with a reproducible mode
//	          and a process-wide Shared instance
//	console/  threshold-filtered message output, and Str for rendering values
//	config/   Params (log threshold, fixed-seed flag) loaded from YAML or HCL
//
// The packages do not depend on each other; examples/bootstrap.go shows how a
// program wires Params into the logger and the random source.
//
//	go get github.com/katalvlaran/simkit
package simkit
