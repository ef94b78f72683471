// SPDX-License-Identifier: MIT

// Package config: sentinel error set. Decoder diagnostics are wrapped under
// ErrDecode so callers can match with errors.Is.
package config

import "errors"

var (
	// ErrUnsupportedFormat indicates that the file extension is not .yaml, .yml or .hcl.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrDecode indicates a syntax or type error in a configuration document.
	ErrDecode = errors.New("config: decode failed")
)
