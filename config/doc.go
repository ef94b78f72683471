// Package config loads Params, the run-wide settings read by the console
// logger and the random source.
//
// Params are read from YAML (goccy/go-yaml) or HCL (hashicorp/hcl/v2) files:
//
//	# params.yaml
//	log_level: 2
//	use_pseudorand: true
//
//	# params.hcl
//	log_level      = 2
//	use_pseudorand = true
//
// Keys that are absent keep their Default() values. Unknown YAML keys and
// unknown HCL attributes are rejected.
//
// Errors:
//
//   - ErrUnsupportedFormat: Load was given a path without a known extension.
//   - ErrDecode: the document is malformed or holds values of the wrong type.
package config
