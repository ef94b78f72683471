package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclParams mirrors Params for gohcl; pointers distinguish absent attributes.
type hclParams struct {
	LogLevel      *int  `hcl:"log_level,optional"`
	UsePseudoRand *bool `hcl:"use_pseudorand,optional"`
}

// Load reads Params from path, choosing the decoder by file extension.
func Load(path string) (Params, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".hcl" {
		return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if ext == ".hcl" {
		return ParseHCL(data, path)
	}

	return ParseYAML(data)
}

// ParseYAML decodes a YAML document over Default().
func ParseYAML(data []byte) (Params, error) {
	p := Default()
	if err := yaml.UnmarshalWithOptions(data, &p, yaml.DisallowUnknownField()); err != nil {
		return Params{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}

	return p, nil
}

// ParseHCL decodes an HCL document over Default(). filename is used only in
// diagnostics.
func ParseHCL(data []byte, filename string) (Params, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Params{}, fmt.Errorf("%w: hcl: %v", ErrDecode, diags)
	}

	var raw hclParams
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return Params{}, fmt.Errorf("%w: hcl: %v", ErrDecode, diags)
	}

	p := Default()
	if raw.LogLevel != nil {
		p.LogLevel = *raw.LogLevel
	}
	if raw.UsePseudoRand != nil {
		p.UsePseudoRand = *raw.UsePseudoRand
	}

	return p, nil
}
