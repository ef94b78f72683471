// Package config_test validates YAML/HCL decoding, defaults and error sentinels.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/simkit/config"
	"github.com/stretchr/testify/require"
)

// TestDefault checks the documented defaults.
func TestDefault(t *testing.T) {
	p := config.Default()
	require.Equal(t, config.DefaultLogLevel, p.LogLevel)
	require.Equal(t, config.DefaultUsePseudoRand, p.UsePseudoRand)
}

// TestLoadFiles loads each testdata fixture.
func TestLoadFiles(t *testing.T) {
	cases := []struct {
		file string
		want config.Params
	}{
		{file: "params.yaml", want: config.Params{LogLevel: 3, UsePseudoRand: true}},
		{file: "params.hcl", want: config.Params{LogLevel: 2, UsePseudoRand: true}},
		{file: "partial.yml", want: config.Params{LogLevel: config.DefaultLogLevel, UsePseudoRand: true}},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			p, err := config.Load(filepath.Join("testdata", tc.file))
			require.NoError(t, err)
			require.Equal(t, tc.want, p)
		})
	}
}

// TestLoadUnsupportedExtension rejects unknown formats before touching the disk.
func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := config.Load("params.json")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load("params")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

// TestLoadMissingFile wraps the os error.
func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadUpperCaseExtension checks that extension matching ignores case.
func TestLoadUpperCaseExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PARAMS.YAML")
	require.NoError(t, os.WriteFile(path, []byte("log_level: 0\n"), 0o644))

	p, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0, p.LogLevel)
}

// TestParseYAMLErrors checks unknown keys and type mismatches.
func TestParseYAMLErrors(t *testing.T) {
	_, err := config.ParseYAML([]byte("log_level: 1\nverbose: true\n"))
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.ParseYAML([]byte("log_level: [1, 2]\n"))
	require.ErrorIs(t, err, config.ErrDecode)
}

// TestParseHCLDefaults checks that absent attributes keep defaults.
func TestParseHCLDefaults(t *testing.T) {
	p, err := config.ParseHCL([]byte("log_level = 4\n"), "inline.hcl")
	require.NoError(t, err)
	require.Equal(t, config.Params{LogLevel: 4, UsePseudoRand: config.DefaultUsePseudoRand}, p)

	p, err = config.ParseHCL(nil, "empty.hcl")
	require.NoError(t, err)
	require.Equal(t, config.Default(), p)
}

// TestParseHCLErrors checks syntax errors, unknown attributes and type mismatches.
func TestParseHCLErrors(t *testing.T) {
	_, err := config.ParseHCL([]byte("log_level = \n"), "broken.hcl")
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.ParseHCL([]byte("verbose = true\n"), "unknown.hcl")
	require.ErrorIs(t, err, config.ErrDecode)

	_, err = config.ParseHCL([]byte("use_pseudorand = \"maybe\"\n"), "type.hcl")
	require.ErrorIs(t, err, config.ErrDecode)
}
