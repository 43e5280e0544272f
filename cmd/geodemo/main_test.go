package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geowkt/internal/logger"
)

func quietOptions() Options {
	return Options{
		Logger:  logger.Logger{Level: "disabled", Format: "json"},
		NoColor: true,
	}
}

func TestRunDefaultSteps(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(quietOptions(), &out))

	s := out.String()
	assert.Contains(t, s, "step#1: POINT\tDimension=0")
	assert.Contains(t, s, "step#7: GEOMETRYCOLLECTION\tDimension=2")
	assert.Contains(t, s, "step#8: checking WKT representations")
	assert.Contains(t, s, "\nPOINT (1.5 2.75)\n")
	assert.Contains(t, s, "\nLINESTRING (1 1, 2 1, 2 2, 100 2, 100 100)\n")
}

func TestRunWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
precision: 1
steps: [multipoint]
extra:
  - name: triangle
    wkt: POLYGON ((0 0, 1 0, 1 1, 0 0))
`), 0o644))

	opts := quietOptions()
	opts.ConfigFile = path
	var out bytes.Buffer
	require.NoError(t, run(opts, &out))

	s := out.String()
	assert.Contains(t, s, "POINT 0/5 x=5.0 y=5.0")
	assert.Contains(t, s, "step#2: POLYGON\tDimension=2")
	assert.Contains(t, s, "\nPOLYGON ((0 0, 1 0, 1 1, 0 0))\n")
	assert.NotContains(t, s, "LINESTRING")
}

func TestRunNoPrintout(t *testing.T) {
	opts := quietOptions()
	opts.NoPrintout = true
	var out bytes.Buffer
	require.NoError(t, run(opts, &out))
	assert.NotContains(t, out.String(), "vertex")
}

func TestRunFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps: [point]
extra:
  - name: bad
    wkt: LINESTRING (1 1)
`), 0o644))

	opts := quietOptions()
	opts.ConfigFile = path
	var out bytes.Buffer
	err := run(opts, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 steps failed")
	assert.Contains(t, out.String(), "\nPOINT (1.5 2.75)\n", "other steps still print")

	opts.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")
	require.Error(t, run(opts, &out))

	opts = quietOptions()
	opts.ConfigFile = ""
	path = filepath.Join(t.TempDir(), "unknown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [circle]\n"), 0o644))
	opts.ConfigFile = path
	require.Error(t, run(opts, &out))
}
