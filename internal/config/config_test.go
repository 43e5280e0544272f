package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
precision: 2
steps: [point, collection]
extra:
  - name: triangle
    wkt: POLYGON ((0 0, 1 0, 1 1, 0 0))
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, []string{"point", "collection"}, cfg.Steps)
	require.Len(t, cfg.Extra, 1)
	assert.Equal(t, Extra{Name: "triangle", WKT: "POLYGON ((0 0, 1 0, 1 1, 0 0))"}, cfg.Extra[0])
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "steps: [point]\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPrecision, cfg.Precision)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	for _, body := range []string{
		"precision: [",
		"precision: -1",
		"precision: 30",
		"extra:\n  - wkt: POINT (1 2)\n",
		"extra:\n  - name: a\n",
		"extra:\n  - {name: a, wkt: POINT (1 2)}\n  - {name: a, wkt: POINT (3 4)}\n",
	} {
		_, err := Load(writeFile(t, body))
		assert.Error(t, err, body)
	}
}
