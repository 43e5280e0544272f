package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriterJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Logger{Level: "warn", Format: "json"}.SetupWriter(&buf)

	log.Info().Msg("dropped")
	log.Warn().Str("step", "point").Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"step":"point"`)
	assert.Contains(t, out, `"message":"kept"`)
}

func TestSetupFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	path := filepath.Join(t.TempDir(), "run.log")
	closer, err := Logger{Level: "debug", Format: "json", File: path}.Setup()
	require.NoError(t, err)
	log.Debug().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	Logger{Level: "loud", Format: "json"}.SetupWriter(&buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
