// Package logger configures the global zerolog logger from command line options.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds the logging options; embed it in a go-flags options struct.
type Logger struct {
	Level  string `long:"log-level"  env:"LOG_LEVEL"  description:"Log level"                            default:"info" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"disabled"`
	Format string `long:"log-format" env:"LOG_FORMAT" description:"Log format"                           default:"pretty" choice:"pretty" choice:"json"`
	File   string `long:"log-file"   env:"LOG_FILE"   description:"Write logs to this file instead of stderr"`
}

// Setup installs the global logger writing to stderr or the configured file.
// The returned closer releases the file, if any.
func (l Logger) Setup() (io.Closer, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out, closer = f, f
	}
	l.SetupWriter(out)
	return closer, nil
}

// SetupWriter installs the global logger writing to w.
func (l Logger) SetupWriter(w io.Writer) {
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if l.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
}

// Discard silences the global logger, e.g. while a full screen UI owns the terminal.
func Discard() {
	log.Logger = zerolog.Nop()
}
