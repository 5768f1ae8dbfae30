// Package logging provides structured logging for pageflip using zerolog.
package logging

import (
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Format selects the log output encoding.
const (
	// FormatJSON emits one JSON object per line (the default).
	FormatJSON = "json"

	// FormatConsole emits human-readable, colorized output.
	FormatConsole = "console"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn, error.
	Level string

	// Format is FormatJSON or FormatConsole.
	Format string

	// Output receives the log stream; defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the configuration used when nothing is set:
// info-level JSON to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatJSON,
		Output: os.Stderr,
	}
}

// New builds the base logger from cfg. Unknown levels fall back to
// info rather than failing, matching the normalize-don't-error posture
// of the rest of the tool.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with a subsystem name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// NewRunID returns a ULID identifying one command invocation. It is
// attached to every log event of that run so interleaved runs sharing
// a log file can be told apart.
func NewRunID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // IDs, not secrets.
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
