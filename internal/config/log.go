package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig holds settings for diagnostic logging.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled.
	Level string

	// JSON selects structured JSON lines instead of the console format.
	JSON bool

	// Writer receives log output; stderr by default.
	Writer io.Writer
}

// NewLogConfig creates a LogConfig logging info and above to stderr.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: zerolog.InfoLevel.String(), Writer: os.Stderr}
}

// Validate reports an unknown level name.
func (c *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return invalid("log level %q", c.Level)
	}
	return nil
}

// Logger builds the logger described by c.
func (c *LogConfig) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	if !c.JSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
