// Package config holds the configuration of the perft command: which
// position to start from, how deep to search, how to parallelise and
// where output and logs go.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all configuration options for a perft run.
type Config struct {
	Perft  *PerftConfig
	Log    *LogConfig
	Output *OutputConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Perft:  NewPerftConfig(),
		Log:    NewLogConfig(),
		Output: NewOutputConfig(),
	}
}

// Validate checks every sub-configuration and returns the first problem,
// wrapped with ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// Writer receives node counts and the final position.
	Writer io.Writer

	// ShowFEN prints the position reached after replaying Moves.
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig writing to stdout.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Writer: os.Stdout, ShowFEN: true}
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidConfig, format, args...)
}
