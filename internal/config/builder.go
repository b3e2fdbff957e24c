package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Perft.FEN = fen
	return b
}

// WithMoves sets the moves replayed before counting.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Perft.Moves = append([]string(nil), moves...)
	return b
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-root-move subtotals.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithTimeout sets the overall time limit.
func (b *ConfigBuilder) WithTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Perft.Timeout = d
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithJSONLogs switches logging to JSON lines.
func (b *ConfigBuilder) WithJSONLogs(enabled bool) *ConfigBuilder {
	b.cfg.Log.JSON = enabled
	return b
}

// WithLogWriter sets the log destination.
func (b *ConfigBuilder) WithLogWriter(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Writer = w
	return b
}

// WithOutput sets the result destination.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithShowFEN controls printing of the replayed position.
func (b *ConfigBuilder) WithShowFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = enabled
	return b
}
