package config

import (
	"runtime"
	"time"

	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Depth limits. Node counts grow roughly thirty-fold per ply, so anything
// past MaxDepth will not finish on a reference engine.
const (
	DefaultDepth = 1
	MaxDepth     = 10
)

// StartFEN is the standard initial position.
const StartFEN = notation.InitialFEN

// PerftConfig holds settings for the move-tree count.
type PerftConfig struct {
	// FEN is the starting position.
	FEN string

	// Moves are long-algebraic moves replayed from FEN before counting.
	Moves []string

	// Depth is the number of plies to expand.
	Depth int

	// Divide reports a subtotal for every root move.
	Divide bool

	// Workers is the number of goroutines sharing the root moves.
	Workers int

	// Timeout aborts the count after this long; zero means no limit.
	Timeout time.Duration
}

// NewPerftConfig creates a PerftConfig with sensible defaults.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		FEN:     StartFEN,
		Depth:   DefaultDepth,
		Workers: runtime.NumCPU(),
	}
}

// Validate reports out-of-range settings.
func (c *PerftConfig) Validate() error {
	if c.FEN == "" {
		return invalid("empty FEN")
	}
	if c.Depth < 0 || c.Depth > MaxDepth {
		return invalid("depth %d out of range [0, %d]", c.Depth, MaxDepth)
	}
	if c.Workers < 1 {
		return invalid("workers must be at least 1, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return invalid("negative timeout %v", c.Timeout)
	}
	return nil
}
