// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", config.StartFEN, "Starting position in FEN")
	movesFlag = flag.String("moves", "", "Space-separated long-algebraic moves to play first (e.g. 'e2e4 e7e5')")

	// Search options
	depthFlag   = flag.Int("depth", config.DefaultDepth, "Number of plies to expand")
	divideFlag  = flag.Bool("divide", false, "Print the node count below each root move")
	workersFlag = flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	timeoutFlag = flag.Duration("timeout", 0, "Abort the count after this long (0 = no limit)")

	// Output and logging
	showFENFlag  = flag.Bool("show-fen", true, "Print the position reached before counting")
	logLevelFlag = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	jsonLogsFlag = flag.Bool("json", false, "Write logs as JSON instead of console text")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig turns the parsed flags into a validated Config.
func buildConfig() (*config.Config, error) {
	b := config.NewConfigBuilder().
		WithFEN(*fenFlag).
		WithMoves(splitMoves(*movesFlag)...).
		WithDepth(*depthFlag).
		WithDivide(*divideFlag).
		WithTimeout(*timeoutFlag).
		WithShowFEN(*showFENFlag).
		WithLogLevel(*logLevelFlag).
		WithJSONLogs(*jsonLogsFlag)

	if *workersFlag > 0 {
		b = b.WithWorkers(*workersFlag)
	}
	return b.Build()
}

// splitMoves accepts moves separated by spaces or commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}
