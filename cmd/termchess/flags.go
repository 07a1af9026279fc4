// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/errors"
)

var (
	// Players
	twoPlayers = flag.Bool("p", false, "Two human players, no bot")
	botColour  = flag.String("bot-colour", "black", "Side the bot plays: white or black")
	thinkDelay = flag.Duration("delay", time.Second, "Bot think delay")
	botSeed    = flag.Int64("seed", 0, "Bot random seed (0 = from clock)")

	// Position
	startFEN = flag.String("fen", "", "Start position as FEN (default: standard initial position)")

	// Logging
	logFile   = flag.String("l", "", "Also write the move log to this file")
	appendLog = flag.String("la", "", "Append the move log to this file")
	verbosity = flag.Int("v", config.Moves, "Verbosity: 0=silent, 1=moves, 2=commentary")

	// Perft mode
	perftDepth = flag.Int("perft", 0, "Print the perft node count at this depth and exit")
	workers    = flag.Int("workers", runtime.NumCPU(), "Goroutines used by -perft")
	jsonOutput = flag.Bool("J", false, "Write the -perft report as JSON")
	outputFile = flag.String("o", "", "Write the -perft report to this file (default: stdout)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyBotFlags(cfg); err != nil {
		return err
	}
	cfg.StartFEN = *startFEN
	cfg.Verbosity = *verbosity
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *workers
	return nil
}

// applyBotFlags configures the bot opponent.
func applyBotFlags(cfg *config.Config) error {
	colour, err := parseColour(*botColour)
	if err != nil {
		return err
	}
	cfg.Bot.Enabled = !*twoPlayers
	cfg.Bot.Colour = colour
	cfg.Bot.ThinkDelay = *thinkDelay
	cfg.Bot.Seed = *botSeed
	return nil
}

// parseColour accepts w, b, white or black in any case.
func parseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	}
	return chess.NoColour, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidConfig)
}
