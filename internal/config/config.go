// Package config provides configuration for a termchess session.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// Verbosity levels.
const (
	Silent  = 0 // nothing
	Moves   = 1 // moves and outcomes
	Verbose = 2 // running commentary, including bot thinking and rejected moves
)

// Config holds all program configuration.
type Config struct {
	// Bot opponent settings
	Bot *BotConfig

	// Perft mode settings
	Perft *PerftConfig

	// StartFEN is the position a new or reset game starts from.
	// Empty means the standard initial position.
	StartFEN string

	Verbosity int // 0=nothing, 1=moves, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Bot:        NewBotConfig(),
		Perft:      NewPerftConfig(),
		Verbosity:  Moves,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the whole configuration. Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d outside %d..%d: %w", c.Verbosity, Silent, Verbose, errors.ErrInvalidConfig)
	}
	if err := c.Bot.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// BotConfig holds settings for the computer opponent.
type BotConfig struct {
	// Enabled plays one side with the bot; false means two human players
	Enabled bool

	// Colour is the side the bot plays
	Colour chess.Colour

	// ThinkDelay is how long the bot waits before answering
	ThinkDelay time.Duration

	// Seed seeds the bot's random source; 0 picks one from the clock
	Seed int64
}

// NewBotConfig creates a BotConfig with default values.
func NewBotConfig() *BotConfig {
	return &BotConfig{
		Enabled:    true,
		Colour:     chess.Black,
		ThinkDelay: time.Second,
	}
}

// Validate checks that the bot configuration is valid.
func (b *BotConfig) Validate() error {
	if b.ThinkDelay < 0 {
		return fmt.Errorf("negative think delay %v: %w", b.ThinkDelay, errors.ErrInvalidConfig)
	}
	if b.Colour != chess.White && b.Colour != chess.Black {
		return fmt.Errorf("bot colour %v: %w", b.Colour, errors.ErrInvalidConfig)
	}
	return nil
}

// PerftConfig holds settings for perft mode.
type PerftConfig struct {
	// Depth in plies; 0 disables perft mode
	Depth int

	// Workers is the number of goroutines exploring root moves
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d, need at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
