package config

import (
	"io"
	"time"

	"github.com/lgbarn/termchess-go/internal/chess"
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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBot enables or disables the bot opponent.
func (b *ConfigBuilder) WithBot(enabled bool) *ConfigBuilder {
	b.cfg.Bot.Enabled = enabled
	return b
}

// WithBotColour sets the side the bot plays.
func (b *ConfigBuilder) WithBotColour(colour chess.Colour) *ConfigBuilder {
	b.cfg.Bot.Colour = colour
	return b
}

// WithThinkDelay sets how long the bot waits before moving.
func (b *ConfigBuilder) WithThinkDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Bot.ThinkDelay = d
	return b
}

// WithSeed fixes the bot's random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Bot.Seed = seed
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
