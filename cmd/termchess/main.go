// termchess is a terminal chess game against a random bot or a second player.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/termchess-go/internal/bot"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("termchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Perft.Depth > 0 {
		setupLogFile(cfg, os.Stderr)
		setupOutputFile(cfg)
		return runPerft(ctx, cfg, newReportWriter(cfg.OutputFile))
	}

	panel := output.NewLogPanel()
	setupLogFile(cfg, panel)

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	term := newTerminal(cfg, g, newBot(cfg), os.Stdin, os.Stdout, panel)
	return term.run(ctx)
}

// newBot returns the configured opponent, or nil for two human players.
func newBot(cfg *config.Config) bot.Bot {
	if !cfg.Bot.Enabled {
		return nil
	}
	opts := []bot.Option{bot.WithDelay(cfg.Bot.ThinkDelay)}
	if cfg.Bot.Seed != 0 {
		opts = append(opts, bot.WithSeed(cfg.Bot.Seed))
	}
	return bot.NewRandomBot(opts...)
}

// newReportWriter picks the perft report format from the flags.
func newReportWriter(w io.Writer) output.ReportWriter {
	if *jsonOutput {
		return output.NewJSONWriterSingle(w)
	}
	return output.NewTextWriter(w)
}

// setupLogFile sends the log to base and, if requested, a log file.
func setupLogFile(cfg *config.Config, base io.Writer) {
	cfg.LogFile = base

	var file *os.File
	var err error
	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	case *logFile != "":
		file, err = os.Create(*logFile)
	default:
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	cfg.LogFile = io.MultiWriter(base, file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: termchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s\n", helpMessage)
}
