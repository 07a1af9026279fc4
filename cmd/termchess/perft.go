package main

import (
	"context"
	"time"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/output"
)

// runPerft counts the leaf nodes below the start position and writes the
// report to w.
func runPerft(ctx context.Context, cfg *config.Config, w output.ReportWriter) error {
	board, toMove := engine.NewInitialBoard(), chess.White
	if cfg.StartFEN != "" {
		var err error
		board, toMove, err = engine.NewBoardFromFEN(cfg.StartFEN)
		if err != nil {
			return err
		}
	}
	fen := engine.BoardToFEN(board, toMove)

	cfg.Logf(config.Verbose, "perft depth %d with %d workers: %s\n", cfg.Perft.Depth, cfg.Perft.Workers, fen)

	start := time.Now()
	nodes, divide, err := engine.ParallelPerft(ctx, board, toMove, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return err
	}

	report := &output.PerftReport{
		FEN:     fen,
		Depth:   cfg.Perft.Depth,
		Nodes:   nodes,
		Divide:  divide,
		Elapsed: time.Since(start),
	}
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}
