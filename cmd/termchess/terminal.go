package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/termchess-go/internal/bot"
	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/output"
)

const helpMessage = `Commands to use game
  > [player colour tag] [srcPos] [destPos]
                - player moves piece. eg.
        > w e2 e4
        > b e7 e5
  > m [piecePos]  - give possible moves
  > d             - show captured pieces
  > u             - undo last move
  > r             - reset the game
  > f             - show position as FEN
  > h             - help
  > q             - quit`

// terminal is the interactive command loop.
type terminal struct {
	cfg   *config.Config
	game  *game.Game
	bot   bot.Bot // nil for two human players
	in    *bufio.Scanner
	out   io.Writer
	panel *output.LogPanel
}

func newTerminal(cfg *config.Config, g *game.Game, b bot.Bot, in io.Reader, out io.Writer, panel *output.LogPanel) *terminal {
	return &terminal{
		cfg:   cfg,
		game:  g,
		bot:   b,
		in:    bufio.NewScanner(in),
		out:   out,
		panel: panel,
	}
}

// run reads commands until the game ends, the player quits or input runs out.
func (t *terminal) run(ctx context.Context) error {
	t.panel.Add(helpMessage)

	for {
		t.draw()

		if t.game.Over() {
			t.announce()
			t.draw()
			return nil
		}

		if t.botToMove() {
			fmt.Fprintln(t.out, "Bot thinking...")
			if _, err := t.game.PlayBot(ctx, t.bot); err != nil {
				return err
			}
			continue
		}

		if !t.in.Scan() {
			return t.in.Err()
		}
		line := t.in.Text()
		t.panel.Add("\n> " + line)

		quit, err := t.execute(line)
		if err != nil {
			t.panel.Add(output.Red(err.Error()))
		}
		if quit {
			t.panel.Add(output.Yellow("quitting game"))
			t.draw()
			return nil
		}
	}
}

func (t *terminal) botToMove() bool {
	return t.bot != nil && t.game.Turn() == t.cfg.Bot.Colour
}

// draw clears the screen and prints the board with the log beside it.
func (t *terminal) draw() {
	fmt.Fprint(t.out, output.ClearScreen)
	fmt.Fprintln(t.out, output.Merge(output.BoardString(t.game.Board()), t.panel.Lines()))
	if !t.game.Over() {
		fmt.Fprintf(t.out, "%s's turn\n> ", t.game.Turn())
	}
}

// announce reports the end of the game.
func (t *terminal) announce() {
	if winner := t.game.Winner(); winner != chess.NoColour {
		t.panel.Add(output.Green(fmt.Sprintf(" %s team player won", winner)))
		return
	}
	t.panel.Add(output.Yellow(" stalemate, the game is drawn"))
}

// execute runs one command line. It reports whether the player quit.
func (t *terminal) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]
	usageErr := &errors.CommandError{Err: errors.ErrUnknownCommand, Line: line, Command: cmd}

	switch cmd {
	case "w", "b":
		if len(args) != 2 {
			return false, usageErr
		}
		return false, t.move(cmd, args[0], args[1])
	case "m":
		if len(args) != 1 {
			return false, usageErr
		}
		return false, t.possible(args[0])
	case "d":
		t.panel.Add(output.CapturedString(t.game.Captured()))
	case "u":
		return false, t.undo()
	case "r":
		if err := t.game.Reset(); err != nil {
			return false, err
		}
		t.panel.Add(output.Yellow("game reset"))
	case "f":
		t.panel.Add(t.game.FEN())
	case "h":
		t.panel.Add(helpMessage)
	case "q":
		return true, nil
	default:
		return false, &errors.CommandError{Err: errors.ErrUnknownCommand, Line: line}
	}
	return false, nil
}

func (t *terminal) move(tag, from, to string) error {
	colour := chess.White
	if tag == "b" {
		colour = chess.Black
	}
	if t.bot != nil && colour == t.cfg.Bot.Colour {
		return &errors.MoveError{Err: errors.ErrIllegalMove, From: from, To: to, Reason: "the bot plays " + colour.String()}
	}

	_, err := t.game.Move(colour, from, to, t.promote)
	return err
}

func (t *terminal) possible(square string) error {
	piece, legal, illegal, err := t.game.Possible(square)
	if err != nil {
		return err
	}
	t.panel.Add(fmt.Sprintf("%s ~ legal:%v\n   illegal:%v", piece, legal, illegal))
	return nil
}

// undo takes back one move, or two against the bot so the player is to
// move again.
func (t *terminal) undo() error {
	if err := t.game.Undo(); err != nil {
		return err
	}
	if t.botToMove() {
		if err := t.game.Undo(); err != nil {
			t.cfg.Logf(config.Verbose, "bot replays: %v\n", err)
		}
	}
	return nil
}

// promote asks the player for a promotion piece. An empty answer or the
// end of input discards the move.
func (t *terminal) promote(colour chess.Colour, at chess.Coord) (chess.PieceKind, bool) {
	for {
		fmt.Fprintf(t.out, "Promote %s pawn on %s to (q/r/b/n, empty to cancel): ", colour, at)
		if !t.in.Scan() {
			return chess.NoPiece, false
		}
		answer := strings.TrimSpace(t.in.Text())
		if answer == "" {
			return chess.NoPiece, false
		}
		if kind, ok := chess.ParsePieceKind(answer); ok && kind.IsPromotionChoice() {
			return kind, true
		}
		fmt.Fprintln(t.out, output.Red("choose one of q, r, b or n"))
	}
}
