// Package game runs a chess session: one board, whose turn it is, undo
// history and the move log.
package game

import (
	"context"
	"fmt"

	"github.com/lgbarn/termchess-go/internal/bot"
	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// snapshot is the state restored by Undo.
type snapshot struct {
	board  chess.BoardState
	turn   chess.Colour
	status engine.GameStatus
}

// Game is a single chess session. It is not safe for concurrent use.
type Game struct {
	cfg     *config.Config
	board   *chess.Board
	turn    chess.Colour
	status  engine.GameStatus
	history []snapshot
}

// Result is a committed move together with the status of the side now to move.
type Result struct {
	engine.MoveResult
	From   chess.Coord
	To     chess.Coord
	Status engine.GameStatus
}

// New creates a game at the configured start position.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{cfg: cfg}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset returns to the start position and clears the history.
func (g *Game) Reset() error {
	board, turn := engine.NewInitialBoard(), chess.White
	if g.cfg.StartFEN != "" {
		var err error
		board, turn, err = engine.NewBoardFromFEN(g.cfg.StartFEN)
		if err != nil {
			return err
		}
	}

	g.board = board
	g.turn = turn
	g.history = g.history[:0]
	g.status = engine.Status(board, turn)
	g.cfg.Logf(config.Verbose, "new game, %s to move\n", turn)
	return nil
}

// Board returns the session's board. Callers must not modify it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// Status returns the status of the side to move.
func (g *Game) Status() engine.GameStatus {
	return g.status
}

// Over reports whether the side to move is checkmated or stalemated.
func (g *Game) Over() bool {
	return g.status != engine.Ongoing
}

// Winner returns the side that delivered checkmate, or NoColour.
func (g *Game) Winner() chess.Colour {
	if g.status != engine.Checkmate {
		return chess.NoColour
	}
	return g.turn.Opposite()
}

// Move plays from -> to for colour. Squares are algebraic, e.g. "e2".
func (g *Game) Move(colour chess.Colour, from, to string, promote engine.PromotionFunc) (Result, error) {
	src, err := chess.ParseCoord(from)
	if err != nil {
		return Result{}, err
	}
	dst, err := chess.ParseCoord(to)
	if err != nil {
		return Result{}, err
	}
	return g.play(colour, src, dst, promote)
}

func (g *Game) play(colour chess.Colour, from, to chess.Coord, promote engine.PromotionFunc) (Result, error) {
	if err := g.checkTurn(colour, from, to); err != nil {
		g.cfg.Logf(config.Verbose, "rejected: %v\n", err)
		return Result{}, err
	}

	before := snapshot{board: g.board.SaveState(), turn: g.turn, status: g.status}
	moved, err := engine.MovePieceFromTo(g.board, from, to, promote)
	if err != nil {
		g.cfg.Logf(config.Verbose, "rejected: %v\n", err)
		return Result{}, err
	}

	g.history = append(g.history, before)
	g.turn = colour.Opposite()
	g.status = engine.Status(g.board, g.turn)

	result := Result{MoveResult: moved, From: from, To: to, Status: g.status}
	g.logMove(colour, result)
	return result, nil
}

// checkTurn rejects moves out of turn, after the game ended, or of the
// opponent's pieces.
func (g *Game) checkTurn(colour chess.Colour, from, to chess.Coord) error {
	piece, _ := g.board.Get(from)
	reject := func(reason string) error {
		moveErr := &errors.MoveError{Err: errors.ErrIllegalMove, From: from.String(), To: to.String(), Reason: reason}
		if !piece.IsEmpty() {
			moveErr.Piece = piece.String()
		}
		return moveErr
	}

	switch {
	case g.Over():
		return reject("game over")
	case colour != g.turn:
		return reject("wrong turn")
	case !piece.IsEmpty() && piece.Colour != colour:
		return reject("not your piece")
	}
	return nil
}

func (g *Game) logMove(colour chess.Colour, r Result) {
	line := fmt.Sprintf("%s moved from %s to %s", r.Piece, r.From, r.To)
	switch {
	case r.Castled:
		line += " (castled)"
	case r.Promoted != chess.NoPiece:
		line += fmt.Sprintf(" (promoted to %s)", r.Promoted)
	}
	if r.Captured != nil {
		line += fmt.Sprintf(", captured %s", r.Captured)
	}
	g.cfg.Logf(config.Moves, "%s\n", line)

	switch r.Status {
	case engine.Checkmate:
		g.cfg.Logf(config.Moves, "checkmate, %s wins\n", colour)
	case engine.Stalemate:
		g.cfg.Logf(config.Moves, "stalemate, draw\n")
	}
}

// PlayBot asks b for a move for the side to move and plays it. Bot pawns
// always promote to a queen.
func (g *Game) PlayBot(ctx context.Context, b bot.Bot) (Result, error) {
	if g.Over() {
		return Result{}, errors.ErrNoLegalMoves
	}
	g.cfg.Logf(config.Verbose, "bot thinking for %s\n", g.turn)

	from, to, err := b.NextMove(ctx, g.board, g.turn)
	if err != nil {
		return Result{}, err
	}
	return g.play(g.turn, from, to, nil)
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Reason: "nothing to undo"}
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.board.RestoreState(last.board)
	g.turn = last.turn
	g.status = last.status
	g.cfg.Logf(config.Moves, "undo, %s to move\n", g.turn)
	return nil
}

// Possible returns the legal and illegal destinations of the piece on square.
func (g *Game) Possible(square string) (piece chess.Piece, legal, illegal []string, err error) {
	pos, err := chess.ParseCoord(square)
	if err != nil {
		return chess.Piece{}, nil, nil, err
	}
	piece, ok := g.board.Get(pos)
	if !ok {
		return chess.Piece{}, nil, nil, &errors.MoveError{Err: errors.ErrIllegalMove, From: square, Reason: "no piece at source"}
	}

	l, il := engine.PossibleMoves(g.board, pos)
	return piece, squareNames(l), squareNames(il), nil
}

// Captured returns the captured pieces in capture order.
func (g *Game) Captured() []chess.Piece {
	return append([]chess.Piece(nil), g.board.Captured...)
}

// FEN returns the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.turn)
}

func squareNames(coords []chess.Coord) []string {
	names := make([]string, 0, len(coords))
	for _, c := range coords {
		names = append(names, c.String())
	}
	return names
}
