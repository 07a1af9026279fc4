package engine

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

// mustFEN loads a FEN position, failing the test on error.
func mustFEN(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board, toMove
}

// mustMove plays a move that the test expects to be legal.
func mustMove(t *testing.T, board *chess.Board, from, to string) MoveResult {
	t.Helper()
	result, err := MovePieceFromTo(board, testutil.MustCoord(t, from), testutil.MustCoord(t, to), nil)
	if err != nil {
		t.Fatalf("MovePieceFromTo(%s, %s) error: %v", from, to, err)
	}
	return result
}

// pieceAt returns the piece on an algebraic square.
func pieceAt(t *testing.T, board *chess.Board, square string) (chess.Piece, bool) {
	t.Helper()
	return board.Get(testutil.MustCoord(t, square))
}
