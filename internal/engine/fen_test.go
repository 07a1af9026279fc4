package engine

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	chesserrors "github.com/lgbarn/termchess-go/internal/errors"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1",
		"4k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, toMove := mustFEN(t, fen)
			testutil.AssertEqual(t, BoardToFEN(board, toMove), fen)
		})
	}
}

func TestNewBoardFromFENMatchesReset(t *testing.T) {
	fromFEN, toMove := mustFEN(t, InitialFEN)
	testutil.AssertEqual(t, toMove, chess.White)
	testutil.AssertEqual(t, BoardToFEN(NewInitialBoard(), chess.White), InitialFEN)

	reset := NewInitialBoard()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		testutil.AssertEqual(t, len(fromFEN.Pieces(colour)), len(reset.Pieces(colour)))
		for _, p := range reset.Pieces(colour) {
			got, ok := fromFEN.Get(p.Pos)
			if !ok || got.Kind != p.Kind || got.Colour != p.Colour {
				t.Errorf("%s = %v; want %v", p.Pos, got, p)
			}
		}
	}
}

func TestNewBoardFromFENSideToMove(t *testing.T) {
	_, toMove := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	testutil.AssertEqual(t, toMove, chess.Black)

	_, toMove = mustFEN(t, "4k3/8/8/8/8/8/8/4K3")
	testutil.AssertEqual(t, toMove, chess.White, "missing side to move defaults to white")
}

func TestNewBoardFromFENInvalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank by digits", "44p/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "4x3/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w X - 0 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, toMove, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
			if board != nil {
				t.Error("board != nil on error")
			}
			testutil.AssertEqual(t, toMove, chess.NoColour)
		})
	}
}

func TestNewBoardFromFENMovedFlags(t *testing.T) {
	board, _ := mustFEN(t, "r3k2r/4p3/8/4P3/8/8/3P4/R3K2R w Kq - 0 1")

	tests := []struct {
		square string
		moved  bool
	}{
		{"e1", false}, // K right
		{"h1", false},
		{"a1", true},
		{"e8", false}, // q right
		{"a8", false},
		{"h8", true},
		{"d2", false}, // pawn on its start row
		{"e7", false},
		{"e5", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.square, func(t *testing.T) {
			p, ok := pieceAt(t, board, tt.square)
			if !ok {
				t.Fatalf("%s empty", tt.square)
			}
			testutil.AssertEqual(t, p.HasMoved, tt.moved)
		})
	}

	testutil.AssertEqual(t, BoardToFEN(board, chess.White), "r3k2r/4p3/8/4P3/8/8/3P4/R3K2R w Kq - 0 1")
}

func TestPieceToFENChar(t *testing.T) {
	testutil.AssertEqual(t, PieceToFENChar(chess.Piece{Kind: chess.Knight, Colour: chess.White}), byte('N'))
	testutil.AssertEqual(t, PieceToFENChar(chess.Piece{Kind: chess.Queen, Colour: chess.Black}), byte('q'))
	testutil.AssertEqual(t, ConvertFENCharToPiece('k'), chess.King)
	testutil.AssertEqual(t, ConvertFENCharToPiece('x'), chess.NoPiece)
}
