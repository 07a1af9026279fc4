package engine

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		square      string
		wantLegal   []string
		wantIllegal []string
	}{
		{
			name:        "king cannot stay on the checking rank",
			fen:         "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			square:      "e1",
			wantLegal:   []string{"d2", "e2", "f2"},
			wantIllegal: []string{"d1", "f1"},
		},
		{
			name:        "king escapes by capture",
			fen:         "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1",
			square:      "e1",
			wantLegal:   []string{"d2", "f1"},
			wantIllegal: []string{"d1", "e2", "f2"},
		},
		{
			name:        "pinned bishop has no legal move",
			fen:         "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			square:      "e2",
			wantLegal:   nil,
			wantIllegal: []string{"d1", "f1", "d3", "c4", "b5", "a6", "f3", "g4", "h5"},
		},
		{
			name:        "pinned rook may move along the pin",
			fen:         "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			square:      "e2",
			wantLegal:   []string{"e3", "e4", "e5", "e6", "e7"},
			wantIllegal: []string{"a2", "b2", "c2", "d2", "f2", "g2", "h2"},
		},
		{
			name:        "knight can only block the check",
			fen:         "4k3/8/8/8/8/8/1N6/r3K3 w - - 0 1",
			square:      "b2",
			wantLegal:   []string{"d1"},
			wantIllegal: []string{"a4", "c4", "d3"},
		},
		{
			name:        "empty square",
			fen:         InitialFEN,
			square:      "e4",
			wantLegal:   nil,
			wantIllegal: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, _ := mustFEN(t, tt.fen)
			legal, illegal := PossibleMoves(board, testutil.MustCoord(t, tt.square))
			testutil.AssertSquares(t, legal, tt.wantLegal, "legal")
			testutil.AssertSquares(t, illegal, tt.wantIllegal, "illegal")
		})
	}
}

func TestPossibleMovesLeavesBoardUntouched(t *testing.T) {
	board, _ := mustFEN(t, "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1")
	before := board.SaveState()
	PossibleMoves(board, testutil.MustCoord(t, "e1"))
	testutil.AssertEqual(t, board.SaveState(), before)
	testutil.AssertEqual(t, len(board.Captured), 0)
}

func TestAllLegalMovesInitial(t *testing.T) {
	board := NewInitialBoard()
	all := AllLegalMoves(board, chess.White)

	var sources []string
	total := 0
	for _, pm := range all {
		sources = append(sources, pm.Piece.Pos.String())
		total += len(pm.To)
	}

	// Row-major from rank 8 down: the pawns on rank 2 come before the knights.
	testutil.AssertEqual(t, sources, []string{"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2", "b1", "g1"})
	testutil.AssertEqual(t, total, 20)
}

func TestAllLegalMovesBlackOrder(t *testing.T) {
	board := NewInitialBoard()
	all := AllLegalMoves(board, chess.Black)
	if len(all) != 10 {
		t.Fatalf("len(AllLegalMoves(Black)) = %d, want 10", len(all))
	}
	testutil.AssertEqual(t, all[0].Piece.Pos.String(), "b8")
	testutil.AssertEqual(t, all[2].Piece.Pos.String(), "a7")
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, true},
		{"checkmated", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, false},
		{"stalemated", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false},
		{"lone king with room", "7k/8/8/8/8/8/8/K7 w - - 0 1", chess.White, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, _ := mustFEN(t, tt.fen)
			if got := HasLegalMoves(board, tt.colour); got != tt.want {
				t.Errorf("HasLegalMoves(%v) = %v, want %v", tt.colour, got, tt.want)
			}
			if got := len(AllLegalMoves(board, tt.colour)) > 0; got != tt.want {
				t.Errorf("len(AllLegalMoves(%v)) > 0 = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}
