package engine

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "white pawn on start rank",
			fen:    InitialFEN,
			square: "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:   "black pawn on start rank",
			fen:    InitialFEN,
			square: "d7",
			want:   []string{"d6", "d5"},
		},
		{
			name:   "pawn double push blocked on far square",
			fen:    "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e3"},
		},
		{
			name:   "pawn blocked in front cannot jump",
			fen:    "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   nil,
		},
		{
			name:   "pawn off start rank single step only",
			fen:    "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1",
			square: "e3",
			want:   []string{"e4"},
		},
		{
			name:   "black pawn advances toward rank 1",
			fen:    "4k3/8/8/3p1n2/4p3/8/8/4K3 b - - 0 1",
			square: "e4",
			want:   []string{"e3"},
		},
		{
			name:   "pawn captures enemy only",
			fen:    "4k3/8/8/8/8/3n1N2/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e3", "e4", "d3"},
		},
		{
			name:   "knight in corner",
			fen:    "4k3/8/8/8/8/8/8/N3K3 w - - 0 1",
			square: "a1",
			want:   []string{"b3", "c2"},
		},
		{
			name:   "knight jumps over pieces",
			fen:    InitialFEN,
			square: "g1",
			want:   []string{"f3", "h3"},
		},
		{
			name:   "rook ray stops at own piece and captures enemy",
			fen:    "4k3/8/8/3p4/8/8/8/R2QK3 w - - 0 1",
			square: "a1",
			want:   []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1"},
		},
		{
			name:   "bishop stops on capture",
			fen:    "4k3/8/8/8/8/2p5/1B6/4K3 w - - 0 1",
			square: "b2",
			want:   []string{"a1", "a3", "c1", "c3"},
		},
		{
			name:   "queen in the open",
			fen:    "8/8/8/8/8/8/8/Q7 w - - 0 1",
			square: "a1",
			want: []string{
				"a2", "a3", "a4", "a5", "a6", "a7", "a8",
				"b1", "c1", "d1", "e1", "f1", "g1", "h1",
				"b2", "c3", "d4", "e5", "f6", "g7", "h8",
			},
		},
		{
			name:   "king never includes own square or own pieces",
			fen:    InitialFEN,
			square: "e1",
			want:   nil,
		},
		{
			name:   "king adjacent cells with capture",
			fen:    "4k3/8/8/8/8/8/3pP3/4K3 w - - 0 1",
			square: "e1",
			want:   []string{"d1", "f1", "d2", "f2"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, _ := mustFEN(t, tt.fen)
			p, ok := pieceAt(t, board, tt.square)
			if !ok {
				t.Fatalf("no piece on %s", tt.square)
			}
			testutil.AssertSquares(t, PseudoLegalMoves(board, p), tt.want)
		})
	}
}

func TestPseudoLegalMovesDoesNotMutate(t *testing.T) {
	board := NewInitialBoard()
	before := board.SaveState()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			PseudoLegalMoves(board, p)
		}
	}
	testutil.AssertEqual(t, board.SaveState(), before)
}

func TestPawnGenerationOrder(t *testing.T) {
	board, _ := mustFEN(t, "4k3/8/8/8/8/3n1n2/4P3/4K3 w - - 0 1")
	p, _ := pieceAt(t, board, "e2")
	var got []string
	for _, c := range PseudoLegalMoves(board, p) {
		got = append(got, c.String())
	}
	testutil.AssertEqual(t, got, []string{"e3", "e4", "d3", "f3"})
}
