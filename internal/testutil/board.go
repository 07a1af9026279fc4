package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// MustCoord decodes an algebraic square, failing the test on error.
func MustCoord(t *testing.T, square string) chess.Coord {
	t.Helper()
	c, err := chess.ParseCoord(square)
	if err != nil {
		t.Fatalf("ParseCoord(%q): %v", square, err)
	}
	return c
}

// Coords decodes several algebraic squares.
func Coords(t *testing.T, squares ...string) []chess.Coord {
	t.Helper()
	coords := make([]chess.Coord, 0, len(squares))
	for _, s := range squares {
		coords = append(coords, MustCoord(t, s))
	}
	return coords
}

// Squares encodes coordinates as sorted algebraic names for readable diffs.
func Squares(coords []chess.Coord) []string {
	names := make([]string, 0, len(coords))
	for _, c := range coords {
		names = append(names, c.String())
	}
	sort.Strings(names)
	return names
}

// AssertSquares compares two sets of squares, ignoring order.
func AssertSquares(t *testing.T, got []chess.Coord, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotNames := Squares(got)
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, gotNames, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: squares mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("squares mismatch (-want +got):\n%s", diff)
		}
	}
}

// Place puts a new piece on an algebraic square and returns it.
func Place(t *testing.T, b *chess.Board, square string, kind chess.PieceKind, colour chess.Colour) chess.Piece {
	t.Helper()
	pos := MustCoord(t, square)
	b.Set(pos, chess.NewPiece(kind, colour, pos))
	p, _ := b.Get(pos)
	return p
}
