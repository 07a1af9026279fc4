// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	// NoColour is used where a colour is optional, e.g. nobody is in check.
	NoColour Colour = iota - 1
	Black
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParsePieceKind accepts a SAN letter ("q") or a name ("queen"), case-insensitively.
func ParsePieceKind(s string) (PieceKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "pawn":
		return Pawn, true
	case "n", "knight":
		return Knight, true
	case "b", "bishop":
		return Bishop, true
	case "r", "rook":
		return Rook, true
	case "q", "queen":
		return Queen, true
	case "k", "king":
		return King, true
	}
	return NoPiece, false
}

// IsPromotionChoice reports whether a pawn may be promoted to k.
func (k PieceKind) IsPromotionChoice() bool {
	return k == Rook || k == Knight || k == Bishop || k == Queen
}

// Constants for board dimensions and notation.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
)

// Coord is a board coordinate. Col 0..7 maps to files a..h and Row 0..7 maps
// to ranks 8..1, so row 0 is the top of the printed board.
type Coord struct {
	Col int
	Row int
}

// Move returns the coordinate offset by dx columns and dy rows.
// The result may lie off the board; callers check Valid.
func (c Coord) Move(dx, dy int) Coord {
	return Coord{Col: c.Col + dx, Row: c.Row + dy}
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.Col >= 0 && c.Col < BoardSize && c.Row >= 0 && c.Row < BoardSize
}

// String returns the algebraic name of the square, or "" if it is off the board.
func (c Coord) String() string {
	if !c.Valid() {
		return ""
	}
	return string([]byte{byte(ColBase + c.Col), byte(RankBase + BoardSize - 1 - c.Row)})
}

// ParseCoord decodes an algebraic square such as "e4".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, errors.Wrapf(errors.ErrInvalidEncoding, "square %q: want 2 characters", s)
	}
	file, rank := s[0], s[1]
	if file < ColBase || file >= ColBase+BoardSize {
		return Coord{}, errors.Wrapf(errors.ErrInvalidEncoding, "square %q: bad file %q", s, file)
	}
	if rank < RankBase || rank >= RankBase+BoardSize {
		return Coord{}, errors.Wrapf(errors.ErrInvalidEncoding, "square %q: bad rank %q", s, rank)
	}
	return Coord{Col: int(file - ColBase), Row: BoardSize - 1 - int(rank-RankBase)}, nil
}

// MustParseCoord is ParseCoord for constant squares; it panics on bad input.
func MustParseCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ForwardDirection returns the row delta of a pawn advance for the colour.
func ForwardDirection(colour Colour) int {
	if colour == Black {
		return 1
	}
	return -1
}

// BackRow returns the row holding the colour's pieces in the initial position.
func BackRow(colour Colour) int {
	if colour == Black {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRow returns the row holding the colour's pawns in the initial position.
func PawnStartRow(colour Colour) int {
	return BackRow(colour) + ForwardDirection(colour)
}

// PromotionRow returns the row on which the colour's pawns promote.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}

// Piece is a single chess piece. The zero value is an empty square.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Pos      Coord
	HasMoved bool
}

// NewPiece creates an unmoved piece at pos.
func NewPiece(kind PieceKind, colour Colour, pos Coord) Piece {
	return Piece{Kind: kind, Colour: colour, Pos: pos}
}

// IsEmpty reports whether p is the empty square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// String returns e.g. "white Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s", strings.ToLower(p.Colour.String()), p.Kind)
}

// Code returns the two-letter code used by the terminal, e.g. "wN" or "bK".
func (p Piece) Code() string {
	if p.IsEmpty() {
		return "  "
	}
	prefix := byte('b')
	if p.Colour == White {
		prefix = 'w'
	}
	return string([]byte{prefix, p.Kind.Letter()})
}

// PossibleMoves groups a piece with its legal destinations.
type PossibleMoves struct {
	Piece Piece
	To    []Coord
}
