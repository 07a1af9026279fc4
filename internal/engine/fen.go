// Package engine provides chess move generation, validation and board
// manipulation on top of the chess package's board.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// PieceToFENChar returns the FEN letter for a piece, lower case for black.
func PieceToFENChar(p chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Castling rights become moved flags: a king or rook on its
// home square is unmoved only if a matching right is present. En passant
// and clock fields are accepted but not used.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.NoColour, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.NoColour, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.NoColour, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.NoColour, err
	}

	UpdateCheck(board, toMove.Opposite())
	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Every piece starts out marked as moved except pawns on their start row.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			kind := ConvertFENCharToPiece(byte(c))
			if kind == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d too long: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			piece := chess.NewPiece(kind, colour, chess.Coord{})
			piece.HasMoved = kind != chess.Pawn || row != chess.PawnStartRow(colour)
			board.Set(chess.Coord{Col: col, Row: row}, piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves if it is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.NoColour, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights clears the moved flag of each king and rook named by
// the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var rookCol int
		switch c {
		case 'K':
			colour, rookCol = chess.White, chess.BoardSize-1
		case 'Q':
			colour, rookCol = chess.White, 0
		case 'k':
			colour, rookCol = chess.Black, chess.BoardSize-1
		case 'q':
			colour, rookCol = chess.Black, 0
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		row := chess.BackRow(colour)
		markUnmoved(board, chess.Coord{Col: kingHomeCol, Row: row}, chess.King, colour)
		markUnmoved(board, chess.Coord{Col: rookCol, Row: row}, chess.Rook, colour)
	}
	return nil
}

// markUnmoved clears HasMoved if the expected piece stands at pos.
func markUnmoved(board *chess.Board, pos chess.Coord, kind chess.PieceKind, colour chess.Colour) {
	p, ok := board.Get(pos)
	if !ok || p.Kind != kind || p.Colour != colour {
		return
	}
	p.HasMoved = false
	board.Set(pos, p)
}

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from the moved flags; en passant is always "-" and clocks are "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.Get(chess.Coord{Col: col, Row: row})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENChar(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := chess.BackRow(colour)
		king, ok := board.Get(chess.Coord{Col: kingHomeCol, Row: row})
		if !ok || king.Kind != chess.King || king.Colour != colour || king.HasMoved {
			continue
		}
		for _, side := range castleSides {
			rook, ok := board.Get(chess.Coord{Col: side.rookCol, Row: row})
			if !ok || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
				continue
			}
			letter := byte('K')
			if side.dir < 0 {
				letter = 'Q'
			}
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.Reset()
	return board
}
