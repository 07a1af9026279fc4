// Package output renders the board, captured pieces and the log panel as
// terminal text, and writes perft reports.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// symbols maps a piece code to its unicode glyph. The filled glyphs are
// used for white so they stand out on a dark terminal.
var symbols = map[string]string{
	"wK": "♚", "wQ": "♛", "wR": "♜", "wB": "♝", "wN": "♞", "wP": "♟",
	"bK": "♔", "bQ": "♕", "bR": "♖", "bB": "♗", "bN": "♘", "bP": "♙",
}

const innerWidth = 39

// Symbol returns the unicode glyph for a piece, or a space for an empty square.
func Symbol(p chess.Piece) string {
	if s, ok := symbols[p.Code()]; ok {
		return s
	}
	return " "
}

// BoardString renders the board framed, rank 8 at the top.
func BoardString(b *chess.Board) string {
	var sb strings.Builder

	sb.WriteString("    ")
	for col := 0; col < chess.BoardSize; col++ {
		if col > 0 {
			sb.WriteString("    ")
		}
		sb.WriteByte(byte(chess.ColBase + col))
	}
	sb.WriteString("   \n")

	sb.WriteString("  ╔" + strings.Repeat("═", innerWidth) + "╗\n")
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteString("  ║" + strings.Repeat("─", innerWidth) + "║\n")
		}
		cells := make([]string, chess.BoardSize)
		for col := range cells {
			p, _ := b.Get(chess.Coord{Col: col, Row: row})
			cells[col] = Symbol(p)
		}
		fmt.Fprintf(&sb, "%d ║ %s  ║\n", chess.BoardSize-row, strings.Join(cells, "  | "))
	}
	sb.WriteString("  ╚" + strings.Repeat("═", innerWidth) + "╝")

	return sb.String()
}

// RenderBoard writes the framed board followed by a newline.
func RenderBoard(w io.Writer, b *chess.Board) error {
	_, err := fmt.Fprintln(w, BoardString(b))
	return err
}

// CapturedString lists captured pieces as glyphs in capture order.
func CapturedString(pieces []chess.Piece) string {
	glyphs := make([]string, 0, len(pieces))
	for _, p := range pieces {
		glyphs = append(glyphs, Symbol(p))
	}
	return strings.Join(glyphs, "  ")
}

// RenderCaptured writes the captured pieces on one line.
func RenderCaptured(w io.Writer, pieces []chess.Piece) error {
	_, err := fmt.Fprintln(w, CapturedString(pieces))
	return err
}
