package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// castleSide describes one castling option by the rook's file and the
// direction the king travels.
type castleSide struct {
	rookCol int
	dir     int
}

var castleSides = []castleSide{
	{rookCol: chess.BoardSize - 1, dir: 1}, // King side
	{rookCol: 0, dir: -1},                  // Queen side
}

// kingHomeCol is the e-file.
const kingHomeCol = 4

// castlingTargets returns the squares the king may castle to.
func castlingTargets(board *chess.Board, king chess.Piece) []chess.Coord {
	if king.Kind != chess.King || king.HasMoved {
		return nil
	}
	if king.Pos != (chess.Coord{Col: kingHomeCol, Row: chess.BackRow(king.Colour)}) {
		return nil
	}
	if IsInCheck(board, king.Colour) {
		return nil
	}

	var targets []chess.Coord
	for _, side := range castleSides {
		if canCastle(board, king, side) {
			targets = append(targets, king.Pos.Move(2*side.dir, 0))
		}
	}
	return targets
}

// canCastle checks the rook, the squares between, and that neither the
// transit nor the landing square is attacked.
func canCastle(board *chess.Board, king chess.Piece, side castleSide) bool {
	row := king.Pos.Row
	rook, ok := board.Get(chess.Coord{Col: side.rookCol, Row: row})
	if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
		return false
	}

	for col := king.Pos.Col + side.dir; col != side.rookCol; col += side.dir {
		if !board.IsEmpty(chess.Coord{Col: col, Row: row}) {
			return false
		}
	}

	for step := 1; step <= 2; step++ {
		if !tryMove(board, king.Pos, king.Pos.Move(step*side.dir, 0), king.Colour) {
			return false
		}
	}
	return true
}

// isCastle reports whether a king move is a castling move.
func isCastle(p chess.Piece, from, to chess.Coord) bool {
	return p.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// applyCastle moves the king two files and the rook onto the square the
// king passed through. Both are marked as moved.
func applyCastle(board *chess.Board, from, to chess.Coord) {
	dir := sign(to.Col - from.Col)
	rookFrom := chess.Coord{Col: 0, Row: from.Row}
	if dir > 0 {
		rookFrom.Col = chess.BoardSize - 1
	}

	OverrideMove(board, from, to)
	OverrideMove(board, rookFrom, from.Move(dir, 0))
}
