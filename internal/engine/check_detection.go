package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never reported as checked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingPos, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(board, kingPos, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour has the square
// among its pseudo-legal destinations.
func isSquareAttacked(board *chess.Board, pos chess.Coord, byColour chess.Colour) bool {
	for _, p := range board.Pieces(byColour) {
		if containsCoord(PseudoLegalMoves(board, p), pos) {
			return true
		}
	}
	return false
}

// UpdateCheck recomputes board.Checked after lastMoved has moved and
// returns it. The mover's own king is tested first, so if both kings are
// attacked the mover is reported.
func UpdateCheck(board *chess.Board, lastMoved chess.Colour) chess.Colour {
	switch {
	case IsInCheck(board, lastMoved):
		board.Checked = lastMoved
	case IsInCheck(board, lastMoved.Opposite()):
		board.Checked = lastMoved.Opposite()
	default:
		board.Checked = chess.NoColour
	}
	return board.Checked
}
