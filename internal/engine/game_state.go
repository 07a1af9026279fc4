package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// GameStatus is the state of the game for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status reports whether colour, being the side to move, is checkmated,
// stalemated, or still has a legal move.
func Status(board *chess.Board, colour chess.Colour) GameStatus {
	if HasLegalMoves(board, colour) {
		return Ongoing
	}
	if IsInCheck(board, colour) {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the position is checkmate for colour to move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return Status(board, colour) == Checkmate
}

// IsStalemate returns true if the position is stalemate for colour to move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return Status(board, colour) == Stalemate
}
